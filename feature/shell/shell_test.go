package shell_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"athlete-dashboard/core/apierror"
	"athlete-dashboard/core/dashboard"
	"athlete-dashboard/core/database"
	"athlete-dashboard/core/events"
	"athlete-dashboard/core/middleware/auth"
	"athlete-dashboard/core/server"
	"athlete-dashboard/core/usermeta"
	"athlete-dashboard/feature/shell"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type panel struct {
	id      string
	order   int
	enabled bool
	failing atomic.Bool
	inits   atomic.Int32
}

func (p *panel) ID() string { return p.id }
func (p *panel) Metadata() dashboard.Metadata {
	return dashboard.Metadata{Name: p.id, Order: p.order}
}
func (p *panel) IsEnabled() bool { return p.enabled }
func (p *panel) Init(context.Context, dashboard.Context) error {
	p.inits.Add(1)
	if p.failing.Load() {
		return errors.New("backend unavailable")
	}
	return nil
}
func (p *panel) Render(_ context.Context, fc dashboard.Context) (dashboard.View, error) {
	return dashboard.View{"panel": p.id, "user": fc.UserID}, nil
}
func (p *panel) Cleanup(context.Context, dashboard.Context) {}

type env struct {
	app      *fiber.App
	nonces   *auth.Nonces
	overview *panel
	profile  *panel
	hidden   *panel
	navs     []events.NavigatePayload
}

const bootstrapSecret = "page-host-secret"

func setup(t *testing.T, configure ...func(*shell.Options)) *env {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:", TablePrefix: "wp_"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, usermeta.Models()...))
	users := usermeta.NewRepository(db)
	require.NoError(t, users.CreateUser(context.Background(), &usermeta.User{ID: 4, Login: "sam"}))

	e := &env{
		nonces:   auth.NewNonces("secret", time.Hour),
		overview: &panel{id: "overview", order: 1, enabled: true},
		profile:  &panel{id: "profile", order: 10, enabled: true},
		hidden:   &panel{id: "equipment", order: 5},
	}

	bus := events.NewBus(zap.NewNop())
	bus.On(events.Navigate, func(p any) { e.navs = append(e.navs, p.(events.NavigatePayload)) })

	d := dashboard.New(dashboard.Options{Logger: zap.NewNop(), Fallback: "overview", InitTimeout: time.Second})
	require.NoError(t, d.Register(e.profile, e.overview, e.hidden))
	t.Cleanup(func() { d.Sessions.CloseAll(context.Background()) })

	opts := shell.Options{
		Dashboard: d,
		Bus:       bus,
		Nonces:    e.nonces,
		Users:     users,
		Server:    server.Config{SiteURL: "https://athlete.example.com/", Environment: server.EnvProduction},
		Config:    dashboard.Config{InitTimeoutSeconds: 2},
		Auth:      auth.New(e.nonces),
		Logger:    zap.NewNop(),

		BootstrapSecret: bootstrapSecret,
	}
	for _, fn := range configure {
		fn(&opts)
	}
	f, err := shell.NewFeature(opts)
	require.NoError(t, err)

	e.app = fiber.New(fiber.Config{ErrorHandler: apierror.Handler})
	require.NoError(t, f.Load(e.app))
	return e
}

func (e *env) do(t *testing.T, method, target string, body any) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set(auth.UserHeader, "4")
	req.Header.Set(auth.NonceHeader, e.nonces.Create(4))
	req.Header.Set(auth.BootstrapHeader, bootstrapSecret)
	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestBootstrap(t *testing.T) {
	e := setup(t)

	resp := e.do(t, "GET", "/dashboard/bootstrap?dashboard_feature=profile", nil)
	require.Equal(t, 200, resp.StatusCode)

	b := decode[shell.Bootstrap](t, resp)
	assert.Equal(t, "https://athlete.example.com", b.APIURL)
	assert.Equal(t, uint(4), b.UserID)
	assert.True(t, e.nonces.Verify(4, b.Nonce))
	assert.Equal(t, "overview", b.DefaultFeature)
	assert.Equal(t, "profile", b.Feature)
	require.Len(t, b.Navigation, 2)
	assert.Equal(t, "overview", b.Navigation[0].ID)
	assert.True(t, b.Navigation[1].Active)
	assert.Equal(t, "https://athlete.example.com/dashboard?dashboard_feature=profile", b.Navigation[1].URL)

	req := httptest.NewRequest("GET", "/dashboard/bootstrap", nil)
	req.Header.Set(auth.BootstrapHeader, bootstrapSecret)
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest("GET", "/dashboard/bootstrap", nil)
	req.Header.Set(auth.UserHeader, strconv.Itoa(99))
	req.Header.Set(auth.BootstrapHeader, bootstrapSecret)
	resp, err = e.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func bootstrapAs(t *testing.T, app *fiber.App, secret string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", "/dashboard/bootstrap", nil)
	req.Header.Set(auth.UserHeader, "4")
	if secret != "" {
		req.Header.Set(auth.BootstrapHeader, secret)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestBootstrap_RequiresPageHostSecret(t *testing.T) {
	e := setup(t)

	resp := bootstrapAs(t, e.app, "")
	assert.Equal(t, 403, resp.StatusCode)
	assert.Equal(t, "rest_forbidden", decode[apierror.Error](t, resp).Code)

	assert.Equal(t, 403, bootstrapAs(t, e.app, "guessed").StatusCode)
	assert.Equal(t, 200, bootstrapAs(t, e.app, bootstrapSecret).StatusCode)
}

func TestBootstrap_WithoutSecretOnlyInDevelopment(t *testing.T) {
	prod := setup(t, func(o *shell.Options) { o.BootstrapSecret = "" })
	assert.Equal(t, 403, bootstrapAs(t, prod.app, "").StatusCode)
	assert.Equal(t, 403, bootstrapAs(t, prod.app, bootstrapSecret).StatusCode)

	dev := setup(t, func(o *shell.Options) {
		o.BootstrapSecret = ""
		o.Server.Environment = server.EnvDevelopment
	})
	resp := bootstrapAs(t, dev.app, "")
	require.Equal(t, 200, resp.StatusCode)
	b := decode[shell.Bootstrap](t, resp)
	assert.True(t, dev.nonces.Verify(4, b.Nonce))
	assert.True(t, b.Debug)
}

func TestDashboard_OpenAndSwitch(t *testing.T) {
	e := setup(t)

	page := decode[shell.Page](t, e.do(t, "GET", "/dashboard", nil))
	assert.Equal(t, dashboard.StateReady, page.State)
	assert.Equal(t, "overview", page.Feature)
	assert.Equal(t, "overview", page.View["panel"])

	page = decode[shell.Page](t, e.do(t, "GET", "/dashboard?dashboard_feature=profile", nil))
	assert.Equal(t, "profile", page.Feature)
	assert.True(t, page.Navigation[1].Active)

	// same feature again does not re-run Init
	decode[shell.Page](t, e.do(t, "GET", "/dashboard?dashboard_feature=profile", nil))
	assert.EqualValues(t, 1, e.profile.inits.Load())

	page = decode[shell.Page](t, e.do(t, "GET", "/dashboard?dashboard_feature=equipment", nil))
	assert.Equal(t, dashboard.StateDisabled, page.State)
	assert.Zero(t, e.hidden.inits.Load())

	page = decode[shell.Page](t, e.do(t, "GET", "/dashboard?dashboard_feature=missing", nil))
	assert.Equal(t, "overview", page.Feature, "unknown ids fall back")
}

func TestDashboard_ErrorAndRetry(t *testing.T) {
	e := setup(t)
	e.profile.failing.Store(true)

	page := decode[shell.Page](t, e.do(t, "GET", "/dashboard?dashboard_feature=profile", nil))
	assert.Equal(t, dashboard.StateError, page.State)
	assert.True(t, page.Retryable)
	assert.Equal(t, "retry", page.View["action"])

	e.profile.failing.Store(false)
	page = decode[shell.Page](t, e.do(t, "POST", "/dashboard/retry", nil))
	assert.Equal(t, dashboard.StateReady, page.State)
	assert.EqualValues(t, 2, e.profile.inits.Load())
}

func TestNavigate(t *testing.T) {
	e := setup(t)
	decode[shell.Page](t, e.do(t, "GET", "/dashboard", nil))

	resp := e.do(t, "POST", "/dashboard/navigate", shell.NavigateRequest{Feature: "profile", URL: "https://athlete.example.com/dashboard?tab=1"})
	require.Equal(t, 200, resp.StatusCode)
	out := decode[map[string]string](t, resp)
	assert.Equal(t, "https://athlete.example.com/dashboard?dashboard_feature=profile&tab=1", out["url"])
	assert.Equal(t, []events.NavigatePayload{{UserID: 4, From: "overview", To: "profile"}}, e.navs)

	resp = e.do(t, "POST", "/dashboard/navigate", shell.NavigateRequest{Feature: "missing"})
	assert.Equal(t, 404, resp.StatusCode)

	resp = e.do(t, "POST", "/dashboard/navigate", shell.NavigateRequest{Feature: "equipment"})
	assert.Equal(t, 400, resp.StatusCode)

	resp = e.do(t, "POST", "/dashboard/navigate", map[string]string{})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Len(t, e.navs, 1)
}

func TestNavigation(t *testing.T) {
	e := setup(t)

	items := decode[[]dashboard.Item](t, e.do(t, "GET", "/dashboard/navigation?dashboard_feature=overview", nil))
	require.Len(t, items, 2)
	assert.Equal(t, []string{"overview", "profile"}, []string{items[0].ID, items[1].ID})
	assert.True(t, items[0].Active)

	req := httptest.NewRequest("GET", "/dashboard/navigation", nil)
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
