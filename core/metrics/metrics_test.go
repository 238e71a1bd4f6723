package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorders(t *testing.T) {
	m := New()

	m.EventEmitted("profile:updated", 2)
	m.EventEmitted("profile:updated", 0)
	m.FeatureTransition("profile", "ready")
	m.FeatureTransition("", "no-feature")
	m.ObserveInit("profile", 10*time.Millisecond)
	m.SetSessions(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.events.WithLabelValues("profile:updated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("profile", "ready")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("none", "no-feature")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sessions))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.EventEmitted("x", 1)
		m.FeatureTransition("x", "ready")
		m.ObserveInit("x", time.Second)
		m.SetSessions(1)
	})

	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/profile/physical/:user_id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "no") })
	app.Get("/metrics", m.Handler())

	for _, path := range []string{"/profile/physical/1", "/profile/physical/2", "/boom"} {
		_, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/profile/physical/:user_id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/boom", "418")))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "athlete_dashboard_http_requests_total"))
}
