package shell

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/url"
	"strconv"

	"athlete-dashboard/core/apierror"
	"athlete-dashboard/core/dashboard"
	"athlete-dashboard/core/events"
	"athlete-dashboard/core/logger"
	"athlete-dashboard/core/middleware/auth"
	"athlete-dashboard/core/server"
	"athlete-dashboard/core/usermeta"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PagePath is where the dashboard page lives under the site URL.
const PagePath = "/dashboard"

// Bootstrap is what the page hands the client at start-up.
type Bootstrap struct {
	APIURL         string           `json:"apiUrl"`
	SiteURL        string           `json:"siteUrl"`
	Nonce          string           `json:"nonce"`
	UserID         uint             `json:"userId"`
	Debug          bool             `json:"debug"`
	DefaultFeature string           `json:"defaultFeature"`
	Feature        string           `json:"feature"`
	Navigation     []dashboard.Item `json:"navigation"`
}

// Page is a router snapshot together with the navigation to draw around it.
type Page struct {
	dashboard.Snapshot
	Navigation []dashboard.Item `json:"navigation"`
}

// NavigateRequest asks to switch feature. URL is the page the client is on.
type NavigateRequest struct {
	Feature string `json:"feature"`
	URL     string `json:"url,omitempty"`
}

// Options configures a Handler.
type Options struct {
	Dashboard *dashboard.Dashboard
	Bus       *events.Bus
	Nonces    *auth.Nonces
	Users     *usermeta.Repository
	Server    server.Config
	Config    dashboard.Config
	Auth      fiber.Handler
	Logger    *zap.Logger
	// BootstrapSecret must accompany bootstrap requests. When empty, bootstrap
	// is served only in development.
	BootstrapSecret string
}

// Handler serves the dashboard shell: bootstrap data, navigation and the active feature.
type Handler struct {
	Options
	page *url.URL
}

// NewHandler creates a new HTTP handler.
func NewHandler(opts Options) (*Handler, error) {
	page, err := url.Parse(opts.Server.APIBaseURL() + PagePath)
	if err != nil {
		return nil, err
	}
	return &Handler{Options: opts, page: page}, nil
}

// RegisterRoutes registers the dashboard routes. Bootstrap is the only one without a nonce.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/dashboard")
	group.Get("/bootstrap", h.HandleBootstrap)
	group.Get("/navigation", h.Auth, h.HandleNavigation)
	group.Post("/navigate", h.Auth, h.HandleNavigate)
	group.Post("/retry", h.Auth, h.HandleRetry)
	app.Get(PagePath, h.Auth, h.HandleDashboard)
}

func (h *Handler) debug() bool {
	return h.Config.Debug || h.Server.IsDevelopment()
}

func (h *Handler) featureContext(c *fiber.Ctx) dashboard.Context {
	return dashboard.Context{
		UserID:     auth.UserID(c),
		Nonce:      auth.Nonce(c),
		APIBaseURL: h.Server.APIBaseURL(),
		Debug:      h.debug(),
		Dispatch:   h.Bus.Emit,
	}
}

// requested returns the feature named by dashboard_feature or the default.
func (h *Handler) requested(c *fiber.Ctx) string {
	if id := c.Query(dashboard.QueryParam); id != "" {
		return id
	}
	return h.Dashboard.Fallback()
}

// HandleBootstrap returns the client start-up data, including a fresh nonce.
// @Summary Bootstrap
// @Description Equivalent of the athleteDashboardData global: API URL, nonce, user id and debug flag.
// @Tags dashboard
// @Produce json
// @Param X-WP-User header int true "User ID"
// @Param X-Dashboard-Bootstrap header string false "Secret shared with the page host"
// @Param dashboard_feature query string false "Requested feature"
// @Success 200 {object} Bootstrap
// @Failure 401 {object} apierror.Error
// @Failure 403 {object} apierror.Error
// @Failure 404 {object} apierror.Error
// @Router /dashboard/bootstrap [get]
func (h *Handler) HandleBootstrap(c *fiber.Ctx) error {
	if !h.trustedBootstrap(c) {
		return apierror.Forbidden("Sorry, you are not allowed to do that.")
	}
	id, err := strconv.ParseUint(c.Get(auth.UserHeader), 10, 64)
	if err != nil || id == 0 {
		return apierror.Unauthorized("You are not currently logged in.")
	}
	uid := uint(id)
	if _, err := h.Users.GetUser(c.UserContext(), uid); err != nil {
		if errors.Is(err, usermeta.ErrUserNotFound) {
			return apierror.NotFound("rest_user_invalid_id", "Invalid user ID.")
		}
		return apierror.Internal("rest_persistence_failed", "Failed to load user.", err)
	}

	feature := h.requested(c)
	return c.JSON(Bootstrap{
		APIURL:         h.Server.APIBaseURL(),
		SiteURL:        h.Server.SiteURL,
		Nonce:          h.Nonces.Create(uid),
		UserID:         uid,
		Debug:          h.debug(),
		DefaultFeature: h.Dashboard.Fallback(),
		Feature:        feature,
		Navigation:     h.Dashboard.Navigation.Items(h.page, feature),
	})
}

// trustedBootstrap reports whether the caller may be issued a nonce for the
// user it names. X-WP-User alone is not proof of a login.
func (h *Handler) trustedBootstrap(c *fiber.Ctx) bool {
	if h.BootstrapSecret == "" {
		return h.Server.IsDevelopment()
	}
	given := c.Get(auth.BootstrapHeader)
	return subtle.ConstantTimeCompare([]byte(given), []byte(h.BootstrapSecret)) == 1
}

// HandleNavigation lists enabled features in display order.
// @Summary Navigation
// @Tags dashboard
// @Produce json
// @Param dashboard_feature query string false "Active feature"
// @Success 200 {array} dashboard.Item
// @Router /dashboard/navigation [get]
func (h *Handler) HandleNavigation(c *fiber.Ctx) error {
	return c.JSON(h.Dashboard.Navigation.Items(h.page, h.requested(c)))
}

// HandleNavigate validates a feature switch, publishes it and returns the URL to push.
// @Summary Navigate
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body NavigateRequest true "Target feature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apierror.Error
// @Failure 404 {object} apierror.Error
// @Router /dashboard/navigate [post]
func (h *Handler) HandleNavigate(c *fiber.Ctx) error {
	var req NavigateRequest
	if err := c.BodyParser(&req); err != nil || req.Feature == "" {
		return apierror.Invalid("Invalid parameter(s): feature", map[string]string{"feature": "is required"})
	}
	current := h.page
	if req.URL != "" {
		u, err := url.Parse(req.URL)
		if err != nil {
			return apierror.Invalid("Invalid parameter(s): url", map[string]string{"url": "must be a URL"})
		}
		current = u
	}

	fc := h.featureContext(c)
	from := h.Dashboard.Sessions.Router(fc.UserID).Snapshot().Feature
	target, err := h.Dashboard.Navigation.Navigate(fc, from, req.Feature, current)
	switch {
	case errors.Is(err, dashboard.ErrFeatureNotFound):
		return apierror.NotFound("rest_feature_not_found", "The requested feature is not available.")
	case errors.Is(err, dashboard.ErrFeatureDisabled):
		return apierror.New(fiber.StatusBadRequest, "rest_feature_disabled", "This feature is currently disabled.")
	case err != nil:
		return err
	}

	logger.Debug(logger.WithUser(h.Logger, c), fc.Debug).Debug("Navigate",
		zap.String("from", from), zap.String("to", req.Feature))
	return c.JSON(fiber.Map{"feature": req.Feature, "url": target.String()})
}

// HandleDashboard activates the requested feature for the user and renders it.
// @Summary Dashboard
// @Description Activate dashboard_feature (or the default) and return the router snapshot.
// @Tags dashboard
// @Produce json
// @Param dashboard_feature query string false "Feature to show"
// @Success 200 {object} Page
// @Router /dashboard [get]
func (h *Handler) HandleDashboard(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.Config.InitTimeout())
	defer cancel()

	snap := h.Dashboard.Open(ctx, h.featureContext(c), c.Query(dashboard.QueryParam))
	return c.JSON(Page{Snapshot: snap, Navigation: h.Dashboard.Navigation.Items(h.page, snap.Feature)})
}

// HandleRetry re-runs initialisation of the user's active feature.
// @Summary Retry
// @Tags dashboard
// @Produce json
// @Success 200 {object} Page
// @Router /dashboard/retry [post]
func (h *Handler) HandleRetry(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.Config.InitTimeout())
	defer cancel()

	snap := h.Dashboard.Retry(ctx, h.featureContext(c))
	return c.JSON(Page{Snapshot: snap, Navigation: h.Dashboard.Navigation.Items(h.page, snap.Feature)})
}
