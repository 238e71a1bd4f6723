package overview

import (
	"errors"

	"athlete-dashboard/core/apierror"
	"athlete-dashboard/core/middleware/auth"
	"athlete-dashboard/core/usermeta"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the overview summary.
type Handler struct {
	service *Service
	auth    fiber.Handler
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, authn fiber.Handler) *Handler {
	return &Handler{service: service, auth: authn}
}

// RegisterRoutes registers the overview route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/athlete-dashboard/v1/overview", h.auth, h.HandleGetOverview)
}

// HandleGetOverview returns the current user's dashboard summary.
// @Summary Get Overview
// @Tags overview
// @Produce json
// @Success 200 {object} Summary
// @Failure 401 {object} apierror.Error
// @Router /athlete-dashboard/v1/overview [get]
func (h *Handler) HandleGetOverview(c *fiber.Ctx) error {
	sum, err := h.service.Summary(c.UserContext(), auth.UserID(c))
	if errors.Is(err, usermeta.ErrUserNotFound) {
		return apierror.NotFound("rest_user_invalid_id", "Invalid user ID.")
	}
	if err != nil {
		return apierror.Internal("rest_persistence_failed", "Failed to build overview.", err)
	}
	return c.JSON(sum)
}
