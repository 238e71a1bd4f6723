package equipment

import (
	"errors"

	"athlete-dashboard/core/apierror"
	"athlete-dashboard/core/logger"
	"athlete-dashboard/core/middleware/auth"
	"athlete-dashboard/core/usermeta"
	"athlete-dashboard/core/validation"
	"athlete-dashboard/feature/equipment/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the equipment inventory.
type Handler struct {
	service *Service
	auth    fiber.Handler
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, authn fiber.Handler) *Handler {
	return &Handler{service: service, auth: authn}
}

// RegisterRoutes registers the equipment routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/athlete-dashboard/v1/equipment")
	group.Get("/", h.auth, h.HandleList)
	group.Post("/", h.auth, h.HandleCreate)
	group.Delete("/:id", h.auth, h.HandleDelete)
}

// HandleList returns the current user's equipment.
// @Summary List Equipment
// @Tags equipment
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} apierror.Error
// @Router /athlete-dashboard/v1/equipment [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext(), auth.UserID(c))
	if err != nil {
		return h.fail(c, "Failed to load equipment", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"equipment": list}})
}

// HandleCreate adds an item to the inventory.
// @Summary Add Equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Param equipment body models.Equipment true "Equipment"
// @Success 201 {object} models.Equipment
// @Failure 400 {object} apierror.Error
// @Router /athlete-dashboard/v1/equipment [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var e models.Equipment
	if err := c.BodyParser(&e); err != nil {
		return apierror.Invalid("Invalid parameter(s): body", map[string]string{"body": "must be a JSON object"})
	}
	created, err := h.service.Add(c.UserContext(), auth.UserID(c), e)
	if err != nil {
		return h.fail(c, "Failed to save equipment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleDelete removes an item from the inventory.
// @Summary Delete Equipment
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} apierror.Error
// @Router /athlete-dashboard/v1/equipment/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Remove(c.UserContext(), auth.UserID(c), id); err != nil {
		return h.fail(c, "Failed to delete equipment", err)
	}
	return c.JSON(fiber.Map{"deleted": true, "id": id})
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return apierror.Invalid(verrs.Error(), verrs)
	case errors.Is(err, ErrEquipmentNotFound):
		return apierror.NotFound("rest_equipment_invalid_id", "Invalid equipment ID.")
	case errors.Is(err, usermeta.ErrUserNotFound):
		return apierror.NotFound("rest_user_invalid_id", "Invalid user ID.")
	}
	logger.WithUser(h.service.logger, c).Error(msg, zap.Error(err))
	return apierror.Internal("rest_persistence_failed", msg+".", err)
}
