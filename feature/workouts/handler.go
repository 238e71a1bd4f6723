package workouts

import (
	"errors"

	"athlete-dashboard/core/apierror"
	"athlete-dashboard/core/logger"
	"athlete-dashboard/core/middleware/auth"
	"athlete-dashboard/core/usermeta"
	"athlete-dashboard/core/validation"
	"athlete-dashboard/feature/workouts/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the workout log.
type Handler struct {
	service *Service
	auth    fiber.Handler
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, authn fiber.Handler) *Handler {
	return &Handler{service: service, auth: authn}
}

// RegisterRoutes registers the workout routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/athlete-dashboard/v1/workouts")
	group.Get("/", h.auth, h.HandleList)
	group.Post("/", h.auth, h.HandleCreate)
	group.Delete("/:id", h.auth, h.HandleDelete)
}

// HandleList returns the current user's workouts.
// @Summary List Workouts
// @Tags workouts
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} apierror.Error
// @Router /athlete-dashboard/v1/workouts [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext(), auth.UserID(c))
	if err != nil {
		return h.fail(c, "Failed to load workouts", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"workouts": list}})
}

// HandleCreate logs a workout.
// @Summary Create Workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param workout body models.Workout true "Workout"
// @Success 201 {object} models.Workout
// @Failure 400 {object} apierror.Error
// @Router /athlete-dashboard/v1/workouts [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var w models.Workout
	if err := c.BodyParser(&w); err != nil {
		return apierror.Invalid("Invalid parameter(s): body", map[string]string{"body": "must be a JSON object"})
	}
	created, err := h.service.Create(c.UserContext(), auth.UserID(c), w)
	if err != nil {
		return h.fail(c, "Failed to save workout", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleDelete removes a workout.
// @Summary Delete Workout
// @Tags workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} apierror.Error
// @Router /athlete-dashboard/v1/workouts/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.UserContext(), auth.UserID(c), id); err != nil {
		return h.fail(c, "Failed to delete workout", err)
	}
	return c.JSON(fiber.Map{"deleted": true, "id": id})
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return apierror.Invalid(verrs.Error(), verrs)
	case errors.Is(err, ErrWorkoutNotFound):
		return apierror.NotFound("rest_workout_invalid_id", "Invalid workout ID.")
	case errors.Is(err, usermeta.ErrUserNotFound):
		return apierror.NotFound("rest_user_invalid_id", "Invalid user ID.")
	}
	logger.WithUser(h.service.logger, c).Error(msg, zap.Error(err))
	return apierror.Internal("rest_persistence_failed", msg+".", err)
}
