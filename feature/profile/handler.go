package profile

import (
	"errors"
	"strconv"

	"athlete-dashboard/core/apierror"
	"athlete-dashboard/core/logger"
	"athlete-dashboard/core/middleware/auth"
	"athlete-dashboard/core/usermeta"
	"athlete-dashboard/core/validation"
	"athlete-dashboard/feature/profile/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = MaxHistory
)

// Handler handles HTTP requests for profiles and physical data.
type Handler struct {
	service *Service
	auth    fiber.Handler
}

// NewHandler creates a new HTTP handler. authn guards every route.
func NewHandler(service *Service, authn fiber.Handler) *Handler {
	return &Handler{service: service, auth: authn}
}

// RegisterRoutes registers the profile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/athlete-dashboard/v1/profile", h.auth, h.HandleGetProfile)
	app.Post("/athlete-dashboard/v1/profile", h.auth, h.HandleUpdateProfile)
	app.Post("/athlete-dashboard/v1/profile/avatar", h.auth, h.HandleUploadAvatar)
	app.Get("/custom/v1/profile", h.auth, h.HandleGetLegacyProfile)

	physical := app.Group("/profile/physical")
	physical.Get("/:user_id", h.auth, h.HandleGetPhysical)
	physical.Post("/:user_id", h.auth, h.HandleUpdatePhysical)
	physical.Get("/:user_id/history", h.auth, h.HandleGetPhysicalHistory)
}

// HandleGetProfile returns the current user's profile.
// @Summary Get Profile
// @Description Get the profile of the authenticated athlete.
// @Tags profile
// @Produce json
// @Param X-WP-User header int true "User ID"
// @Param X-WP-Nonce header string true "REST nonce"
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} apierror.Error
// @Failure 404 {object} apierror.Error
// @Router /athlete-dashboard/v1/profile [get]
func (h *Handler) HandleGetProfile(c *fiber.Ctx) error {
	uid := auth.UserID(c)
	p, err := h.service.GetProfile(c.UserContext(), uid)
	if err != nil {
		return h.fail(c, "Failed to load profile", err)
	}
	return c.JSON(ProfileResponse{Success: true, Data: ProfileData{Profile: p}})
}

// HandleUpdateProfile merges the request body into the current user's profile.
// @Summary Update Profile
// @Description Validate and merge profile fields. Absent fields are kept.
// @Tags profile
// @Accept json
// @Produce json
// @Param X-WP-User header int true "User ID"
// @Param X-WP-Nonce header string true "REST nonce"
// @Param profile body models.Profile true "Profile fields"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} apierror.Error
// @Router /athlete-dashboard/v1/profile [post]
func (h *Handler) HandleUpdateProfile(c *fiber.Ctx) error {
	uid := auth.UserID(c)
	p, err := h.service.UpdateProfile(c.UserContext(), uid, c.Body())
	if err != nil {
		return h.fail(c, "Failed to update profile", err)
	}
	return c.JSON(ProfileResponse{Success: true, Data: ProfileData{Profile: p}})
}

// HandleUploadAvatar stores the "avatar" multipart file and returns its URL.
// @Summary Upload Avatar
// @Tags profile
// @Accept mpfd
// @Produce json
// @Param avatar formData file true "Image (jpeg, png, gif, webp; max 2MB)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} apierror.Error
// @Failure 503 {object} apierror.Error
// @Router /athlete-dashboard/v1/profile/avatar [post]
func (h *Handler) HandleUploadAvatar(c *fiber.Ctx) error {
	uid := auth.UserID(c)
	fh, err := c.FormFile("avatar")
	if err != nil {
		return apierror.Invalid("Invalid parameter(s): avatar", map[string]string{"avatar": "is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return apierror.Internal("rest_upload_failed", "Could not read the uploaded file.", err)
	}
	defer f.Close()

	url, err := h.service.UploadAvatar(c.UserContext(), uid, fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		return h.fail(c, "Avatar upload failed", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"avatarUrl": url}})
}

// HandleGetLegacyProfile returns the flat legacy profile shape.
// @Summary Get Legacy Profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.LegacyProfile
// @Failure 401 {object} apierror.Error
// @Router /custom/v1/profile [get]
func (h *Handler) HandleGetLegacyProfile(c *fiber.Ctx) error {
	p, err := h.service.LegacyProfile(c.UserContext(), auth.UserID(c))
	if err != nil {
		return h.fail(c, "Failed to load legacy profile", err)
	}
	return c.JSON(p)
}

// HandleGetPhysical returns a user's physical data.
// @Summary Get Physical Data
// @Tags physical
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.PhysicalData
// @Failure 403 {object} apierror.Error
// @Failure 404 {object} apierror.Error
// @Router /profile/physical/{user_id} [get]
func (h *Handler) HandleGetPhysical(c *fiber.Ctx) error {
	target, err := h.target(c)
	if err != nil {
		return err
	}
	d, err := h.service.GetPhysical(c.UserContext(), target)
	if err != nil {
		return h.fail(c, "Failed to load physical data", err)
	}
	return c.JSON(d)
}

// HandleUpdatePhysical validates and stores a user's physical data.
// @Summary Update Physical Data
// @Tags physical
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param data body models.PhysicalData true "Measurements"
// @Success 200 {object} models.PhysicalData
// @Failure 400 {object} apierror.Error
// @Failure 403 {object} apierror.Error
// @Router /profile/physical/{user_id} [post]
func (h *Handler) HandleUpdatePhysical(c *fiber.Ctx) error {
	target, err := h.target(c)
	if err != nil {
		return err
	}
	var d models.PhysicalData
	if err := c.BodyParser(&d); err != nil {
		return apierror.Invalid("Invalid parameter(s): body", map[string]string{"body": "must be a JSON object"})
	}
	saved, err := h.service.UpdatePhysical(c.UserContext(), target, d)
	if err != nil {
		return h.fail(c, "Failed to update physical data", err)
	}
	return c.JSON(saved)
}

// HandleGetPhysicalHistory lists saved measurements, newest first.
// @Summary Get Physical History
// @Tags physical
// @Produce json
// @Param user_id path int true "User ID"
// @Param limit query int false "Maximum entries (default 10, max 100)"
// @Success 200 {array} models.PhysicalData
// @Router /profile/physical/{user_id}/history [get]
func (h *Handler) HandleGetPhysicalHistory(c *fiber.Ctx) error {
	target, err := h.target(c)
	if err != nil {
		return err
	}
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit <= 0 || limit > maxHistoryLimit {
		return apierror.Invalid("Invalid parameter(s): limit", map[string]string{"limit": "must be between 1 and " + strconv.Itoa(maxHistoryLimit)})
	}
	history, err := h.service.History(c.UserContext(), target, limit)
	if err != nil {
		return h.fail(c, "Failed to load physical history", err)
	}
	return c.JSON(history)
}

// target resolves :user_id and checks the caller may access it.
func (h *Handler) target(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("user_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apierror.Invalid("Invalid parameter(s): user_id", map[string]string{"user_id": "must be a positive integer"})
	}
	ok, err := h.service.CanAccess(c.UserContext(), auth.UserID(c), uint(id))
	if err != nil {
		return 0, h.fail(c, "Permission check failed", err)
	}
	if !ok {
		return 0, apierror.Forbidden("Sorry, you are not allowed to access this user's data.")
	}
	return uint(id), nil
}

// fail logs err and maps it onto a WordPress REST error.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return apierror.Invalid(verrs.Error(), verrs)
	case errors.Is(err, usermeta.ErrUserNotFound):
		return apierror.NotFound("rest_user_invalid_id", "Invalid user ID.")
	case errors.Is(err, ErrUnsupportedAvatar):
		return apierror.Invalid("Avatar must be a JPEG, PNG, GIF or WebP image up to 2MB.", map[string]string{"avatar": "unsupported file"})
	case errors.Is(err, ErrStorageUnavailable):
		return apierror.New(fiber.StatusServiceUnavailable, "rest_storage_unavailable", "File uploads are not available.")
	}
	logger.WithUser(h.service.logger, c).Error(msg, zap.Error(err))
	return apierror.Internal("rest_persistence_failed", msg+".", err)
}

// ProfileResponse wraps a profile the way the dashboard client expects.
type ProfileResponse struct {
	Success bool        `json:"success"`
	Data    ProfileData `json:"data"`
}

// ProfileData is the data member of ProfileResponse.
type ProfileData struct {
	Profile *models.Profile `json:"profile"`
}
