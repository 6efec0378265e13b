// internal/api/handlers/profiles.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"placement-portal/internal/api/middleware"
	"placement-portal/internal/services"
	"placement-portal/internal/transport/dto"
)

// ProfileHandler holds the service dependency for profile operations
type ProfileHandler struct {
	svc       services.ProfileService
	validator *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler with the given service
func NewProfileHandler(svc services.ProfileService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{svc: svc, validator: validate}
}

// UpsertStudentProfile godoc
// @Summary      Create or replace the caller's student profile
// @Description  Idempotent: the account's single profile is created on first call and replaced afterwards.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile body      dto.UpsertStudentProfileRequest true "Profile contents"
// @Success      200  {object}  models.StudentProfile "Profile saved"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /students/profile [put]
func (h *ProfileHandler) UpsertStudentProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.UpsertStudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	profile, err := h.svc.UpsertStudentProfile(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetStudentProfile godoc
// @Summary      Get the caller's student profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.StudentProfile "Profile"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      404  {object}  map[string]string "Profile not created yet"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /students/profile [get]
func (h *ProfileHandler) GetStudentProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	profile, err := h.svc.GetStudentProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpsertRecruiterProfile godoc
// @Summary      Create or replace the caller's recruiter profile
// @Description  Idempotent: the account's single profile is created on first call and replaced afterwards.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile body      dto.UpsertRecruiterProfileRequest true "Profile contents"
// @Success      200  {object}  models.RecruiterProfile "Profile saved"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /recruiters/profile [put]
func (h *ProfileHandler) UpsertRecruiterProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.UpsertRecruiterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	profile, err := h.svc.UpsertRecruiterProfile(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetRecruiterProfile godoc
// @Summary      Get the caller's recruiter profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.RecruiterProfile "Profile"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      404  {object}  map[string]string "Profile not created yet"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /recruiters/profile [get]
func (h *ProfileHandler) GetRecruiterProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	profile, err := h.svc.GetRecruiterProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
