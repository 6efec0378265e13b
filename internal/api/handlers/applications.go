// internal/api/handlers/applications.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"placement-portal/internal/api/middleware"
	"placement-portal/internal/services"
	"placement-portal/internal/transport/dto"
)

// ApplicationHandler holds the service dependency for application operations
type ApplicationHandler struct {
	svc       services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler with the given service
func NewApplicationHandler(svc services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, validator: validate}
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submits an application to an approved job. Attached document ids must belong to the caller and match their slot's type; any failure rejects the whole submission.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        application body      dto.ApplyRequest true "Application contents"
// @Success      201  {object}  models.Application "Application submitted"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input or document references"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      404  {object}  map[string]string "Job not found"
// @Failure      409  {object}  map[string]string "Conflict - Job not open for applications"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /applications/apply [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.svc.Apply(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListMine godoc
// @Summary      List the caller's applications
// @Description  Every application the calling student has submitted, with job and document details resolved.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ApplicationResponse "Applications"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /applications/my [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	apps, err := h.svc.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// ListByJob godoc
// @Summary      List a job's applications
// @Description  Only the job's owning recruiter sees its applications.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        job_id path    string true "Job ID" Format(uuid)
// @Success      200  {array}   dto.ApplicationResponse "Applications"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      403  {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404  {object}  map[string]string "Job not found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /applications/job/{job_id} [get]
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	req := dto.ListApplicationsByJobRequest{JobID: jobID, UserID: userID}
	apps, err := h.svc.ListByJob(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// UpdateStatus godoc
// @Summary      Update an application's status
// @Description  Moves an application through APPLIED, REVIEWED, ACCEPTED, REJECTED. ACCEPTED and REJECTED are terminal. Only the job's owning recruiter or an admin may call this.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string true "Application ID" Format(uuid)
// @Param        status body      dto.UpdateApplicationStatusRequest true "Target status"
// @Success      200  {object}  models.Application "Application updated"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      403  {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404  {object}  map[string]string "Application not found"
// @Failure      409  {object}  map[string]string "Conflict - Transition not allowed"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	role, err := middleware.GetRoleFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	req.UserID = userID
	req.Role = role

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.svc.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}
