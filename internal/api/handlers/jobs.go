// internal/api/handlers/jobs.go
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

// JobHandler holds the service dependency for job operations
type JobHandler struct {
	svc       services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler with the given service
func NewJobHandler(svc services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{svc: svc, validator: validate}
}

// Create godoc
// @Summary      Post a new job
// @Description  The recruiter must have a profile and approved compliance documents. The posting starts PENDING and is invisible to students until an admin approves it.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        job  body      dto.CreateJobRequest true "Job to post"
// @Success      201  {object}  models.Job "Job created"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input or missing profile"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      409  {object}  map[string]string "Conflict - Compliance documents not approved"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// ListApproved godoc
// @Summary      List approved jobs
// @Description  The student-facing job board. Only admin-approved postings appear, with company details joined on.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.JobResponse "Approved jobs"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /jobs [get]
func (h *JobHandler) ListApproved(c *gin.Context) {
	jobs, err := h.svc.ListApproved(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// ListMine godoc
// @Summary      List the caller's own postings
// @Description  Includes postings in every approval status.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.JobResponse "Own postings"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /jobs/my [get]
func (h *JobHandler) ListMine(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	jobs, err := h.svc.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// Delete godoc
// @Summary      Delete a posting
// @Description  Only the posting's owning recruiter may delete it.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string true "Job ID" Format(uuid)
// @Success      204  "Job deleted"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      404  {object}  map[string]string "Job not found or not owned by the caller"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	req := dto.DeleteJobRequest{ID: id, UserID: userID}
	if err := h.svc.Delete(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
