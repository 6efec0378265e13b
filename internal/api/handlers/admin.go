// internal/api/handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"placement-portal/internal/services"
	"placement-portal/internal/transport/dto"
)

// AdminHandler bundles the review and oversight operations. All of its routes
// sit behind the ADMIN role gate.
type AdminHandler struct {
	jobs      services.JobService
	docs      services.DocumentService
	profiles  services.ProfileService
	validator *validator.Validate
}

// NewAdminHandler creates a new AdminHandler with the given services
func NewAdminHandler(jobs services.JobService, docs services.DocumentService, profiles services.ProfileService, validate *validator.Validate) *AdminHandler {
	return &AdminHandler{jobs: jobs, docs: docs, profiles: profiles, validator: validate}
}

// ListJobs godoc
// @Summary      List every job posting
// @Description  All postings in every approval status; the admin review queue.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.JobResponse "Jobs"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      403  {object}  map[string]string "Forbidden"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /admin/jobs [get]
func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ApproveJob godoc
// @Summary      Approve or reject a job posting
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string true "Job ID" Format(uuid)
// @Param        verdict body      dto.ApproveJobRequest true "APPROVED or REJECTED"
// @Success      200  {object}  models.Job "Job updated"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string "Job not found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /admin/jobs/{id}/status [patch]
func (h *AdminHandler) ApproveJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	var req dto.ApproveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.jobs.Approve(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListDocuments godoc
// @Summary      List every uploaded document
// @Description  The admin review queue across all profiles.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Document "Documents"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      403  {object}  map[string]string "Forbidden"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /admin/documents [get]
func (h *AdminHandler) ListDocuments(c *gin.Context) {
	docs, err := h.docs.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// ReviewDocument godoc
// @Summary      Approve or reject a document
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string true "Document ID" Format(uuid)
// @Param        verdict body      dto.UpdateDocumentStatusRequest true "APPROVED or REJECTED, with optional remarks"
// @Success      200  {object}  models.Document "Document updated"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string "Document not found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /admin/documents/{id}/status [patch]
func (h *AdminHandler) ReviewDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}

	var req dto.UpdateDocumentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	doc, err := h.docs.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ListStudentProfiles godoc
// @Summary      List every student profile
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.StudentProfile "Student profiles"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /admin/profiles/students [get]
func (h *AdminHandler) ListStudentProfiles(c *gin.Context) {
	profiles, err := h.profiles.ListStudentProfiles(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// ListRecruiterProfiles godoc
// @Summary      List every recruiter profile
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.RecruiterProfile "Recruiter profiles"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /admin/profiles/recruiters [get]
func (h *AdminHandler) ListRecruiterProfiles(c *gin.Context) {
	profiles, err := h.profiles.ListRecruiterProfiles(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}
