// internal/api/handlers/documents.go
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"placement-portal/internal/api/middleware"
	"placement-portal/internal/services"
	"placement-portal/internal/transport/dto"
)

// DocumentHandler holds the service dependency for document operations
type DocumentHandler struct {
	svc       services.DocumentService
	validator *validator.Validate
}

// NewDocumentHandler creates a new DocumentHandler with the given service
func NewDocumentHandler(svc services.DocumentService, validate *validator.Validate) *DocumentHandler {
	return &DocumentHandler{svc: svc, validator: validate}
}

// Upload godoc
// @Summary      Upload a document
// @Description  Multipart upload. "type" selects the document type; certificates may carry a display name. Review status starts PENDING.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        type             formData  string true  "Document type"
// @Param        certificate_name formData  string false "Display name for certificates"
// @Param        file             formData  file   true  "File contents"
// @Success      201  {object}  models.Document "Document stored"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid file or type"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
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

	var req dto.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.UserID = userID
	req.Role = role

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %s: %v", fileHeader.Filename, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	req.File = file
	req.FileName = fileHeader.Filename
	req.SizeBytes = fileHeader.Size
	req.ContentType = fileHeader.Header.Get("Content-Type")

	doc, err := h.svc.Upload(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// List godoc
// @Summary      List the caller's documents
// @Description  Returns the caller's own documents, optionally filtered by type.
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        type query     string false "Document type filter"
// @Success      200  {array}   models.Document "Documents"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
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

	req := dto.ListDocumentsRequest{UserID: userID, Role: role}
	if t := c.Query("type"); t != "" {
		req.Type = &t
	}

	docs, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}

// Delete godoc
// @Summary      Delete a document
// @Description  Removes a document the caller owns, along with its stored file.
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string true "Document ID" Format(uuid)
// @Success      204  "Document deleted"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      403  {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404  {object}  map[string]string "Document not found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
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
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}

	req := dto.DeleteDocumentRequest{ID: id, UserID: userID, Role: role}
	if err := h.svc.Delete(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
