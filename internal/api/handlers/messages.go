// internal/api/handlers/messages.go
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

// MessageHandler holds the service dependency for message operations
type MessageHandler struct {
	svc       services.MessageService
	validator *validator.Validate
}

// NewMessageHandler creates a new MessageHandler with the given service
func NewMessageHandler(svc services.MessageService, validate *validator.Validate) *MessageHandler {
	return &MessageHandler{svc: svc, validator: validate}
}

// Send godoc
// @Summary      Send a message on an application thread
// @Description  Only the application's student or the job's owning recruiter may write. Content is encrypted at rest.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string true "Application ID" Format(uuid)
// @Param        message body      dto.SendMessageRequest true "Message content"
// @Success      201  {object}  dto.MessageResponse "Message sent"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      403  {object}  map[string]string "Forbidden - Not a party"
// @Failure      404  {object}  map[string]string "Application not found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicationID = applicationID
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	msg, err := h.svc.Send(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// List godoc
// @Summary      Read an application thread
// @Description  Returns the thread in send order, decrypted, for one of its parties.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string true "Application ID" Format(uuid)
// @Success      200  {array}   dto.MessageResponse "Messages"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid ID"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      403  {object}  map[string]string "Forbidden - Not a party"
// @Failure      404  {object}  map[string]string "Application not found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	req := dto.ListMessagesRequest{ApplicationID: applicationID, UserID: userID}
	msgs, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, msgs)
}
