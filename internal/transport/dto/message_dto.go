package dto

import (
	"time"

	"github.com/google/uuid"

	"placement-portal/internal/models"
)

// SendMessageRequest posts one message on an application thread. The sender is
// resolved from the auth context and must be one of the application's parties.
type SendMessageRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"`
	UserID        uuid.UUID `json:"-"`
	Content       string    `json:"content" validate:"required,max=10000"`
}

// ListMessagesRequest lists an application's thread for one of its parties.
type ListMessagesRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"`
	UserID        uuid.UUID `json:"-"`
}

// MessageResponse always carries plaintext content; ciphertext never leaves
// the storage layer.
type MessageResponse struct {
	ID            uuid.UUID   `json:"id"`
	ApplicationID uuid.UUID   `json:"application_id"`
	SenderEmail   string      `json:"sender_email"`
	SenderRole    models.Role `json:"sender_role"`
	SenderName    string      `json:"sender_name"`
	ReceiverEmail string      `json:"receiver_email"`
	ReceiverRole  models.Role `json:"receiver_role"`
	Content       string      `json:"content"`
	SentAt        time.Time   `json:"sent_at"`
}
