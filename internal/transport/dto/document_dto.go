package dto

import (
	"io"

	"github.com/google/uuid"

	"placement-portal/internal/models"
)

// UploadDocumentRequest carries one multipart file plus its type
// discriminator. Identity fields come from the auth context; file fields from
// the multipart header.
type UploadDocumentRequest struct {
	UserID          uuid.UUID    `json:"-"`
	Role            models.Role  `json:"-"`
	Type            string       `form:"type" validate:"required"`
	CertificateName string       `form:"certificate_name" validate:"omitempty,max=200"`
	FileName        string       `json:"-"`
	SizeBytes       int64        `json:"-"`
	ContentType     string       `json:"-"`
	File            io.Reader    `json:"-" validate:"-"`
}

// ListDocumentsRequest lists the caller's own documents, optionally filtered
// by type.
type ListDocumentsRequest struct {
	UserID uuid.UUID   `json:"-"`
	Role   models.Role `json:"-"`
	Type   *string     `form:"type" validate:"omitempty"`
}

// DeleteDocumentRequest removes a document the caller owns.
type DeleteDocumentRequest struct {
	ID     uuid.UUID   `json:"-" validate:"required"`
	UserID uuid.UUID   `json:"-"`
	Role   models.Role `json:"-"`
}

// UpdateDocumentStatusRequest is the admin review action.
type UpdateDocumentStatusRequest struct {
	ID      uuid.UUID `json:"-" validate:"required"`
	Status  string    `json:"status" validate:"required"`
	Remarks *string   `json:"remarks" validate:"omitempty,max=500"`
}
