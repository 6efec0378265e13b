package services

import (
	"context"

	"github.com/google/uuid"

	"placement-portal/internal/models"
	"placement-portal/internal/transport/dto"
)

// UserService defines the interface for account and session business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) // Returns user and token
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

// ProfileService defines the interface for student and recruiter profile
// business logic.
type ProfileService interface {
	UpsertStudentProfile(ctx context.Context, req *dto.UpsertStudentProfileRequest) (*models.StudentProfile, error)
	GetStudentProfile(ctx context.Context, userID uuid.UUID) (*models.StudentProfile, error)
	UpsertRecruiterProfile(ctx context.Context, req *dto.UpsertRecruiterProfileRequest) (*models.RecruiterProfile, error)
	GetRecruiterProfile(ctx context.Context, userID uuid.UUID) (*models.RecruiterProfile, error)
	ListStudentProfiles(ctx context.Context) ([]models.StudentProfile, error)
	ListRecruiterProfiles(ctx context.Context) ([]models.RecruiterProfile, error)
}

// DocumentService defines the interface for document upload and review
// business logic.
type DocumentService interface {
	Upload(ctx context.Context, req *dto.UploadDocumentRequest) (*models.Document, error)
	List(ctx context.Context, req *dto.ListDocumentsRequest) ([]models.Document, error)
	Delete(ctx context.Context, req *dto.DeleteDocumentRequest) error
	GetAll(ctx context.Context) ([]models.Document, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateDocumentStatusRequest) (*models.Document, error)
}

// JobService defines the interface for job posting business logic.
type JobService interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	ListApproved(ctx context.Context) ([]dto.JobResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]dto.JobResponse, error)
	GetAll(ctx context.Context) ([]dto.JobResponse, error)
	Approve(ctx context.Context, req *dto.ApproveJobRequest) (*models.Job, error)
	Delete(ctx context.Context, req *dto.DeleteJobRequest) error
}

// ApplicationService defines the interface for application business logic.
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]dto.ApplicationResponse, error)
	ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]dto.ApplicationResponse, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

// MessageService defines the interface for application thread messaging.
type MessageService interface {
	Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	List(ctx context.Context, req *dto.ListMessagesRequest) ([]dto.MessageResponse, error)
}
