package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"placement-portal/internal/models"
	"placement-portal/internal/transport/dto"
)

// TxBeginner begins database transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// StudentProfileRepository defines the interface for student profile data
// operations. Upsert is keyed by the owning account (user_id unique).
type StudentProfileRepository interface {
	Upsert(ctx context.Context, req *dto.UpsertStudentProfileRequest) (*models.StudentProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.StudentProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.StudentProfile, error)
	GetAll(ctx context.Context) ([]models.StudentProfile, error)
	UpdateProfilePicture(ctx context.Context, id uuid.UUID, url string) error
	WithTx(tx pgx.Tx) StudentProfileRepository
}

// RecruiterProfileRepository defines the interface for recruiter profile data
// operations.
type RecruiterProfileRepository interface {
	Upsert(ctx context.Context, req *dto.UpsertRecruiterProfileRequest) (*models.RecruiterProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.RecruiterProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.RecruiterProfile, error)
	GetAll(ctx context.Context) ([]models.RecruiterProfile, error)
	UpdateCompanyLogo(ctx context.Context, id uuid.UUID, url string) error
	WithTx(tx pgx.Tx) RecruiterProfileRepository
}

// DocumentRepository defines the interface for document metadata operations.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) (*models.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID, docType *models.DocumentType) ([]models.Document, error)
	ListByProfileTypeStatus(ctx context.Context, profileID uuid.UUID, docType models.DocumentType, status models.ApprovalStatus) ([]models.Document, error)
	GetAll(ctx context.Context) ([]models.Document, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApprovalStatus, remarks *string) (*models.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
	WithTx(tx pgx.Tx) DocumentRepository
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListApproved(ctx context.Context) ([]models.Job, error)
	ListByRecruiter(ctx context.Context, recruiterProfileID uuid.UUID) ([]models.Job, error)
	GetAll(ctx context.Context) ([]models.Job, error)
	UpdateApprovalStatus(ctx context.Context, id uuid.UUID, status models.ApprovalStatus) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ApplicationRepository defines the interface for application data operations.
// Applications are never deleted; only status mutates after creation.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListByStudent(ctx context.Context, studentProfileID uuid.UUID) ([]models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
}

// MessageRepository defines the interface for message data operations.
// Messages are immutable once created.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) (*models.Message, error)
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]models.Message, error)
}

// TokenStore holds short-lived token state: password reset tokens and revoked
// JWT ids, both with TTLs.
type TokenStore interface {
	StoreResetToken(ctx context.Context, token, email string, ttl time.Duration) error
	ConsumeResetToken(ctx context.Context, token string) (string, error)
	RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}
