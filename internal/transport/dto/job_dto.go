package dto

import (
	"time"

	"github.com/google/uuid"

	"placement-portal/internal/models"
)

// CreateJobRequest defines the structure for posting a new job. UserID is the
// posting recruiter's account id, set from the auth context. Any caller-supplied
// admin_approval_status is accepted by the decoder and then discarded: a new
// job always starts PENDING.
type CreateJobRequest struct {
	UserID               uuid.UUID `json:"-"`
	RecruiterProfileID   uuid.UUID `json:"-"`
	Title                string    `json:"title" validate:"required,max=200"`
	Department           string    `json:"department" validate:"omitempty,max=100"`
	Location             string    `json:"location" validate:"omitempty,max=200"`
	JobType              string    `json:"job_type" validate:"omitempty,max=50"`
	StipendSalary        string    `json:"stipend_salary" validate:"omitempty,max=100"`
	Duration             string    `json:"duration" validate:"omitempty,max=100"`
	Description          string    `json:"description" validate:"omitempty,max=5000"`
	Requirements         string    `json:"requirements" validate:"omitempty,max=5000"`
	QuestionForApplicant *string   `json:"question_for_applicant" validate:"omitempty,max=1000"`
	AdminApprovalStatus  string    `json:"admin_approval_status" validate:"-"`
}

// JobResponse is the caller-facing job projection, with the recruiter's
// company details denormalized for listings.
type JobResponse struct {
	ID                   uuid.UUID             `json:"id"`
	RecruiterProfileID   uuid.UUID             `json:"recruiter_profile_id"`
	Title                string                `json:"title"`
	Department           string                `json:"department"`
	Location             string                `json:"location"`
	JobType              string                `json:"job_type"`
	StipendSalary        string                `json:"stipend_salary"`
	Duration             string                `json:"duration"`
	Description          string                `json:"description"`
	Requirements         string                `json:"requirements"`
	QuestionForApplicant *string               `json:"question_for_applicant,omitempty"`
	AdminApprovalStatus  models.ApprovalStatus `json:"admin_approval_status"`
	CompanyName          string                `json:"company_name,omitempty"`
	CompanyLogo          *string               `json:"company_logo,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
}

// ApproveJobRequest is the admin approval/rejection action.
type ApproveJobRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	Status string    `json:"status" validate:"required"`
}

// DeleteJobRequest removes a job the calling recruiter owns.
type DeleteJobRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}
