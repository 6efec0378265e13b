package dto

import (
	"time"

	"github.com/google/uuid"

	"placement-portal/internal/models"
)

// ApplyRequest submits one application for the calling student. Document ids
// must resolve to documents the caller owns, of the matching type.
type ApplyRequest struct {
	UserID             uuid.UUID   `json:"-"`
	JobID              uuid.UUID   `json:"job_id" validate:"required"`
	ResumeID           *uuid.UUID  `json:"resume_id" validate:"omitempty"`
	MarksheetID        *uuid.UUID  `json:"marksheet_id" validate:"omitempty"`
	CertificateIDs     []uuid.UUID `json:"certificate_ids" validate:"omitempty,max=20"`
	AnswerForRecruiter *string     `json:"answer_for_recruiter" validate:"omitempty,max=5000"`
}

// ListApplicationsByJobRequest lists applications received for one job.
// Only the owning recruiter may call it.
type ListApplicationsByJobRequest struct {
	JobID  uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

// UpdateApplicationStatusRequest moves an application through its review
// lifecycle. The caller must be the job's owning recruiter or an admin.
type UpdateApplicationStatusRequest struct {
	ID     uuid.UUID   `json:"-" validate:"required"`
	UserID uuid.UUID   `json:"-"`
	Role   models.Role `json:"-"`
	Status string      `json:"status" validate:"required"`
}

// DocumentInfo is the compact document projection embedded in application
// responses.
type DocumentInfo struct {
	ID     uuid.UUID             `json:"id"`
	Name   string                `json:"name"`
	URL    string                `json:"url"`
	Status models.ApprovalStatus `json:"status"`
}

// ApplicationResponse denormalizes everything a reviewer needs in one view:
// the student's academic identity, the resolved documents and the job's
// screening question with the student's answer.
type ApplicationResponse struct {
	ID                   uuid.UUID                `json:"id"`
	JobID                uuid.UUID                `json:"job_id"`
	JobTitle             string                   `json:"job_title"`
	StudentProfileID     uuid.UUID                `json:"student_profile_id"`
	StudentName          string                   `json:"student_name"`
	StudentEmail         string                   `json:"student_email"`
	College              string                   `json:"college"`
	Course               string                   `json:"course"`
	YearOfStudy          int                      `json:"year_of_study"`
	Skills               []string                 `json:"skills"`
	Resume               *DocumentInfo            `json:"resume,omitempty"`
	Marksheet            *DocumentInfo            `json:"marksheet,omitempty"`
	Certificates         []DocumentInfo           `json:"certificates"`
	Status               models.ApplicationStatus `json:"status"`
	QuestionForApplicant *string                  `json:"question_for_applicant,omitempty"`
	AnswerForRecruiter   *string                  `json:"answer_for_recruiter,omitempty"`
	AppliedAt            time.Time                `json:"applied_at"`
}
