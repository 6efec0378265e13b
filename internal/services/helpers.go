package services

import (
	"errors"
	"fmt"
	"log"

	"placement-portal/internal/models"
	"placement-portal/internal/storage"
	"placement-portal/internal/transport/dto"
)

// isValidApplicationStatusTransition defines the allowed lifecycle changes.
func isValidApplicationStatusTransition(from, to models.ApplicationStatus) bool {
	switch from {
	case models.ApplicationStatusApplied:
		return to == models.ApplicationStatusReviewed ||
			to == models.ApplicationStatusAccepted ||
			to == models.ApplicationStatusRejected
	case models.ApplicationStatusReviewed:
		return to == models.ApplicationStatusAccepted ||
			to == models.ApplicationStatusRejected
	case models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
		// Terminal states
		return false
	default:
		return false
	}
}

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		// The repo layer should provide more context for conflict errors if possible
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// parseApprovalStatus accepts only a review verdict; a record can never be
// moved back to PENDING.
func parseApprovalStatus(raw string) (models.ApprovalStatus, error) {
	status := models.ApprovalStatus(raw)
	switch status {
	case models.ApprovalStatusApproved, models.ApprovalStatusRejected:
		return status, nil
	default:
		return "", fmt.Errorf("%w: status must be APPROVED or REJECTED", ErrValidation)
	}
}

func profileDisplayName(firstName, lastName, fallback string) string {
	if firstName == "" && lastName == "" {
		return fallback
	}
	if lastName == "" {
		return firstName
	}
	return firstName + " " + lastName
}

func mapDocumentInfo(doc *models.Document) *dto.DocumentInfo {
	if doc == nil {
		return nil
	}
	return &dto.DocumentInfo{
		ID:     doc.ID,
		Name:   doc.Name,
		URL:    doc.URL,
		Status: doc.Status,
	}
}

func mapUserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func mapJobToResponse(job *models.Job, recruiter *models.RecruiterProfile) dto.JobResponse {
	resp := dto.JobResponse{
		ID:                   job.ID,
		RecruiterProfileID:   job.RecruiterProfileID,
		Title:                job.Title,
		Department:           job.Department,
		Location:             job.Location,
		JobType:              job.JobType,
		StipendSalary:        job.StipendSalary,
		Duration:             job.Duration,
		Description:          job.Description,
		Requirements:         job.Requirements,
		QuestionForApplicant: job.QuestionForApplicant,
		AdminApprovalStatus:  job.AdminApprovalStatus,
		CreatedAt:            job.CreatedAt,
		UpdatedAt:            job.UpdatedAt,
	}
	if recruiter != nil {
		resp.CompanyName = recruiter.Company
		resp.CompanyLogo = recruiter.CompanyLogo
	}
	return resp
}
