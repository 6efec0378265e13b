package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"placement-portal/internal/models"
	"placement-portal/internal/storage"
	"placement-portal/internal/transport/dto"
)

type jobService struct {
	jobs       storage.JobRepository
	recruiters storage.RecruiterProfileRepository
	docs       storage.DocumentRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobs storage.JobRepository, recruiters storage.RecruiterProfileRepository, docs storage.DocumentRepository) JobService {
	return &jobService{
		jobs:       jobs,
		recruiters: recruiters,
		docs:       docs,
	}
}

// Create posts a new job for the calling recruiter. The recruiter must have a
// complete profile and an approved copy of every compliance document type;
// the new job always starts PENDING.
func (s *jobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	profile, err := s.recruiters.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: create your recruiter profile before posting jobs", ErrValidation)
		}
		return nil, MapRepoError(err, "get recruiter profile")
	}

	if profile.FirstName == "" || profile.LastName == "" || profile.Email == "" ||
		profile.Phone == "" || profile.Company == "" {
		return nil, fmt.Errorf("%w: complete your recruiter profile (name, email, phone, company) before posting jobs", ErrValidation)
	}

	missing, err := s.missingComplianceDocuments(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		log.Printf("JobService: Recruiter %s blocked from posting, missing approved documents: %v", profile.ID, missing)
		return nil, fmt.Errorf("%w: approved compliance documents required: %v", ErrInvalidState, missing)
	}

	req.RecruiterProfileID = profile.ID
	job, err := s.jobs.Create(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "create job")
	}
	return job, nil
}

// ListApproved returns the student-visible job board with company details
// denormalized onto each posting.
func (s *jobService) ListApproved(ctx context.Context) ([]dto.JobResponse, error) {
	jobs, err := s.jobs.ListApproved(ctx)
	if err != nil {
		return nil, MapRepoError(err, "list approved jobs")
	}
	return s.withCompanyDetails(ctx, jobs), nil
}

// ListMine returns the calling recruiter's own postings, any approval status.
func (s *jobService) ListMine(ctx context.Context, userID uuid.UUID) ([]dto.JobResponse, error) {
	profile, err := s.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []dto.JobResponse{}, nil
		}
		return nil, MapRepoError(err, "get recruiter profile")
	}

	jobs, err := s.jobs.ListByRecruiter(ctx, profile.ID)
	if err != nil {
		return nil, MapRepoError(err, "list jobs by recruiter")
	}
	return s.withCompanyDetails(ctx, jobs), nil
}

// GetAll returns every posting regardless of approval status. Admin view.
func (s *jobService) GetAll(ctx context.Context) ([]dto.JobResponse, error) {
	jobs, err := s.jobs.GetAll(ctx)
	if err != nil {
		return nil, MapRepoError(err, "list jobs")
	}
	return s.withCompanyDetails(ctx, jobs), nil
}

// Approve records the admin verdict on a posting.
func (s *jobService) Approve(ctx context.Context, req *dto.ApproveJobRequest) (*models.Job, error) {
	status, err := parseApprovalStatus(req.Status)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.UpdateApprovalStatus(ctx, req.ID, status)
	if err != nil {
		return nil, MapRepoError(err, "update job approval status")
	}
	return job, nil
}

// Delete removes a posting the calling recruiter owns. A posting owned by
// someone else is indistinguishable from a missing one.
func (s *jobService) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	job, err := s.jobs.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return MapRepoError(err, "get job")
	}

	profile, err := s.recruiters.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return MapRepoError(err, "get recruiter profile")
	}
	if job.RecruiterProfileID != profile.ID {
		return ErrNotFound
	}

	if err := s.jobs.Delete(ctx, req.ID); err != nil {
		return MapRepoError(err, "delete job")
	}
	return nil
}

// missingComplianceDocuments returns the compliance document types the
// recruiter has no approved copy of.
func (s *jobService) missingComplianceDocuments(ctx context.Context, profileID uuid.UUID) ([]models.DocumentType, error) {
	var missing []models.DocumentType
	for _, docType := range models.ComplianceDocumentTypes {
		approved, err := s.docs.ListByProfileTypeStatus(ctx, profileID, docType, models.ApprovalStatusApproved)
		if err != nil {
			return nil, MapRepoError(err, "check compliance documents")
		}
		if len(approved) == 0 {
			missing = append(missing, docType)
		}
	}
	return missing, nil
}

// withCompanyDetails joins recruiter company fields onto each job, fetching
// each distinct profile once.
func (s *jobService) withCompanyDetails(ctx context.Context, jobs []models.Job) []dto.JobResponse {
	profiles := make(map[uuid.UUID]*models.RecruiterProfile)
	responses := make([]dto.JobResponse, 0, len(jobs))

	for i := range jobs {
		job := &jobs[i]
		profile, ok := profiles[job.RecruiterProfileID]
		if !ok {
			var err error
			profile, err = s.recruiters.GetByID(ctx, job.RecruiterProfileID)
			if err != nil {
				log.Printf("JobService: Error fetching recruiter profile %s for job %s: %v", job.RecruiterProfileID, job.ID, err)
				profile = nil
			}
			profiles[job.RecruiterProfileID] = profile
		}
		responses = append(responses, mapJobToResponse(job, profile))
	}

	return responses
}
