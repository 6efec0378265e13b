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

type applicationService struct {
	apps       storage.ApplicationRepository
	jobs       storage.JobRepository
	students   storage.StudentProfileRepository
	recruiters storage.RecruiterProfileRepository
	docs       storage.DocumentRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(
	apps storage.ApplicationRepository,
	jobs storage.JobRepository,
	students storage.StudentProfileRepository,
	recruiters storage.RecruiterProfileRepository,
	docs storage.DocumentRepository,
) ApplicationService {
	return &applicationService{
		apps:       apps,
		jobs:       jobs,
		students:   students,
		recruiters: recruiters,
		docs:       docs,
	}
}

// Apply submits an application to an approved job. Every attached document id
// must resolve to a document the caller owns, of the matching type; the first
// failure aborts the whole submission before anything is written.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	student, err := s.students.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: create your student profile before applying", ErrValidation)
		}
		return nil, MapRepoError(err, "get student profile")
	}

	job, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: job", ErrNotFound)
		}
		return nil, MapRepoError(err, "get job")
	}
	if job.AdminApprovalStatus != models.ApprovalStatusApproved {
		return nil, fmt.Errorf("%w: job is not open for applications", ErrInvalidState)
	}

	if req.ResumeID != nil {
		if err := s.checkOwnedDocument(ctx, *req.ResumeID, student.ID, models.DocumentTypeResume); err != nil {
			return nil, err
		}
	}
	if req.MarksheetID != nil {
		if err := s.checkOwnedDocument(ctx, *req.MarksheetID, student.ID, models.DocumentTypeMarksheet); err != nil {
			return nil, err
		}
	}
	for _, certID := range req.CertificateIDs {
		if err := s.checkOwnedDocument(ctx, certID, student.ID, models.DocumentTypeCertificate); err != nil {
			return nil, err
		}
	}

	app, err := s.apps.Create(ctx, &models.Application{
		StudentProfileID:   student.ID,
		JobID:              job.ID,
		ResumeID:           req.ResumeID,
		MarksheetID:        req.MarksheetID,
		CertificateIDs:     req.CertificateIDs,
		AnswerForRecruiter: req.AnswerForRecruiter,
	})
	if err != nil {
		return nil, MapRepoError(err, "create application")
	}

	log.Printf("ApplicationService: Student %s applied to job %s (application %s)", student.ID, job.ID, app.ID)
	return app, nil
}

// ListMine returns the calling student's applications, fully projected.
func (s *applicationService) ListMine(ctx context.Context, userID uuid.UUID) ([]dto.ApplicationResponse, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []dto.ApplicationResponse{}, nil
		}
		return nil, MapRepoError(err, "get student profile")
	}

	apps, err := s.apps.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, MapRepoError(err, "list applications by student")
	}

	return s.projectAll(ctx, apps), nil
}

// ListByJob returns a job's applications for its owning recruiter.
func (s *applicationService) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]dto.ApplicationResponse, error) {
	job, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: job", ErrNotFound)
		}
		return nil, MapRepoError(err, "get job")
	}

	if err := s.checkJobOwnership(ctx, job, req.UserID); err != nil {
		return nil, err
	}

	apps, err := s.apps.ListByJob(ctx, req.JobID)
	if err != nil {
		return nil, MapRepoError(err, "list applications by job")
	}

	return s.projectAll(ctx, apps), nil
}

// UpdateStatus moves an application through its review lifecycle. Only the
// job's owning recruiter or an admin may call it, and only transitions the
// lifecycle allows go through.
func (s *applicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	status := models.ApplicationStatus(req.Status)
	switch status {
	case models.ApplicationStatusApplied, models.ApplicationStatusReviewed,
		models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
	default:
		return nil, fmt.Errorf("%w: unknown application status %q", ErrValidation, req.Status)
	}

	app, err := s.apps.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: application", ErrNotFound)
		}
		return nil, MapRepoError(err, "get application")
	}

	if req.Role != models.RoleAdmin {
		job, err := s.jobs.GetByID(ctx, app.JobID)
		if err != nil {
			return nil, MapRepoError(err, "get job")
		}
		if err := s.checkJobOwnership(ctx, job, req.UserID); err != nil {
			return nil, err
		}
	}

	if !isValidApplicationStatusTransition(app.Status, status) {
		return nil, fmt.Errorf("%w: cannot move application from %s to %s", ErrInvalidTransition, app.Status, status)
	}

	updated, err := s.apps.UpdateStatus(ctx, req.ID, status)
	if err != nil {
		return nil, MapRepoError(err, "update application status")
	}
	return updated, nil
}

// checkOwnedDocument verifies a document exists, belongs to the student and
// has the expected type.
func (s *applicationService) checkOwnedDocument(ctx context.Context, id, studentProfileID uuid.UUID, expected models.DocumentType) error {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s document %s not found", ErrValidation, expected, id)
		}
		return MapRepoError(err, "get document")
	}
	if doc.ProfileID != studentProfileID {
		return fmt.Errorf("%w: %s document %s belongs to another profile", ErrValidation, expected, id)
	}
	if doc.Type != expected {
		return fmt.Errorf("%w: document %s is a %s, expected %s", ErrValidation, id, doc.Type, expected)
	}
	return nil
}

func (s *applicationService) checkJobOwnership(ctx context.Context, job *models.Job, userID uuid.UUID) error {
	profile, err := s.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: job belongs to another recruiter", ErrForbidden)
		}
		return MapRepoError(err, "get recruiter profile")
	}
	if job.RecruiterProfileID != profile.ID {
		return fmt.Errorf("%w: job belongs to another recruiter", ErrForbidden)
	}
	return nil
}

// projectAll builds reviewer-facing responses, fetching each distinct job and
// student profile once. Records that fail to resolve are projected with what
// is available rather than failing the whole listing.
func (s *applicationService) projectAll(ctx context.Context, apps []models.Application) []dto.ApplicationResponse {
	jobCache := make(map[uuid.UUID]*models.Job)
	studentCache := make(map[uuid.UUID]*models.StudentProfile)

	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		app := &apps[i]

		job, ok := jobCache[app.JobID]
		if !ok {
			var err error
			job, err = s.jobs.GetByID(ctx, app.JobID)
			if err != nil {
				log.Printf("ApplicationService: Error fetching job %s for application %s: %v", app.JobID, app.ID, err)
				job = nil
			}
			jobCache[app.JobID] = job
		}

		student, ok := studentCache[app.StudentProfileID]
		if !ok {
			var err error
			student, err = s.students.GetByID(ctx, app.StudentProfileID)
			if err != nil {
				log.Printf("ApplicationService: Error fetching student profile %s for application %s: %v", app.StudentProfileID, app.ID, err)
				student = nil
			}
			studentCache[app.StudentProfileID] = student
		}

		responses = append(responses, s.project(ctx, app, job, student))
	}

	return responses
}

func (s *applicationService) project(ctx context.Context, app *models.Application, job *models.Job, student *models.StudentProfile) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:                 app.ID,
		JobID:              app.JobID,
		StudentProfileID:   app.StudentProfileID,
		Certificates:       []dto.DocumentInfo{},
		Status:             app.Status,
		AnswerForRecruiter: app.AnswerForRecruiter,
		AppliedAt:          app.AppliedAt,
	}

	if job != nil {
		resp.JobTitle = job.Title
		resp.QuestionForApplicant = job.QuestionForApplicant
	}
	if student != nil {
		resp.StudentName = profileDisplayName(student.FirstName, student.LastName, student.Email)
		resp.StudentEmail = student.Email
		resp.College = student.College
		resp.Course = student.Course
		resp.YearOfStudy = student.YearOfStudy
		resp.Skills = student.Skills
	}

	if app.ResumeID != nil {
		resp.Resume = mapDocumentInfo(s.fetchDocument(ctx, *app.ResumeID, app.ID))
	}
	if app.MarksheetID != nil {
		resp.Marksheet = mapDocumentInfo(s.fetchDocument(ctx, *app.MarksheetID, app.ID))
	}
	for _, certID := range app.CertificateIDs {
		if doc := s.fetchDocument(ctx, certID, app.ID); doc != nil {
			resp.Certificates = append(resp.Certificates, *mapDocumentInfo(doc))
		}
	}

	return resp
}

// fetchDocument loads one attached document, tolerating deletions since the
// application was submitted.
func (s *applicationService) fetchDocument(ctx context.Context, id, appID uuid.UUID) *models.Document {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("ApplicationService: Error fetching document %s for application %s: %v", id, appID, err)
		}
		return nil
	}
	return doc
}
