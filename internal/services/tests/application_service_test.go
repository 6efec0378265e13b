package services_test

import (
	"context"
	"errors"
	"testing"

	mock_storage "placement-portal/internal/mocks"
	"placement-portal/internal/models"
	"placement-portal/internal/services"
	"placement-portal/internal/storage"
	"placement-portal/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationServiceMocks struct {
	apps       *mock_storage.MockApplicationRepository
	jobs       *mock_storage.MockJobRepository
	students   *mock_storage.MockStudentProfileRepository
	recruiters *mock_storage.MockRecruiterProfileRepository
	docs       *mock_storage.MockDocumentRepository
	svc        services.ApplicationService
}

func newApplicationServiceMocks(t *testing.T) *applicationServiceMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &applicationServiceMocks{
		apps:       mock_storage.NewMockApplicationRepository(ctrl),
		jobs:       mock_storage.NewMockJobRepository(ctrl),
		students:   mock_storage.NewMockStudentProfileRepository(ctrl),
		recruiters: mock_storage.NewMockRecruiterProfileRepository(ctrl),
		docs:       mock_storage.NewMockDocumentRepository(ctrl),
	}
	m.svc = services.NewApplicationService(m.apps, m.jobs, m.students, m.recruiters, m.docs)
	return m
}

func TestApplicationService_Apply(t *testing.T) {
	ctx := context.Background()
	studentUserID := uuid.New()
	student := &models.StudentProfile{ID: uuid.New(), UserID: studentUserID, Email: "student@example.com"}
	approvedJob := &models.Job{ID: uuid.New(), AdminApprovalStatus: models.ApprovalStatusApproved}
	pendingJob := &models.Job{ID: uuid.New(), AdminApprovalStatus: models.ApprovalStatusPending}

	resumeID := uuid.New()
	ownedResume := &models.Document{ID: resumeID, ProfileID: student.ID, Type: models.DocumentTypeResume}

	t.Run("Success", func(t *testing.T) {
		m := newApplicationServiceMocks(t)

		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(student, nil).Times(1)
		m.jobs.EXPECT().GetByID(gomock.Any(), approvedJob.ID).Return(approvedJob, nil).Times(1)
		m.docs.EXPECT().GetByID(gomock.Any(), resumeID).Return(ownedResume, nil).Times(1)
		m.apps.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, app *models.Application) (*models.Application, error) {
				assert.Equal(t, student.ID, app.StudentProfileID)
				assert.Equal(t, approvedJob.ID, app.JobID)
				require.NotNil(t, app.ResumeID)
				assert.Equal(t, resumeID, *app.ResumeID)
				created := *app
				created.ID = uuid.New()
				created.Status = models.ApplicationStatusApplied
				return &created, nil
			}).Times(1)

		app, err := m.svc.Apply(ctx, &dto.ApplyRequest{
			UserID:   studentUserID,
			JobID:    approvedJob.ID,
			ResumeID: &resumeID,
		})
		require.NoError(t, err)
		require.NotNil(t, app)
		assert.Equal(t, models.ApplicationStatusApplied, app.Status)
	})

	t.Run("Job Not Approved", func(t *testing.T) {
		m := newApplicationServiceMocks(t)

		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(student, nil).Times(1)
		m.jobs.EXPECT().GetByID(gomock.Any(), pendingJob.ID).Return(pendingJob, nil).Times(1)

		app, err := m.svc.Apply(ctx, &dto.ApplyRequest{UserID: studentUserID, JobID: pendingJob.ID})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrInvalidState))
		assert.Nil(t, app)
	})

	t.Run("Job Not Found", func(t *testing.T) {
		m := newApplicationServiceMocks(t)

		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(student, nil).Times(1)
		m.jobs.EXPECT().GetByID(gomock.Any(), pendingJob.ID).Return(nil, storage.ErrNotFound).Times(1)

		app, err := m.svc.Apply(ctx, &dto.ApplyRequest{UserID: studentUserID, JobID: pendingJob.ID})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
		assert.Nil(t, app)
	})

	t.Run("Resume Belongs To Another Profile", func(t *testing.T) {
		m := newApplicationServiceMocks(t)

		foreignResume := &models.Document{ID: resumeID, ProfileID: uuid.New(), Type: models.DocumentTypeResume}

		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(student, nil).Times(1)
		m.jobs.EXPECT().GetByID(gomock.Any(), approvedJob.ID).Return(approvedJob, nil).Times(1)
		m.docs.EXPECT().GetByID(gomock.Any(), resumeID).Return(foreignResume, nil).Times(1)

		app, err := m.svc.Apply(ctx, &dto.ApplyRequest{UserID: studentUserID, JobID: approvedJob.ID, ResumeID: &resumeID})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Nil(t, app)
	})

	t.Run("Certificate Slot Rejects Other Types", func(t *testing.T) {
		m := newApplicationServiceMocks(t)

		marksheetID := uuid.New()
		marksheet := &models.Document{ID: marksheetID, ProfileID: student.ID, Type: models.DocumentTypeMarksheet}

		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(student, nil).Times(1)
		m.jobs.EXPECT().GetByID(gomock.Any(), approvedJob.ID).Return(approvedJob, nil).Times(1)
		m.docs.EXPECT().GetByID(gomock.Any(), marksheetID).Return(marksheet, nil).Times(1)

		app, err := m.svc.Apply(ctx, &dto.ApplyRequest{
			UserID:         studentUserID,
			JobID:          approvedJob.ID,
			CertificateIDs: []uuid.UUID{marksheetID},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Nil(t, app)
	})

	t.Run("No Student Profile", func(t *testing.T) {
		m := newApplicationServiceMocks(t)

		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(nil, storage.ErrNotFound).Times(1)

		app, err := m.svc.Apply(ctx, &dto.ApplyRequest{UserID: studentUserID, JobID: approvedJob.ID})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Nil(t, app)
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	ownerUserID := uuid.New()
	ownerProfile := &models.RecruiterProfile{ID: uuid.New(), UserID: ownerUserID}
	job := &models.Job{ID: uuid.New(), RecruiterProfileID: ownerProfile.ID}

	appWith := func(status models.ApplicationStatus) *models.Application {
		return &models.Application{ID: uuid.New(), JobID: job.ID, Status: status}
	}

	t.Run("Valid Transitions", func(t *testing.T) {
		transitions := []struct {
			from models.ApplicationStatus
			to   models.ApplicationStatus
		}{
			{models.ApplicationStatusApplied, models.ApplicationStatusReviewed},
			{models.ApplicationStatusApplied, models.ApplicationStatusAccepted},
			{models.ApplicationStatusApplied, models.ApplicationStatusRejected},
			{models.ApplicationStatusReviewed, models.ApplicationStatusAccepted},
			{models.ApplicationStatusReviewed, models.ApplicationStatusRejected},
		}

		for _, tr := range transitions {
			m := newApplicationServiceMocks(t)
			app := appWith(tr.from)

			m.apps.EXPECT().GetByID(gomock.Any(), app.ID).Return(app, nil).Times(1)
			m.jobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil).Times(1)
			m.recruiters.EXPECT().GetByUserID(gomock.Any(), ownerUserID).Return(ownerProfile, nil).Times(1)
			m.apps.EXPECT().
				UpdateStatus(gomock.Any(), app.ID, tr.to).
				Return(&models.Application{ID: app.ID, JobID: job.ID, Status: tr.to}, nil).Times(1)

			updated, err := m.svc.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
				ID:     app.ID,
				UserID: ownerUserID,
				Role:   models.RoleRecruiter,
				Status: string(tr.to),
			})
			require.NoError(t, err, "%s -> %s", tr.from, tr.to)
			assert.Equal(t, tr.to, updated.Status)
		}
	})

	t.Run("Invalid Transitions", func(t *testing.T) {
		transitions := []struct {
			from models.ApplicationStatus
			to   models.ApplicationStatus
		}{
			{models.ApplicationStatusAccepted, models.ApplicationStatusReviewed},
			{models.ApplicationStatusRejected, models.ApplicationStatusAccepted},
			{models.ApplicationStatusReviewed, models.ApplicationStatusApplied},
			{models.ApplicationStatusApplied, models.ApplicationStatusApplied},
		}

		for _, tr := range transitions {
			m := newApplicationServiceMocks(t)
			app := appWith(tr.from)

			m.apps.EXPECT().GetByID(gomock.Any(), app.ID).Return(app, nil).Times(1)
			m.jobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil).Times(1)
			m.recruiters.EXPECT().GetByUserID(gomock.Any(), ownerUserID).Return(ownerProfile, nil).Times(1)

			updated, err := m.svc.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
				ID:     app.ID,
				UserID: ownerUserID,
				Role:   models.RoleRecruiter,
				Status: string(tr.to),
			})
			require.Error(t, err, "%s -> %s", tr.from, tr.to)
			assert.True(t, errors.Is(err, services.ErrInvalidTransition))
			assert.Nil(t, updated)
		}
	})

	t.Run("Unknown Status", func(t *testing.T) {
		m := newApplicationServiceMocks(t)

		updated, err := m.svc.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
			ID:     uuid.New(),
			UserID: ownerUserID,
			Role:   models.RoleRecruiter,
			Status: "SHORTLISTED",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Nil(t, updated)
	})

	t.Run("Not The Owning Recruiter", func(t *testing.T) {
		m := newApplicationServiceMocks(t)
		app := appWith(models.ApplicationStatusApplied)
		stranger := &models.RecruiterProfile{ID: uuid.New(), UserID: uuid.New()}

		m.apps.EXPECT().GetByID(gomock.Any(), app.ID).Return(app, nil).Times(1)
		m.jobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil).Times(1)
		m.recruiters.EXPECT().GetByUserID(gomock.Any(), stranger.UserID).Return(stranger, nil).Times(1)

		updated, err := m.svc.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
			ID:     app.ID,
			UserID: stranger.UserID,
			Role:   models.RoleRecruiter,
			Status: string(models.ApplicationStatusReviewed),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
		assert.Nil(t, updated)
	})

	t.Run("Admin Skips Ownership Check", func(t *testing.T) {
		m := newApplicationServiceMocks(t)
		app := appWith(models.ApplicationStatusApplied)

		m.apps.EXPECT().GetByID(gomock.Any(), app.ID).Return(app, nil).Times(1)
		m.apps.EXPECT().
			UpdateStatus(gomock.Any(), app.ID, models.ApplicationStatusReviewed).
			Return(&models.Application{ID: app.ID, JobID: job.ID, Status: models.ApplicationStatusReviewed}, nil).Times(1)

		updated, err := m.svc.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
			ID:     app.ID,
			UserID: uuid.New(),
			Role:   models.RoleAdmin,
			Status: string(models.ApplicationStatusReviewed),
		})
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusReviewed, updated.Status)
	})
}

func TestApplicationService_ListMine(t *testing.T) {
	ctx := context.Background()

	t.Run("No Profile Yields Empty List", func(t *testing.T) {
		m := newApplicationServiceMocks(t)

		userID := uuid.New()
		m.students.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound).Times(1)

		result, err := m.svc.ListMine(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NotNil(t, result)
	})

	t.Run("Projects Job And Student Details", func(t *testing.T) {
		m := newApplicationServiceMocks(t)

		userID := uuid.New()
		student := &models.StudentProfile{
			ID:        uuid.New(),
			UserID:    userID,
			FirstName: "Asha",
			LastName:  "Iyer",
			Email:     "asha@example.com",
			College:   "IIT Example",
		}
		question := ptr("Why this role?")
		job := &models.Job{ID: uuid.New(), Title: "Data Intern", QuestionForApplicant: question}
		resumeID := uuid.New()
		app := models.Application{
			ID:               uuid.New(),
			StudentProfileID: student.ID,
			JobID:            job.ID,
			ResumeID:         &resumeID,
			Status:           models.ApplicationStatusApplied,
		}

		m.students.EXPECT().GetByUserID(gomock.Any(), userID).Return(student, nil).Times(1)
		m.apps.EXPECT().ListByStudent(gomock.Any(), student.ID).Return([]models.Application{app}, nil).Times(1)
		m.jobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil).Times(1)
		m.students.EXPECT().GetByID(gomock.Any(), student.ID).Return(student, nil).Times(1)
		m.docs.EXPECT().GetByID(gomock.Any(), resumeID).Return(&models.Document{
			ID:        resumeID,
			ProfileID: student.ID,
			Type:      models.DocumentTypeResume,
			Name:      "resume.pdf",
			URL:       "https://cdn.example/resume.pdf",
			Status:    models.ApprovalStatusApproved,
		}, nil).Times(1)

		result, err := m.svc.ListMine(ctx, userID)
		require.NoError(t, err)
		require.Len(t, result, 1)

		resp := result[0]
		assert.Equal(t, "Data Intern", resp.JobTitle)
		assert.Equal(t, "Asha Iyer", resp.StudentName)
		assert.Equal(t, "IIT Example", resp.College)
		assert.Equal(t, question, resp.QuestionForApplicant)
		require.NotNil(t, resp.Resume)
		assert.Equal(t, resumeID, resp.Resume.ID)
		assert.Equal(t, models.ApprovalStatusApproved, resp.Resume.Status)
	})
}

func TestApplicationService_ListByJob(t *testing.T) {
	ctx := context.Background()
	ownerUserID := uuid.New()
	ownerProfile := &models.RecruiterProfile{ID: uuid.New(), UserID: ownerUserID}
	job := &models.Job{ID: uuid.New(), RecruiterProfileID: ownerProfile.ID, Title: "QA Intern"}

	t.Run("Not The Owner", func(t *testing.T) {
		m := newApplicationServiceMocks(t)
		stranger := &models.RecruiterProfile{ID: uuid.New(), UserID: uuid.New()}

		m.jobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil).Times(1)
		m.recruiters.EXPECT().GetByUserID(gomock.Any(), stranger.UserID).Return(stranger, nil).Times(1)

		result, err := m.svc.ListByJob(ctx, &dto.ListApplicationsByJobRequest{JobID: job.ID, UserID: stranger.UserID})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
		assert.Nil(t, result)
	})

	t.Run("Empty Job Yields Empty List", func(t *testing.T) {
		m := newApplicationServiceMocks(t)

		m.jobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil).Times(1)
		m.recruiters.EXPECT().GetByUserID(gomock.Any(), ownerUserID).Return(ownerProfile, nil).Times(1)
		m.apps.EXPECT().ListByJob(gomock.Any(), job.ID).Return([]models.Application{}, nil).Times(1)

		result, err := m.svc.ListByJob(ctx, &dto.ListApplicationsByJobRequest{JobID: job.ID, UserID: ownerUserID})
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NotNil(t, result)
	})
}
