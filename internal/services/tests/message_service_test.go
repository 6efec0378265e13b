package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"placement-portal/internal/crypto"
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

// 32 bytes, hex encoded, same shape as the configured key.
const testEncryptionKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

type messageServiceMocks struct {
	msgs       *mock_storage.MockMessageRepository
	apps       *mock_storage.MockApplicationRepository
	jobs       *mock_storage.MockJobRepository
	students   *mock_storage.MockStudentProfileRepository
	recruiters *mock_storage.MockRecruiterProfileRepository
	users      *mock_storage.MockUserRepository
	cipher     *crypto.MessageCipher
	svc        services.MessageService
}

func newMessageServiceMocks(t *testing.T) *messageServiceMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cipher, err := crypto.NewMessageCipher(testEncryptionKey)
	require.NoError(t, err)

	m := &messageServiceMocks{
		msgs:       mock_storage.NewMockMessageRepository(ctrl),
		apps:       mock_storage.NewMockApplicationRepository(ctrl),
		jobs:       mock_storage.NewMockJobRepository(ctrl),
		students:   mock_storage.NewMockStudentProfileRepository(ctrl),
		recruiters: mock_storage.NewMockRecruiterProfileRepository(ctrl),
		users:      mock_storage.NewMockUserRepository(ctrl),
		cipher:     cipher,
	}
	m.svc = services.NewMessageService(m.msgs, m.apps, m.jobs, m.students, m.recruiters, m.users, cipher)
	return m
}

// messageThreadFixture wires one application with its two parties.
type messageThreadFixture struct {
	app       *models.Application
	job       *models.Job
	student   *models.StudentProfile
	recruiter *models.RecruiterProfile
}

func newMessageThreadFixture() *messageThreadFixture {
	student := &models.StudentProfile{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		FirstName: "Ravi",
		LastName:  "Kumar",
		Email:     "ravi@example.com",
	}
	recruiter := &models.RecruiterProfile{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		FirstName: "Priya",
		LastName:  "Shah",
		Email:     "priya@acme.example",
	}
	job := &models.Job{ID: uuid.New(), RecruiterProfileID: recruiter.ID}
	app := &models.Application{ID: uuid.New(), StudentProfileID: student.ID, JobID: job.ID}
	return &messageThreadFixture{app: app, job: job, student: student, recruiter: recruiter}
}

// expectThreadResolution registers the lookups resolveThread performs for the
// given caller.
func (f *messageThreadFixture) expectThreadResolution(m *messageServiceMocks, caller *models.User) {
	m.apps.EXPECT().GetByID(gomock.Any(), f.app.ID).Return(f.app, nil).Times(1)
	m.students.EXPECT().GetByID(gomock.Any(), f.student.ID).Return(f.student, nil).Times(1)
	m.jobs.EXPECT().GetByID(gomock.Any(), f.job.ID).Return(f.job, nil).Times(1)
	m.recruiters.EXPECT().GetByID(gomock.Any(), f.recruiter.ID).Return(f.recruiter, nil).Times(1)
	m.users.EXPECT().GetByID(gomock.Any(), caller.ID).Return(caller, nil).Times(1)
}

func TestMessageService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Student Sends Encrypted", func(t *testing.T) {
		m := newMessageServiceMocks(t)
		f := newMessageThreadFixture()
		caller := &models.User{ID: f.student.UserID, Role: models.RoleStudent}
		f.expectThreadResolution(m, caller)

		const content = "Hello, is the role still open?"

		m.msgs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *models.Message) (*models.Message, error) {
				// Storage must only ever see ciphertext.
				assert.NotEqual(t, content, msg.Content)
				assert.NotContains(t, msg.Content, "role still open")

				plaintext, err := m.cipher.Decrypt(msg.Content)
				require.NoError(t, err)
				assert.Equal(t, content, plaintext)

				assert.Equal(t, f.student.Email, msg.SenderEmail)
				assert.Equal(t, models.RoleStudent, msg.SenderRole)
				assert.Equal(t, f.recruiter.Email, msg.ReceiverEmail)
				assert.Equal(t, models.RoleRecruiter, msg.ReceiverRole)

				created := *msg
				created.ID = uuid.New()
				created.SentAt = time.Now()
				return &created, nil
			}).Times(1)

		resp, err := m.svc.Send(ctx, &dto.SendMessageRequest{
			ApplicationID: f.app.ID,
			UserID:        caller.ID,
			Content:       content,
		})
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, content, resp.Content)
		assert.Equal(t, "Ravi Kumar", resp.SenderName)
		assert.Equal(t, models.RoleStudent, resp.SenderRole)
		assert.Equal(t, f.recruiter.Email, resp.ReceiverEmail)
	})

	t.Run("Recruiter Sends To Student", func(t *testing.T) {
		m := newMessageServiceMocks(t)
		f := newMessageThreadFixture()
		caller := &models.User{ID: f.recruiter.UserID, Role: models.RoleRecruiter}
		f.expectThreadResolution(m, caller)

		m.msgs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *models.Message) (*models.Message, error) {
				assert.Equal(t, f.recruiter.Email, msg.SenderEmail)
				assert.Equal(t, models.RoleRecruiter, msg.SenderRole)
				assert.Equal(t, f.student.Email, msg.ReceiverEmail)
				assert.Equal(t, models.RoleStudent, msg.ReceiverRole)
				created := *msg
				created.ID = uuid.New()
				return &created, nil
			}).Times(1)

		resp, err := m.svc.Send(ctx, &dto.SendMessageRequest{
			ApplicationID: f.app.ID,
			UserID:        caller.ID,
			Content:       "We would like to schedule an interview.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Priya Shah", resp.SenderName)
	})

	t.Run("Admin Is Not A Party", func(t *testing.T) {
		m := newMessageServiceMocks(t)
		f := newMessageThreadFixture()
		caller := &models.User{ID: uuid.New(), Role: models.RoleAdmin}
		f.expectThreadResolution(m, caller)

		resp, err := m.svc.Send(ctx, &dto.SendMessageRequest{
			ApplicationID: f.app.ID,
			UserID:        caller.ID,
			Content:       "hello",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
		assert.Nil(t, resp)
	})

	t.Run("Other Student Is Not A Party", func(t *testing.T) {
		m := newMessageServiceMocks(t)
		f := newMessageThreadFixture()
		caller := &models.User{ID: uuid.New(), Role: models.RoleStudent}
		f.expectThreadResolution(m, caller)

		resp, err := m.svc.Send(ctx, &dto.SendMessageRequest{
			ApplicationID: f.app.ID,
			UserID:        caller.ID,
			Content:       "hello",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
		assert.Nil(t, resp)
	})

	t.Run("Unknown Application", func(t *testing.T) {
		m := newMessageServiceMocks(t)
		appID := uuid.New()
		m.apps.EXPECT().GetByID(gomock.Any(), appID).Return(nil, storage.ErrNotFound).Times(1)

		resp, err := m.svc.Send(ctx, &dto.SendMessageRequest{
			ApplicationID: appID,
			UserID:        uuid.New(),
			Content:       "hello",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
		assert.Nil(t, resp)
	})
}

func TestMessageService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Decrypts Thread In Order", func(t *testing.T) {
		m := newMessageServiceMocks(t)
		f := newMessageThreadFixture()
		caller := &models.User{ID: f.recruiter.UserID, Role: models.RoleRecruiter}
		f.expectThreadResolution(m, caller)

		first, err := m.cipher.Encrypt("first message")
		require.NoError(t, err)
		second, err := m.cipher.Encrypt("second message")
		require.NoError(t, err)

		m.msgs.EXPECT().ListByApplication(gomock.Any(), f.app.ID).Return([]models.Message{
			{
				ID:            uuid.New(),
				ApplicationID: f.app.ID,
				SenderEmail:   f.student.Email,
				SenderRole:    models.RoleStudent,
				ReceiverEmail: f.recruiter.Email,
				ReceiverRole:  models.RoleRecruiter,
				Content:       first,
			},
			{
				ID:            uuid.New(),
				ApplicationID: f.app.ID,
				SenderEmail:   f.recruiter.Email,
				SenderRole:    models.RoleRecruiter,
				ReceiverEmail: f.student.Email,
				ReceiverRole:  models.RoleStudent,
				Content:       second,
			},
		}, nil).Times(1)

		result, err := m.svc.List(ctx, &dto.ListMessagesRequest{ApplicationID: f.app.ID, UserID: caller.ID})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "first message", result[0].Content)
		assert.Equal(t, "Ravi Kumar", result[0].SenderName)
		assert.Equal(t, "second message", result[1].Content)
		assert.Equal(t, "Priya Shah", result[1].SenderName)
	})

	t.Run("Unreadable Ciphertext Gets Placeholder", func(t *testing.T) {
		m := newMessageServiceMocks(t)
		f := newMessageThreadFixture()
		caller := &models.User{ID: f.student.UserID, Role: models.RoleStudent}
		f.expectThreadResolution(m, caller)

		readable, err := m.cipher.Encrypt("still readable")
		require.NoError(t, err)

		m.msgs.EXPECT().ListByApplication(gomock.Any(), f.app.ID).Return([]models.Message{
			{ID: uuid.New(), ApplicationID: f.app.ID, SenderRole: models.RoleStudent, Content: "not-even-base64!!"},
			{ID: uuid.New(), ApplicationID: f.app.ID, SenderRole: models.RoleRecruiter, Content: readable},
		}, nil).Times(1)

		result, err := m.svc.List(ctx, &dto.ListMessagesRequest{ApplicationID: f.app.ID, UserID: caller.ID})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "[message unavailable]", result[0].Content)
		assert.False(t, strings.Contains(result[0].Content, "not-even-base64"))
		assert.Equal(t, "still readable", result[1].Content)
	})

	t.Run("Empty Thread", func(t *testing.T) {
		m := newMessageServiceMocks(t)
		f := newMessageThreadFixture()
		caller := &models.User{ID: f.student.UserID, Role: models.RoleStudent}
		f.expectThreadResolution(m, caller)

		m.msgs.EXPECT().ListByApplication(gomock.Any(), f.app.ID).Return([]models.Message{}, nil).Times(1)

		result, err := m.svc.List(ctx, &dto.ListMessagesRequest{ApplicationID: f.app.ID, UserID: caller.ID})
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NotNil(t, result)
	})
}
