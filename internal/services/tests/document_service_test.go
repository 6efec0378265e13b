package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	mock_storage "placement-portal/internal/mocks"
	"placement-portal/internal/models"
	"placement-portal/internal/objectstore"
	"placement-portal/internal/services"
	"placement-portal/internal/storage"
	"placement-portal/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type documentServiceMocks struct {
	docs       *mock_storage.MockDocumentRepository
	students   *mock_storage.MockStudentProfileRepository
	recruiters *mock_storage.MockRecruiterProfileRepository
	store      *mock_storage.MockObjectStorage
	db         *mock_storage.MockTxBeginner
	tx         *mock_storage.MockTx
	svc        services.DocumentService
}

func newDocumentServiceMocks(t *testing.T) *documentServiceMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &documentServiceMocks{
		docs:       mock_storage.NewMockDocumentRepository(ctrl),
		students:   mock_storage.NewMockStudentProfileRepository(ctrl),
		recruiters: mock_storage.NewMockRecruiterProfileRepository(ctrl),
		store:      mock_storage.NewMockObjectStorage(ctrl),
		db:         mock_storage.NewMockTxBeginner(ctrl),
		tx:         mock_storage.NewMockTx(ctrl),
	}
	m.svc = services.NewDocumentService(m.docs, m.students, m.recruiters, m.store, m.db)
	return m
}

// expectTransaction wires Begin to hand out the mock transaction. The
// deferred rollback after a commit is a no-op.
func (m *documentServiceMocks) expectTransaction() {
	m.db.EXPECT().Begin(gomock.Any()).Return(m.tx, nil).Times(1)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()
	studentUserID := uuid.New()
	student := &models.StudentProfile{ID: uuid.New(), UserID: studentUserID}

	baseRequest := func() *dto.UploadDocumentRequest {
		return &dto.UploadDocumentRequest{
			UserID:      studentUserID,
			Role:        models.RoleStudent,
			Type:        "resume",
			FileName:    "resume.pdf",
			SizeBytes:   2 * 1024 * 1024,
			ContentType: "application/pdf",
			File:        strings.NewReader("%PDF-1.4 fake"),
		}
	}

	t.Run("Success", func(t *testing.T) {
		m := newDocumentServiceMocks(t)
		req := baseRequest()

		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(student, nil).Times(1)
		m.store.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in objectstore.UploadInput) (*objectstore.Object, error) {
				assert.Equal(t, objectstore.ResourceTypeRaw, in.ResourceType)
				assert.NotEmpty(t, in.PublicID)
				return &objectstore.Object{PublicID: in.PublicID, URL: "https://cdn.example/raw/upload/" + in.PublicID + ".pdf"}, nil
			}).Times(1)
		m.docs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc *models.Document) (*models.Document, error) {
				assert.Equal(t, student.ID, doc.ProfileID)
				assert.Equal(t, models.RoleStudent, doc.ProfileRole)
				assert.Equal(t, models.DocumentTypeResume, doc.Type)
				assert.Equal(t, "resume.pdf", doc.FileName)
				created := *doc
				created.ID = uuid.New()
				created.Status = models.ApprovalStatusPending
				return &created, nil
			}).Times(1)

		doc, err := m.svc.Upload(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, models.ApprovalStatusPending, doc.Status)
	})

	t.Run("Profile Picture Updates Profile", func(t *testing.T) {
		m := newDocumentServiceMocks(t)
		req := baseRequest()
		req.Type = "profile_picture"
		req.FileName = "me.png"
		req.ContentType = "image/png"
		req.SizeBytes = 1024 * 1024

		const url = "https://cdn.example/image/upload/v123/pic.png"

		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(student, nil).Times(1)
		m.store.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in objectstore.UploadInput) (*objectstore.Object, error) {
				assert.Equal(t, objectstore.ResourceTypeImage, in.ResourceType)
				return &objectstore.Object{PublicID: in.PublicID, URL: url}, nil
			}).Times(1)

		// Both writes run on the same transaction and commit together.
		m.expectTransaction()
		m.docs.EXPECT().WithTx(m.tx).Return(m.docs).Times(1)
		m.docs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc *models.Document) (*models.Document, error) {
				created := *doc
				created.ID = uuid.New()
				return &created, nil
			}).Times(1)
		m.students.EXPECT().WithTx(m.tx).Return(m.students).Times(1)
		m.students.EXPECT().UpdateProfilePicture(gomock.Any(), student.ID, url).Return(nil).Times(1)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil).Times(1)

		_, err := m.svc.Upload(ctx, req)
		require.NoError(t, err)
	})

	t.Run("Profile Update Failure Rolls Back", func(t *testing.T) {
		m := newDocumentServiceMocks(t)
		req := baseRequest()
		req.Type = "profile_picture"
		req.FileName = "me.png"
		req.ContentType = "image/png"
		req.SizeBytes = 1024 * 1024

		var uploadedID string
		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(student, nil).Times(1)
		m.store.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in objectstore.UploadInput) (*objectstore.Object, error) {
				uploadedID = in.PublicID
				return &objectstore.Object{PublicID: in.PublicID, URL: "https://cdn.example/image/upload/v123/" + in.PublicID + ".png"}, nil
			}).Times(1)

		m.expectTransaction()
		m.docs.EXPECT().WithTx(m.tx).Return(m.docs).Times(1)
		m.docs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc *models.Document) (*models.Document, error) {
				created := *doc
				created.ID = uuid.New()
				return &created, nil
			}).Times(1)
		m.students.EXPECT().WithTx(m.tx).Return(m.students).Times(1)
		m.students.EXPECT().UpdateProfilePicture(gomock.Any(), student.ID, gomock.Any()).Return(errors.New("update failed")).Times(1)
		// No commit: the document row must not survive without the profile update.
		m.store.EXPECT().
			Delete(gomock.Any(), gomock.Any(), objectstore.ResourceTypeImage).
			DoAndReturn(func(_ context.Context, publicID string, _ objectstore.ResourceType) error {
				assert.Equal(t, uploadedID, publicID)
				return nil
			}).Times(1)

		doc, err := m.svc.Upload(ctx, req)
		require.Error(t, err)
		assert.Nil(t, doc)
	})

	t.Run("Profile Picture Must Be Image", func(t *testing.T) {
		m := newDocumentServiceMocks(t)
		req := baseRequest()
		req.Type = "profile_picture"
		req.ContentType = "application/pdf"

		doc, err := m.svc.Upload(ctx, req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Nil(t, doc)
	})

	t.Run("Oversized File", func(t *testing.T) {
		m := newDocumentServiceMocks(t)
		req := baseRequest()
		req.SizeBytes = 11 * 1024 * 1024

		doc, err := m.svc.Upload(ctx, req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Nil(t, doc)
	})

	t.Run("Type Not Valid For Role", func(t *testing.T) {
		m := newDocumentServiceMocks(t)
		req := baseRequest()
		req.Type = "gst" // compliance types are recruiter-only

		doc, err := m.svc.Upload(ctx, req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Nil(t, doc)
	})

	t.Run("No Profile Yet", func(t *testing.T) {
		m := newDocumentServiceMocks(t)
		req := baseRequest()

		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(nil, storage.ErrNotFound).Times(1)

		doc, err := m.svc.Upload(ctx, req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Nil(t, doc)
	})

	t.Run("Metadata Failure Cleans Up Stored File", func(t *testing.T) {
		m := newDocumentServiceMocks(t)
		req := baseRequest()

		var uploadedID string
		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(student, nil).Times(1)
		m.store.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in objectstore.UploadInput) (*objectstore.Object, error) {
				uploadedID = in.PublicID
				return &objectstore.Object{PublicID: in.PublicID, URL: "https://cdn.example/raw/upload/" + in.PublicID}, nil
			}).Times(1)
		m.docs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed")).Times(1)
		m.store.EXPECT().
			Delete(gomock.Any(), gomock.Any(), objectstore.ResourceTypeRaw).
			DoAndReturn(func(_ context.Context, publicID string, _ objectstore.ResourceType) error {
				assert.Equal(t, uploadedID, publicID)
				return nil
			}).Times(1)

		doc, err := m.svc.Upload(ctx, req)
		require.Error(t, err)
		assert.Nil(t, doc)
	})
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()
	studentUserID := uuid.New()
	student := &models.StudentProfile{ID: uuid.New(), UserID: studentUserID}

	doc := &models.Document{
		ID:          uuid.New(),
		ProfileID:   student.ID,
		ProfileRole: models.RoleStudent,
		Type:        models.DocumentTypeResume,
		URL:         "https://res.example.com/raw/upload/v1712345678/abc123",
		ContentType: "application/pdf",
	}

	t.Run("Success", func(t *testing.T) {
		m := newDocumentServiceMocks(t)

		m.docs.EXPECT().GetByID(gomock.Any(), doc.ID).Return(doc, nil).Times(1)
		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(student, nil).Times(1)
		m.docs.EXPECT().Delete(gomock.Any(), doc.ID).Return(nil).Times(1)
		m.store.EXPECT().Delete(gomock.Any(), "abc123", objectstore.ResourceTypeRaw).Return(nil).Times(1)

		err := m.svc.Delete(ctx, &dto.DeleteDocumentRequest{ID: doc.ID, UserID: studentUserID, Role: models.RoleStudent})
		require.NoError(t, err)
	})

	t.Run("Store Failure Does Not Fail Delete", func(t *testing.T) {
		m := newDocumentServiceMocks(t)

		m.docs.EXPECT().GetByID(gomock.Any(), doc.ID).Return(doc, nil).Times(1)
		m.students.EXPECT().GetByUserID(gomock.Any(), studentUserID).Return(student, nil).Times(1)
		m.docs.EXPECT().Delete(gomock.Any(), doc.ID).Return(nil).Times(1)
		m.store.EXPECT().Delete(gomock.Any(), "abc123", objectstore.ResourceTypeRaw).Return(errors.New("store unavailable")).Times(1)

		err := m.svc.Delete(ctx, &dto.DeleteDocumentRequest{ID: doc.ID, UserID: studentUserID, Role: models.RoleStudent})
		require.NoError(t, err)
	})

	t.Run("Not The Owner", func(t *testing.T) {
		m := newDocumentServiceMocks(t)
		otherStudent := &models.StudentProfile{ID: uuid.New(), UserID: uuid.New()}

		m.docs.EXPECT().GetByID(gomock.Any(), doc.ID).Return(doc, nil).Times(1)
		m.students.EXPECT().GetByUserID(gomock.Any(), otherStudent.UserID).Return(otherStudent, nil).Times(1)

		err := m.svc.Delete(ctx, &dto.DeleteDocumentRequest{ID: doc.ID, UserID: otherStudent.UserID, Role: models.RoleStudent})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Unknown Document", func(t *testing.T) {
		m := newDocumentServiceMocks(t)

		m.docs.EXPECT().GetByID(gomock.Any(), doc.ID).Return(nil, storage.ErrNotFound).Times(1)

		err := m.svc.Delete(ctx, &dto.DeleteDocumentRequest{ID: doc.ID, UserID: studentUserID, Role: models.RoleStudent})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}

func TestDocumentService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	docID := uuid.New()

	t.Run("Approve With Remarks", func(t *testing.T) {
		m := newDocumentServiceMocks(t)
		remarks := ptr("verified against registry")

		m.docs.EXPECT().
			UpdateStatus(gomock.Any(), docID, models.ApprovalStatusApproved, remarks).
			Return(&models.Document{ID: docID, Status: models.ApprovalStatusApproved, Remarks: remarks}, nil).Times(1)

		doc, err := m.svc.UpdateStatus(ctx, &dto.UpdateDocumentStatusRequest{ID: docID, Status: "APPROVED", Remarks: remarks})
		require.NoError(t, err)
		assert.Equal(t, models.ApprovalStatusApproved, doc.Status)
		assert.Equal(t, remarks, doc.Remarks)
	})

	t.Run("Pending Is Not A Verdict", func(t *testing.T) {
		m := newDocumentServiceMocks(t)

		doc, err := m.svc.UpdateStatus(ctx, &dto.UpdateDocumentStatusRequest{ID: docID, Status: "PENDING"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		assert.Nil(t, doc)
	})
}
