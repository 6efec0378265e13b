package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"placement-portal/internal/models"
	"placement-portal/internal/objectstore"
	"placement-portal/internal/storage"
	"placement-portal/internal/transport/dto"
)

const (
	maxImageSizeBytes    = 5 * 1024 * 1024
	maxDocumentSizeBytes = 10 * 1024 * 1024
)

// studentDocumentTypes and recruiterDocumentTypes define which document types
// each role may upload.
var studentDocumentTypes = map[models.DocumentType]bool{
	models.DocumentTypeResume:         true,
	models.DocumentTypeProfilePicture: true,
	models.DocumentTypeMarksheet:      true,
	models.DocumentTypeIdentityProof:  true,
	models.DocumentTypeCertificate:    true,
}

var recruiterDocumentTypes = map[models.DocumentType]bool{
	models.DocumentTypeProfilePicture: true,
	models.DocumentTypeRegistration:   true,
	models.DocumentTypeGST:            true,
	models.DocumentTypePAN:            true,
	models.DocumentTypeBusinessProof:  true,
}

type documentService struct {
	docs       storage.DocumentRepository
	students   storage.StudentProfileRepository
	recruiters storage.RecruiterProfileRepository
	store      objectstore.ObjectStorage
	db         storage.TxBeginner
}

// NewDocumentService creates a new instance of DocumentService.
func NewDocumentService(
	docs storage.DocumentRepository,
	students storage.StudentProfileRepository,
	recruiters storage.RecruiterProfileRepository,
	store objectstore.ObjectStorage,
	db storage.TxBeginner,
) DocumentService {
	return &documentService{
		docs:       docs,
		students:   students,
		recruiters: recruiters,
		store:      store,
		db:         db,
	}
}

// Upload validates the file against the type policy, stores the bytes and
// records the metadata. Review status always starts PENDING. A profile
// picture additionally replaces the picture (or company logo) on the owning
// profile.
func (s *documentService) Upload(ctx context.Context, req *dto.UploadDocumentRequest) (*models.Document, error) {
	docType, err := s.parseDocumentType(req.Type, req.Role)
	if err != nil {
		return nil, err
	}

	if err := validateFilePolicy(docType, req.ContentType, req.SizeBytes); err != nil {
		return nil, err
	}

	profileID, err := s.resolveProfileID(ctx, req.UserID, req.Role)
	if err != nil {
		return nil, err
	}

	resourceType := objectstore.ResourceTypeRaw
	if strings.HasPrefix(req.ContentType, "image/") {
		resourceType = objectstore.ResourceTypeImage
	}

	obj, err := s.store.Upload(ctx, objectstore.UploadInput{
		File:         req.File,
		Folder:       uploadFolder(req.Role, docType),
		PublicID:     uuid.NewString(),
		ResourceType: resourceType,
	})
	if err != nil {
		log.Printf("DocumentService: Error uploading file for user %s: %v", req.UserID, err)
		return nil, fmt.Errorf("internal error uploading document: %w", err)
	}

	record := &models.Document{
		ProfileID:   profileID,
		ProfileRole: req.Role,
		Type:        docType,
		Name:        documentName(docType, req.CertificateName, req.FileName),
		FileName:    req.FileName,
		URL:         obj.URL,
		SizeBytes:   req.SizeBytes,
		ContentType: req.ContentType,
	}

	var doc *models.Document
	if docType == models.DocumentTypeProfilePicture {
		doc, err = s.createProfilePicture(ctx, record, profileID, req.Role, obj.URL)
	} else {
		doc, err = s.docs.Create(ctx, record)
		if err != nil {
			err = MapRepoError(err, "create document")
		}
	}
	if err != nil {
		// The file is already stored; remove it so nothing dangles.
		if delErr := s.store.Delete(ctx, obj.PublicID, resourceType); delErr != nil {
			log.Printf("DocumentService: Error cleaning up orphaned upload %s: %v", obj.PublicID, delErr)
		}
		return nil, err
	}

	return doc, nil
}

// createProfilePicture writes the document metadata and the picture URL on
// the owning profile in one transaction. Both rows land or neither does.
func (s *documentService) createProfilePicture(ctx context.Context, record *models.Document, profileID uuid.UUID, role models.Role, url string) (*models.Document, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("DocumentService: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	doc, err := s.docs.WithTx(tx).Create(ctx, record)
	if err != nil {
		return nil, MapRepoError(err, "create document")
	}

	if role == models.RoleRecruiter {
		err = s.recruiters.WithTx(tx).UpdateCompanyLogo(ctx, profileID, url)
	} else {
		err = s.students.WithTx(tx).UpdateProfilePicture(ctx, profileID, url)
	}
	if err != nil {
		return nil, MapRepoError(err, "update profile picture")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("DocumentService: Error committing profile picture for profile %s: %v", profileID, err)
		return nil, fmt.Errorf("internal error saving profile picture: %w", err)
	}

	return doc, nil
}

func (s *documentService) List(ctx context.Context, req *dto.ListDocumentsRequest) ([]models.Document, error) {
	profileID, err := s.resolveProfileID(ctx, req.UserID, req.Role)
	if err != nil {
		return nil, err
	}

	var docType *models.DocumentType
	if req.Type != nil {
		parsed, err := s.parseDocumentType(*req.Type, req.Role)
		if err != nil {
			return nil, err
		}
		docType = &parsed
	}

	return s.docs.ListByProfile(ctx, profileID, docType)
}

// Delete removes a document the caller owns, metadata first and stored bytes
// best effort.
func (s *documentService) Delete(ctx context.Context, req *dto.DeleteDocumentRequest) error {
	doc, err := s.docs.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return MapRepoError(err, "get document")
	}

	profileID, err := s.resolveProfileID(ctx, req.UserID, req.Role)
	if err != nil {
		return err
	}
	if doc.ProfileID != profileID || doc.ProfileRole != req.Role {
		return fmt.Errorf("%w: document belongs to another profile", ErrForbidden)
	}

	if err := s.docs.Delete(ctx, req.ID); err != nil {
		return MapRepoError(err, "delete document")
	}

	resourceType := objectstore.ResourceTypeRaw
	if strings.HasPrefix(doc.ContentType, "image/") {
		resourceType = objectstore.ResourceTypeImage
	}
	if publicID := objectstore.PublicIDFromURL(doc.URL, resourceType); publicID != "" {
		if err := s.store.Delete(ctx, publicID, resourceType); err != nil {
			log.Printf("DocumentService: Error deleting stored file for document %s: %v", req.ID, err)
		}
	}

	return nil
}

func (s *documentService) GetAll(ctx context.Context) ([]models.Document, error) {
	return s.docs.GetAll(ctx)
}

// UpdateStatus records the admin verdict. Only APPROVED or REJECTED are
// accepted.
func (s *documentService) UpdateStatus(ctx context.Context, req *dto.UpdateDocumentStatusRequest) (*models.Document, error) {
	status, err := parseApprovalStatus(req.Status)
	if err != nil {
		return nil, err
	}

	doc, err := s.docs.UpdateStatus(ctx, req.ID, status, req.Remarks)
	if err != nil {
		return nil, MapRepoError(err, "update document status")
	}
	return doc, nil
}

func (s *documentService) parseDocumentType(raw string, role models.Role) (models.DocumentType, error) {
	docType := models.DocumentType(raw)

	allowed := studentDocumentTypes
	if role == models.RoleRecruiter {
		allowed = recruiterDocumentTypes
	}
	if !allowed[docType] {
		return "", fmt.Errorf("%w: document type %q is not valid for role %s", ErrValidation, raw, role)
	}
	return docType, nil
}

// resolveProfileID finds the caller's profile for document ownership. A
// missing profile means the account has not completed onboarding yet.
func (s *documentService) resolveProfileID(ctx context.Context, userID uuid.UUID, role models.Role) (uuid.UUID, error) {
	switch role {
	case models.RoleStudent:
		profile, err := s.students.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return uuid.Nil, fmt.Errorf("%w: create your student profile first", ErrValidation)
			}
			return uuid.Nil, MapRepoError(err, "get student profile")
		}
		return profile.ID, nil
	case models.RoleRecruiter:
		profile, err := s.recruiters.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return uuid.Nil, fmt.Errorf("%w: create your recruiter profile first", ErrValidation)
			}
			return uuid.Nil, MapRepoError(err, "get recruiter profile")
		}
		return profile.ID, nil
	default:
		return uuid.Nil, fmt.Errorf("%w: role %s cannot own documents", ErrForbidden, role)
	}
}

// validateFilePolicy enforces the per-type size and content type limits:
// profile pictures must be images up to 5MB, everything else a PDF or image
// up to 10MB.
func validateFilePolicy(docType models.DocumentType, contentType string, sizeBytes int64) error {
	isImage := strings.HasPrefix(contentType, "image/")
	isPDF := contentType == "application/pdf"

	if docType == models.DocumentTypeProfilePicture {
		if !isImage {
			return fmt.Errorf("%w: profile pictures must be images", ErrValidation)
		}
		if sizeBytes > maxImageSizeBytes {
			return fmt.Errorf("%w: profile pictures may not exceed 5MB", ErrValidation)
		}
		return nil
	}

	if !isImage && !isPDF {
		return fmt.Errorf("%w: documents must be PDFs or images", ErrValidation)
	}
	if sizeBytes > maxDocumentSizeBytes {
		return fmt.Errorf("%w: documents may not exceed 10MB", ErrValidation)
	}
	return nil
}

func uploadFolder(role models.Role, docType models.DocumentType) string {
	if role == models.RoleRecruiter {
		return "recruiters/" + string(docType)
	}
	return "students/" + string(docType)
}

func documentName(docType models.DocumentType, certificateName, fileName string) string {
	if docType == models.DocumentTypeCertificate && certificateName != "" {
		return certificateName
	}
	if fileName != "" {
		return fileName
	}
	return string(docType)
}
