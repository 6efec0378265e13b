// internal/storage/postgres/documents.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"placement-portal/internal/models"
	"placement-portal/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const documentColumns = `id, profile_id, profile_role, type, name, file_name, url, size_bytes, content_type, status, remarks, uploaded_at`

// DocumentRepo implements the storage.DocumentRepository interface using
// PostgreSQL.
type DocumentRepo struct {
	db Querier
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(db *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// WithTx creates a new DocumentRepo with the transaction.
func (r *DocumentRepo) WithTx(tx pgx.Tx) storage.DocumentRepository {
	return &DocumentRepo{db: tx}
}

// Compile-time check to ensure DocumentRepo implements DocumentRepository
var _ storage.DocumentRepository = (*DocumentRepo)(nil)

// Create saves a new document metadata record. Status always starts PENDING.
func (r *DocumentRepo) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	query := fmt.Sprintf(`
		INSERT INTO documents (id, profile_id, profile_role, type, name, file_name, url, size_bytes, content_type, status, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING %s
	`, documentColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		doc.ProfileID,
		doc.ProfileRole,
		doc.Type,
		doc.Name,
		doc.FileName,
		doc.URL,
		doc.SizeBytes,
		doc.ContentType,
		models.ApprovalStatusPending,
	)

	created, err := scanDocument(row)
	if err != nil {
		if isPgErrCode(err, "23503") { // foreign_key_violation on profile_id
			log.Printf("Error creating document: invalid profile ID %s: %v\n", doc.ProfileID, err)
			return nil, fmt.Errorf("failed to create document: invalid profile ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating document: %v\n", err)
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	log.Printf("Document created successfully with ID: %s", created.ID)
	return created, nil
}

// GetByID retrieves a document by its ID.
func (r *DocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM documents WHERE id = $1`, documentColumns)

	doc, err := scanDocument(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning document by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get document by ID %s: %w", id, err)
	}

	return doc, nil
}

// ListByProfile retrieves a profile's documents, optionally filtered by type.
func (r *DocumentRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, docType *models.DocumentType) ([]models.Document, error) {
	conditions := []string{"profile_id = $1"}
	args := []interface{}{profileID}

	if docType != nil {
		args = append(args, *docType)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}

	query := buildListQuery(
		fmt.Sprintf(`SELECT %s FROM documents`, documentColumns),
		conditions,
		"uploaded_at DESC",
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying documents for profile %s: %v\n", profileID, err)
		return nil, fmt.Errorf("failed to query documents for profile: %w", err)
	}
	defer rows.Close()

	docs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Document])
	if err != nil {
		log.Printf("Error scanning documents for profile %s: %v\n", profileID, err)
		return nil, fmt.Errorf("failed to scan documents for profile: %w", err)
	}

	if docs == nil {
		docs = []models.Document{} // Return empty slice, not nil
	}

	return docs, nil
}

// ListByProfileTypeStatus retrieves a profile's documents of one type in one
// review status. Used for the recruiter compliance check.
func (r *DocumentRepo) ListByProfileTypeStatus(ctx context.Context, profileID uuid.UUID, docType models.DocumentType, status models.ApprovalStatus) ([]models.Document, error) {
	query := buildListQuery(
		fmt.Sprintf(`SELECT %s FROM documents`, documentColumns),
		[]string{"profile_id = $1", "type = $2", "status = $3"},
		"uploaded_at DESC",
	)

	rows, err := r.db.Query(ctx, query, profileID, docType, status)
	if err != nil {
		log.Printf("Error querying %s documents for profile %s: %v\n", docType, profileID, err)
		return nil, fmt.Errorf("failed to query documents by type and status: %w", err)
	}
	defer rows.Close()

	docs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Document])
	if err != nil {
		log.Printf("Error scanning %s documents for profile %s: %v\n", docType, profileID, err)
		return nil, fmt.Errorf("failed to scan documents by type and status: %w", err)
	}

	if docs == nil {
		docs = []models.Document{}
	}

	return docs, nil
}

// GetAll retrieves every document, newest first. Admin review queue.
func (r *DocumentRepo) GetAll(ctx context.Context) ([]models.Document, error) {
	query := buildListQuery(
		fmt.Sprintf(`SELECT %s FROM documents`, documentColumns),
		nil,
		"uploaded_at DESC",
	)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying documents: %v\n", err)
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Document])
	if err != nil {
		log.Printf("Error scanning documents: %v\n", err)
		return nil, fmt.Errorf("failed to scan documents: %w", err)
	}

	if docs == nil {
		docs = []models.Document{}
	}

	return docs, nil
}

// UpdateStatus records the admin review verdict and optional remarks.
func (r *DocumentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApprovalStatus, remarks *string) (*models.Document, error) {
	query := fmt.Sprintf(`
		UPDATE documents
		SET status = $1, remarks = $2
		WHERE id = $3
		RETURNING %s
	`, documentColumns)

	doc, err := scanDocument(r.db.QueryRow(ctx, query, status, remarks, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Document not found for status update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating status for document %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update status for document %s: %w", id, err)
	}

	log.Printf("Document %s status updated to %s", doc.ID, doc.Status)
	return doc, nil
}

// Delete removes a document metadata record by its ID.
func (r *DocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM documents WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting document %s: %v\n", id, err)
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Document not found for deletion with ID: %s\n", id)
		return storage.ErrNotFound
	}

	log.Printf("Document deleted successfully: %s", id)
	return nil
}

func scanDocument(row pgx.Row) (*models.Document, error) {
	var d models.Document
	err := row.Scan(
		&d.ID,
		&d.ProfileID,
		&d.ProfileRole,
		&d.Type,
		&d.Name,
		&d.FileName,
		&d.URL,
		&d.SizeBytes,
		&d.ContentType,
		&d.Status,
		&d.Remarks,
		&d.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
