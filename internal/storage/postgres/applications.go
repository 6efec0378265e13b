// internal/storage/postgres/applications.go
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

const applicationColumns = `id, student_profile_id, job_id, resume_id, marksheet_id, certificate_ids, status, answer_for_recruiter, applied_at`

// ApplicationRepo implements the storage.ApplicationRepository interface using
// PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// Create saves a new application. Status always starts APPLIED.
func (r *ApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	query := fmt.Sprintf(`
		INSERT INTO applications (id, student_profile_id, job_id, resume_id, marksheet_id, certificate_ids, status, answer_for_recruiter, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING %s
	`, applicationColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		app.StudentProfileID,
		app.JobID,
		app.ResumeID,
		app.MarksheetID,
		app.CertificateIDs,
		models.ApplicationStatusApplied,
		app.AnswerForRecruiter,
	)

	created, err := scanApplication(row)
	if err != nil {
		if isPgErrCode(err, "23503") { // foreign_key_violation on job_id or document ids
			log.Printf("Error creating application: foreign key violation (job_id: %s): %v\n", app.JobID, err)
			return nil, fmt.Errorf("failed to create application: invalid reference: %w", storage.ErrConflict)
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", created.ID)
	return created, nil
}

// GetByID retrieves an application by its ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1`, applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}

	return app, nil
}

// ListByStudent retrieves every application submitted by a student profile,
// newest first.
func (r *ApplicationRepo) ListByStudent(ctx context.Context, studentProfileID uuid.UUID) ([]models.Application, error) {
	query := buildListQuery(
		fmt.Sprintf(`SELECT %s FROM applications`, applicationColumns),
		[]string{"student_profile_id = $1"},
		"applied_at DESC",
	)

	rows, err := r.db.Query(ctx, query, studentProfileID)
	if err != nil {
		log.Printf("Error querying applications by student %s: %v\n", studentProfileID, err)
		return nil, fmt.Errorf("failed to query applications by student: %w", err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning applications by student %s: %v\n", studentProfileID, err)
		return nil, fmt.Errorf("failed to scan applications by student: %w", err)
	}

	if apps == nil {
		apps = []models.Application{} // Return empty slice, not nil
	}

	return apps, nil
}

// ListByJob retrieves every application submitted against a job, newest first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	query := buildListQuery(
		fmt.Sprintf(`SELECT %s FROM applications`, applicationColumns),
		[]string{"job_id = $1"},
		"applied_at DESC",
	)

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		log.Printf("Error querying applications by job %s: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to query applications by job: %w", err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning applications by job %s: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to scan applications by job: %w", err)
	}

	if apps == nil {
		apps = []models.Application{}
	}

	return apps, nil
}

// UpdateStatus moves an application to a new lifecycle status. Transition
// validity is enforced by the service layer.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	query := fmt.Sprintf(`
		UPDATE applications
		SET status = $1
		WHERE id = $2
		RETURNING %s
	`, applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for status update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating status for application %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update status for application %s: %w", id, err)
	}

	log.Printf("Application %s status updated to %s", app.ID, app.Status)
	return app, nil
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.ID,
		&a.StudentProfileID,
		&a.JobID,
		&a.ResumeID,
		&a.MarksheetID,
		&a.CertificateIDs,
		&a.Status,
		&a.AnswerForRecruiter,
		&a.AppliedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
