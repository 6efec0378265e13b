// internal/storage/postgres/jobs.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"placement-portal/internal/models"
	"placement-portal/internal/storage"
	"placement-portal/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, recruiter_profile_id, title, department, location, job_type, stipend_salary, duration, description, requirements, question_for_applicant, admin_approval_status, created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// Create saves a new job posting. Approval status always starts PENDING
// regardless of what the caller submitted.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	query := fmt.Sprintf(`
		INSERT INTO jobs (id, recruiter_profile_id, title, department, location, job_type, stipend_salary, duration, description, requirements, question_for_applicant, admin_approval_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING %s
	`, jobColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.RecruiterProfileID,
		req.Title,
		req.Department,
		req.Location,
		req.JobType,
		req.StipendSalary,
		req.Duration,
		req.Description,
		req.Requirements,
		req.QuestionForApplicant,
		models.ApprovalStatusPending,
	)

	job, err := scanJob(row)
	if err != nil {
		if isPgErrCode(err, "23503") { // foreign_key_violation on recruiter_profile_id
			log.Printf("Error creating job: invalid recruiter profile ID %s: %v\n", req.RecruiterProfileID, err)
			return nil, fmt.Errorf("failed to create job: invalid recruiter profile ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", job.ID)
	return job, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1`, jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}

	return job, nil
}

// ListApproved retrieves jobs visible to students, newest first.
func (r *JobRepo) ListApproved(ctx context.Context) ([]models.Job, error) {
	query := buildListQuery(
		fmt.Sprintf(`SELECT %s FROM jobs`, jobColumns),
		[]string{"admin_approval_status = $1"},
		"created_at DESC",
	)

	rows, err := r.db.Query(ctx, query, models.ApprovalStatusApproved)
	if err != nil {
		log.Printf("Error querying approved jobs: %v\n", err)
		return nil, fmt.Errorf("failed to query approved jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning approved jobs: %v\n", err)
		return nil, fmt.Errorf("failed to scan approved jobs: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{} // Return empty slice, not nil
	}

	return jobs, nil
}

// ListByRecruiter retrieves jobs posted by a specific recruiter, any approval
// status, newest first.
func (r *JobRepo) ListByRecruiter(ctx context.Context, recruiterProfileID uuid.UUID) ([]models.Job, error) {
	query := buildListQuery(
		fmt.Sprintf(`SELECT %s FROM jobs`, jobColumns),
		[]string{"recruiter_profile_id = $1"},
		"created_at DESC",
	)

	rows, err := r.db.Query(ctx, query, recruiterProfileID)
	if err != nil {
		log.Printf("Error querying jobs by recruiter %s: %v\n", recruiterProfileID, err)
		return nil, fmt.Errorf("failed to query jobs by recruiter: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning jobs by recruiter %s: %v\n", recruiterProfileID, err)
		return nil, fmt.Errorf("failed to scan jobs by recruiter: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{}
	}

	return jobs, nil
}

// GetAll retrieves every job regardless of approval status. Admin view.
func (r *JobRepo) GetAll(ctx context.Context) ([]models.Job, error) {
	query := buildListQuery(
		fmt.Sprintf(`SELECT %s FROM jobs`, jobColumns),
		nil,
		"created_at DESC",
	)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying jobs: %v\n", err)
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning jobs: %v\n", err)
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{}
	}

	return jobs, nil
}

// UpdateApprovalStatus records the admin verdict on a job posting.
func (r *JobRepo) UpdateApprovalStatus(ctx context.Context, id uuid.UUID, status models.ApprovalStatus) (*models.Job, error) {
	query := fmt.Sprintf(`
		UPDATE jobs
		SET admin_approval_status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s
	`, jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found for approval update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating approval status for job %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update approval status for job %s: %w", id, err)
	}

	log.Printf("Job %s approval status updated to %s", job.ID, job.AdminApprovalStatus)
	return job, nil
}

// Delete removes a job by its ID.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", id, err)
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Job not found for deletion with ID: %s\n", id)
		return storage.ErrNotFound
	}

	log.Printf("Job deleted successfully: %s", id)
	return nil
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.ID,
		&j.RecruiterProfileID,
		&j.Title,
		&j.Department,
		&j.Location,
		&j.JobType,
		&j.StipendSalary,
		&j.Duration,
		&j.Description,
		&j.Requirements,
		&j.QuestionForApplicant,
		&j.AdminApprovalStatus,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}
