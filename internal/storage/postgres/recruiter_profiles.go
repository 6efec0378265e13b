// internal/storage/postgres/recruiter_profiles.go
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

const recruiterProfileColumns = `id, user_id, first_name, last_name, email, phone, company, designation, company_website, company_logo, created_at, updated_at`

// RecruiterProfileRepo implements the storage.RecruiterProfileRepository
// interface using PostgreSQL.
type RecruiterProfileRepo struct {
	db Querier
}

// NewRecruiterProfileRepo creates a new RecruiterProfileRepo.
func NewRecruiterProfileRepo(db *pgxpool.Pool) *RecruiterProfileRepo {
	return &RecruiterProfileRepo{db: db}
}

// WithTx creates a new RecruiterProfileRepo with the transaction.
func (r *RecruiterProfileRepo) WithTx(tx pgx.Tx) storage.RecruiterProfileRepository {
	return &RecruiterProfileRepo{db: tx}
}

// Compile-time check to ensure RecruiterProfileRepo implements RecruiterProfileRepository
var _ storage.RecruiterProfileRepository = (*RecruiterProfileRepo)(nil)

// Upsert creates or replaces the profile owned by req.UserID. The company logo
// is managed through UpdateCompanyLogo and survives the upsert.
func (r *RecruiterProfileRepo) Upsert(ctx context.Context, req *dto.UpsertRecruiterProfileRequest) (*models.RecruiterProfile, error) {
	query := fmt.Sprintf(`
		INSERT INTO recruiter_profiles (id, user_id, first_name, last_name, email, phone, company, designation, company_website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			company = EXCLUDED.company,
			designation = EXCLUDED.designation,
			company_website = EXCLUDED.company_website,
			updated_at = NOW()
		RETURNING %s
	`, recruiterProfileColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.UserID,
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		req.Company,
		req.Designation,
		req.CompanyWebsite,
	)

	profile, err := scanRecruiterProfile(row)
	if err != nil {
		if isPgErrCode(err, "23503") { // foreign_key_violation on user_id
			log.Printf("Error upserting recruiter profile: invalid user ID %s: %v\n", req.UserID, err)
			return nil, fmt.Errorf("failed to upsert recruiter profile: invalid user ID: %w", storage.ErrConflict)
		}
		log.Printf("Error upserting recruiter profile for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to upsert recruiter profile: %w", err)
	}

	log.Printf("Recruiter profile upserted successfully with ID: %s", profile.ID)
	return profile, nil
}

// GetByID retrieves a recruiter profile by its ID.
func (r *RecruiterProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.RecruiterProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM recruiter_profiles WHERE id = $1`, recruiterProfileColumns)

	profile, err := scanRecruiterProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning recruiter profile by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get recruiter profile by ID %s: %w", id, err)
	}

	return profile, nil
}

// GetByUserID retrieves the recruiter profile owned by an account.
func (r *RecruiterProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.RecruiterProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM recruiter_profiles WHERE user_id = $1`, recruiterProfileColumns)

	profile, err := scanRecruiterProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning recruiter profile by user ID %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to get recruiter profile by user ID %s: %w", userID, err)
	}

	return profile, nil
}

// GetAll retrieves every recruiter profile, newest first.
func (r *RecruiterProfileRepo) GetAll(ctx context.Context) ([]models.RecruiterProfile, error) {
	query := buildListQuery(
		fmt.Sprintf(`SELECT %s FROM recruiter_profiles`, recruiterProfileColumns),
		nil,
		"created_at DESC",
	)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying recruiter profiles: %v\n", err)
		return nil, fmt.Errorf("failed to query recruiter profiles: %w", err)
	}
	defer rows.Close()

	profiles, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RecruiterProfile])
	if err != nil {
		log.Printf("Error scanning recruiter profiles: %v\n", err)
		return nil, fmt.Errorf("failed to scan recruiter profiles: %w", err)
	}

	if profiles == nil {
		profiles = []models.RecruiterProfile{} // Return empty slice, not nil
	}

	return profiles, nil
}

// UpdateCompanyLogo sets the stored logo URL for a profile.
func (r *RecruiterProfileRepo) UpdateCompanyLogo(ctx context.Context, id uuid.UUID, url string) error {
	query := `
		UPDATE recruiter_profiles
		SET company_logo = $1, updated_at = NOW()
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, url, id)
	if err != nil {
		log.Printf("Error updating company logo for recruiter profile %s: %v\n", id, err)
		return fmt.Errorf("failed to update company logo for recruiter profile %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Recruiter profile not found for logo update with ID: %s\n", id)
		return storage.ErrNotFound
	}

	return nil
}

func scanRecruiterProfile(row pgx.Row) (*models.RecruiterProfile, error) {
	var p models.RecruiterProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Phone,
		&p.Company,
		&p.Designation,
		&p.CompanyWebsite,
		&p.CompanyLogo,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
