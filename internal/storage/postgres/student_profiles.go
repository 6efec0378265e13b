// internal/storage/postgres/student_profiles.go
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

const studentProfileColumns = `id, user_id, first_name, last_name, email, phone, college, course, year_of_study, profile_picture, skills, interests, preferred_locations, created_at, updated_at`

// StudentProfileRepo implements the storage.StudentProfileRepository interface
// using PostgreSQL.
type StudentProfileRepo struct {
	db Querier
}

// NewStudentProfileRepo creates a new StudentProfileRepo.
func NewStudentProfileRepo(db *pgxpool.Pool) *StudentProfileRepo {
	return &StudentProfileRepo{db: db}
}

// WithTx creates a new StudentProfileRepo with the transaction.
func (r *StudentProfileRepo) WithTx(tx pgx.Tx) storage.StudentProfileRepository {
	return &StudentProfileRepo{db: tx}
}

// Compile-time check to ensure StudentProfileRepo implements StudentProfileRepository
var _ storage.StudentProfileRepository = (*StudentProfileRepo)(nil)

// Upsert creates or replaces the profile owned by req.UserID. The profile
// picture is managed through UpdateProfilePicture and survives the upsert.
func (r *StudentProfileRepo) Upsert(ctx context.Context, req *dto.UpsertStudentProfileRequest) (*models.StudentProfile, error) {
	query := fmt.Sprintf(`
		INSERT INTO student_profiles (id, user_id, first_name, last_name, email, phone, college, course, year_of_study, skills, interests, preferred_locations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			college = EXCLUDED.college,
			course = EXCLUDED.course,
			year_of_study = EXCLUDED.year_of_study,
			skills = EXCLUDED.skills,
			interests = EXCLUDED.interests,
			preferred_locations = EXCLUDED.preferred_locations,
			updated_at = NOW()
		RETURNING %s
	`, studentProfileColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.UserID,
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		req.College,
		req.Course,
		req.YearOfStudy,
		req.Skills,
		req.Interests,
		req.PreferredLocations,
	)

	profile, err := scanStudentProfile(row)
	if err != nil {
		if isPgErrCode(err, "23503") { // foreign_key_violation on user_id
			log.Printf("Error upserting student profile: invalid user ID %s: %v\n", req.UserID, err)
			return nil, fmt.Errorf("failed to upsert student profile: invalid user ID: %w", storage.ErrConflict)
		}
		log.Printf("Error upserting student profile for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to upsert student profile: %w", err)
	}

	log.Printf("Student profile upserted successfully with ID: %s", profile.ID)
	return profile, nil
}

// GetByID retrieves a student profile by its ID.
func (r *StudentProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.StudentProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_profiles WHERE id = $1`, studentProfileColumns)

	profile, err := scanStudentProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning student profile by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get student profile by ID %s: %w", id, err)
	}

	return profile, nil
}

// GetByUserID retrieves the student profile owned by an account.
func (r *StudentProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.StudentProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_profiles WHERE user_id = $1`, studentProfileColumns)

	profile, err := scanStudentProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning student profile by user ID %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to get student profile by user ID %s: %w", userID, err)
	}

	return profile, nil
}

// GetAll retrieves every student profile, newest first.
func (r *StudentProfileRepo) GetAll(ctx context.Context) ([]models.StudentProfile, error) {
	query := buildListQuery(
		fmt.Sprintf(`SELECT %s FROM student_profiles`, studentProfileColumns),
		nil,
		"created_at DESC",
	)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying student profiles: %v\n", err)
		return nil, fmt.Errorf("failed to query student profiles: %w", err)
	}
	defer rows.Close()

	profiles, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StudentProfile])
	if err != nil {
		log.Printf("Error scanning student profiles: %v\n", err)
		return nil, fmt.Errorf("failed to scan student profiles: %w", err)
	}

	if profiles == nil {
		profiles = []models.StudentProfile{} // Return empty slice, not nil
	}

	return profiles, nil
}

// UpdateProfilePicture sets the stored picture URL for a profile.
func (r *StudentProfileRepo) UpdateProfilePicture(ctx context.Context, id uuid.UUID, url string) error {
	query := `
		UPDATE student_profiles
		SET profile_picture = $1, updated_at = NOW()
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, url, id)
	if err != nil {
		log.Printf("Error updating profile picture for student profile %s: %v\n", id, err)
		return fmt.Errorf("failed to update profile picture for student profile %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Student profile not found for picture update with ID: %s\n", id)
		return storage.ErrNotFound
	}

	return nil
}

func scanStudentProfile(row pgx.Row) (*models.StudentProfile, error) {
	var p models.StudentProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Phone,
		&p.College,
		&p.Course,
		&p.YearOfStudy,
		&p.ProfilePicture,
		&p.Skills,
		&p.Interests,
		&p.PreferredLocations,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
