package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"placement-portal/internal/models"
	"placement-portal/internal/storage"
	"placement-portal/internal/transport/dto"
)

type profileService struct {
	students   storage.StudentProfileRepository
	recruiters storage.RecruiterProfileRepository
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(students storage.StudentProfileRepository, recruiters storage.RecruiterProfileRepository) ProfileService {
	return &profileService{
		students:   students,
		recruiters: recruiters,
	}
}

func (s *profileService) UpsertStudentProfile(ctx context.Context, req *dto.UpsertStudentProfileRequest) (*models.StudentProfile, error) {
	profile, err := s.students.Upsert(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "upsert student profile")
	}
	return profile, nil
}

func (s *profileService) GetStudentProfile(ctx context.Context, userID uuid.UUID) (*models.StudentProfile, error) {
	profile, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, MapRepoError(err, "get student profile")
	}
	return profile, nil
}

func (s *profileService) UpsertRecruiterProfile(ctx context.Context, req *dto.UpsertRecruiterProfileRequest) (*models.RecruiterProfile, error) {
	profile, err := s.recruiters.Upsert(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "upsert recruiter profile")
	}
	return profile, nil
}

func (s *profileService) GetRecruiterProfile(ctx context.Context, userID uuid.UUID) (*models.RecruiterProfile, error) {
	profile, err := s.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, MapRepoError(err, "get recruiter profile")
	}
	return profile, nil
}

func (s *profileService) ListStudentProfiles(ctx context.Context) ([]models.StudentProfile, error) {
	return s.students.GetAll(ctx)
}

func (s *profileService) ListRecruiterProfiles(ctx context.Context) ([]models.RecruiterProfile, error) {
	return s.recruiters.GetAll(ctx)
}
