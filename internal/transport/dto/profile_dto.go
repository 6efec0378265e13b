package dto

import (
	"github.com/google/uuid"
)

// UpsertStudentProfileRequest creates or replaces the caller's student
// profile. UserID is set from the auth context, never from the body.
type UpsertStudentProfileRequest struct {
	UserID             uuid.UUID `json:"-"`
	FirstName          string    `json:"first_name" validate:"required,max=100"`
	LastName           string    `json:"last_name" validate:"required,max=100"`
	Email              string    `json:"email" validate:"required,email"`
	Phone              string    `json:"phone" validate:"required,max=20"`
	College            string    `json:"college" validate:"omitempty,max=200"`
	Course             string    `json:"course" validate:"omitempty,max=200"`
	YearOfStudy        int       `json:"year_of_study" validate:"omitempty,gte=1,lte=10"`
	Skills             []string  `json:"skills" validate:"omitempty,dive,max=100"`
	Interests          []string  `json:"interests" validate:"omitempty,dive,max=100"`
	PreferredLocations []string  `json:"preferred_locations" validate:"omitempty,dive,max=100"`
}

// UpsertRecruiterProfileRequest creates or replaces the caller's recruiter
// profile.
type UpsertRecruiterProfileRequest struct {
	UserID         uuid.UUID `json:"-"`
	FirstName      string    `json:"first_name" validate:"required,max=100"`
	LastName       string    `json:"last_name" validate:"required,max=100"`
	Email          string    `json:"email" validate:"required,email"`
	Phone          string    `json:"phone" validate:"required,max=20"`
	Company        string    `json:"company" validate:"required,max=200"`
	Designation    string    `json:"designation" validate:"omitempty,max=100"`
	CompanyWebsite string    `json:"company_website" validate:"omitempty,url"`
}
