package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Account Role Enum ---
type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
	}
	v := Role(strVal)
	switch v {
	case RoleStudent, RoleRecruiter, RoleAdmin:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Approval Status Enum (jobs and documents) ---
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// Scan implements the sql.Scanner interface for ApprovalStatus
func (s *ApprovalStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApprovalStatus: value is not string or []byte")
		}
	}
	v := ApprovalStatus(strVal)
	switch v {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid ApprovalStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApprovalStatus
func (s ApprovalStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusApplied  ApplicationStatus = "APPLIED"
	ApplicationStatusReviewed ApplicationStatus = "REVIEWED"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusApplied, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Document Type Enum ---
type DocumentType string

const (
	DocumentTypeResume         DocumentType = "resume"
	DocumentTypeProfilePicture DocumentType = "profile_picture"
	DocumentTypeMarksheet      DocumentType = "marksheet"
	DocumentTypeIdentityProof  DocumentType = "identity_proof"
	DocumentTypeCertificate    DocumentType = "certificate"
	// Recruiter compliance documents, all of which must be approved before a
	// recruiter may post jobs.
	DocumentTypeRegistration  DocumentType = "registration"
	DocumentTypeGST           DocumentType = "gst"
	DocumentTypePAN           DocumentType = "pan"
	DocumentTypeBusinessProof DocumentType = "business_proof"
)

// ComplianceDocumentTypes are the document types a recruiter must have approved
// before posting a job.
var ComplianceDocumentTypes = []DocumentType{
	DocumentTypeRegistration,
	DocumentTypeGST,
	DocumentTypePAN,
	DocumentTypeBusinessProof,
}

// Scan implements the sql.Scanner interface for DocumentType
func (t *DocumentType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan DocumentType: value is not string or []byte")
		}
	}
	v := DocumentType(strVal)
	switch v {
	case DocumentTypeResume, DocumentTypeProfilePicture, DocumentTypeMarksheet,
		DocumentTypeIdentityProof, DocumentTypeCertificate, DocumentTypeRegistration,
		DocumentTypeGST, DocumentTypePAN, DocumentTypeBusinessProof:
		*t = v
		return nil
	default:
		return fmt.Errorf("invalid DocumentType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for DocumentType
func (t DocumentType) Value() (driver.Value, error) {
	return string(t), nil
}

// User represents an authenticated account (student, recruiter or admin).
// Profiles carry the role-specific attributes; the account only authenticates.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// StudentProfile holds a student's personal and academic attributes.
// Exactly one profile exists per student account (user_id is unique).
type StudentProfile struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	UserID             uuid.UUID `json:"user_id" db:"user_id"`
	FirstName          string    `json:"first_name" db:"first_name"`
	LastName           string    `json:"last_name" db:"last_name"`
	Email              string    `json:"email" db:"email"`
	Phone              string    `json:"phone" db:"phone"`
	College            string    `json:"college" db:"college"`
	Course             string    `json:"course" db:"course"`
	YearOfStudy        int       `json:"year_of_study" db:"year_of_study"`
	ProfilePicture     *string   `json:"profile_picture,omitempty" db:"profile_picture"`
	Skills             []string  `json:"skills" db:"skills"`
	Interests          []string  `json:"interests" db:"interests"`
	PreferredLocations []string  `json:"preferred_locations" db:"preferred_locations"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// RecruiterProfile holds a recruiter's personal and company attributes.
type RecruiterProfile struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Company        string    `json:"company" db:"company"`
	Designation    string    `json:"designation" db:"designation"`
	CompanyWebsite string    `json:"company_website" db:"company_website"`
	CompanyLogo    *string   `json:"company_logo,omitempty" db:"company_logo"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Document is the metadata record for an uploaded file. The bytes themselves
// live in the external object store; URL points at them.
type Document struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	ProfileID   uuid.UUID      `json:"profile_id" db:"profile_id"`
	ProfileRole Role           `json:"profile_role" db:"profile_role"`
	Type        DocumentType   `json:"type" db:"type"`
	Name        string         `json:"name" db:"name"`
	FileName    string         `json:"file_name" db:"file_name"`
	URL         string         `json:"url" db:"url"`
	SizeBytes   int64          `json:"size_bytes" db:"size_bytes"`
	ContentType string         `json:"content_type" db:"content_type"`
	Status      ApprovalStatus `json:"status" db:"status"`
	Remarks     *string        `json:"remarks,omitempty" db:"remarks"`
	UploadedAt  time.Time      `json:"uploaded_at" db:"uploaded_at"`
}

// Job is a recruiter-authored job posting gated by admin approval.
type Job struct {
	ID                   uuid.UUID      `json:"id" db:"id"`
	RecruiterProfileID   uuid.UUID      `json:"recruiter_profile_id" db:"recruiter_profile_id"`
	Title                string         `json:"title" db:"title"`
	Department           string         `json:"department" db:"department"`
	Location             string         `json:"location" db:"location"`
	JobType              string         `json:"job_type" db:"job_type"`
	StipendSalary        string         `json:"stipend_salary" db:"stipend_salary"`
	Duration             string         `json:"duration" db:"duration"`
	Description          string         `json:"description" db:"description"`
	Requirements         string         `json:"requirements" db:"requirements"`
	QuestionForApplicant *string        `json:"question_for_applicant,omitempty" db:"question_for_applicant"`
	AdminApprovalStatus  ApprovalStatus `json:"admin_approval_status" db:"admin_approval_status"`
	CreatedAt            time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at" db:"updated_at"`
}

// Application binds a student profile, a job and a set of selected documents.
// studentProfileID and jobID are immutable after creation; only status (and
// recruiter-visible fields) mutate afterwards.
type Application struct {
	ID                 uuid.UUID         `json:"id" db:"id"`
	StudentProfileID   uuid.UUID         `json:"student_profile_id" db:"student_profile_id"`
	JobID              uuid.UUID         `json:"job_id" db:"job_id"`
	ResumeID           *uuid.UUID        `json:"resume_id,omitempty" db:"resume_id"`
	MarksheetID        *uuid.UUID        `json:"marksheet_id,omitempty" db:"marksheet_id"`
	CertificateIDs     []uuid.UUID       `json:"certificate_ids" db:"certificate_ids"`
	Status             ApplicationStatus `json:"status" db:"status"`
	AnswerForRecruiter *string           `json:"answer_for_recruiter,omitempty" db:"answer_for_recruiter"`
	AppliedAt          time.Time         `json:"applied_at" db:"applied_at"`
}

// Message is one entry in an application's thread. Content is stored as
// ciphertext; callers only ever see plaintext.
type Message struct {
	ID            uuid.UUID `json:"id" db:"id"`
	ApplicationID uuid.UUID `json:"application_id" db:"application_id"`
	SenderEmail   string    `json:"sender_email" db:"sender_email"`
	SenderRole    Role      `json:"sender_role" db:"sender_role"`
	ReceiverEmail string    `json:"receiver_email" db:"receiver_email"`
	ReceiverRole  Role      `json:"receiver_role" db:"receiver_role"`
	Content       string    `json:"-" db:"content"`
	SentAt        time.Time `json:"sent_at" db:"sent_at"`
}
