package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// --- User Role Enum ---
type UserRole string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"
)

// Scan implements the sql.Scanner interface for UserRole
func (r *UserRole) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan UserRole: value is not string or []byte")
		}
	}
	v := UserRole(strVal)
	switch v {
	case UserRoleCandidate, UserRoleEmployer, UserRoleAdmin:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid UserRole value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for UserRole
func (r UserRole) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusActive, JobStatusClosed:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusHired     ApplicationStatus = "hired"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
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
	case ApplicationStatusApplied, ApplicationStatusReviewed, ApplicationStatusInterview,
		ApplicationStatusRejected, ApplicationStatusHired:
		*as = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// User represents a person in the system. ExternalID links the row to the
// subject identifier supplied by the external authentication collaborator.
type User struct {
	ID              int       `json:"id" db:"id"`
	ExternalID      *string   `json:"externalId,omitempty" db:"external_id"`
	Username        string    `json:"username" db:"username"`
	Email           *string   `json:"email,omitempty" db:"email"`
	Name            *string   `json:"name,omitempty" db:"name"`
	Role            UserRole  `json:"role" db:"role"`
	Bio             *string   `json:"bio,omitempty" db:"bio"`
	ProfileImageURL *string   `json:"profileImageUrl,omitempty" db:"profile_image_url"`
	ResumeURL       *string   `json:"resumeUrl,omitempty" db:"resume_url"`
	Skills          []string  `json:"skills,omitempty" db:"skills"`
	CompanyID       *int      `json:"companyId,omitempty" db:"company_id"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// IsEmployer reports whether the user holds the employer role with a bound company.
func (u *User) IsEmployer() bool {
	return u.Role == UserRoleEmployer && u.CompanyID != nil
}

// Company represents an employer organization.
type Company struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	LogoURL     *string   `json:"logoUrl,omitempty" db:"logo_url"`
	Website     *string   `json:"website,omitempty" db:"website"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Job represents a posting owned by exactly one company. CompanyID is always
// set server-side from the creator's company and is immutable after creation.
type Job struct {
	ID           int       `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	CompanyID    int       `json:"companyId" db:"company_id"`
	Location     string    `json:"location" db:"location"`
	JobType      string    `json:"jobType" db:"job_type"`
	SalaryMin    *int      `json:"salaryMin,omitempty" db:"salary_min"`
	SalaryMax    *int      `json:"salaryMax,omitempty" db:"salary_max"`
	Description  string    `json:"description" db:"description"`
	Requirements *string   `json:"requirements,omitempty" db:"requirements"`
	Status       JobStatus `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Application represents a candidate's submission against a job. CandidateID
// is always the authenticated requester's id, never client-supplied.
type Application struct {
	ID          int               `json:"id" db:"id"`
	JobID       int               `json:"jobId" db:"job_id"`
	CandidateID int               `json:"candidateId" db:"candidate_id"`
	ResumeURL   *string           `json:"resumeUrl,omitempty" db:"resume_url"`
	CoverLetter *string           `json:"coverLetter,omitempty" db:"cover_letter"`
	Status      ApplicationStatus `json:"status" db:"status"`
	AppliedAt   time.Time         `json:"appliedAt" db:"applied_at"`
}

// JobWithCompany is the denormalized read shape for job views: the caller
// never needs a second round trip to render the owning company.
type JobWithCompany struct {
	Job
	Company Company `json:"company"`
}

// ApplicationWithCandidate is the employer-facing read shape for the
// applications of a job.
type ApplicationWithCandidate struct {
	Application
	Candidate User `json:"candidate"`
}

// ApplicationDetail is the candidate-facing read shape: the application plus
// its job and the job's company.
type ApplicationDetail struct {
	Application
	Job JobWithCompany `json:"job"`
}
