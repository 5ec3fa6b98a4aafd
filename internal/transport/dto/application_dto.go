package dto

// CreateApplicationRequest defines the structure for submitting an
// application. CandidateID is always the authenticated requester; any
// candidate id in the payload is dropped.
type CreateApplicationRequest struct {
	CandidateID int     `json:"-"` // Set internally by handler from auth context
	JobID       int     `json:"jobId" validate:"required"`
	ResumeURL   *string `json:"resumeUrl" validate:"omitempty,url"`
	CoverLetter *string `json:"coverLetter" validate:"omitempty,max=10000"`
}

// ListApplicationsByJobRequest defines the structure for the employer view of
// a job's applications.
type ListApplicationsByJobRequest struct {
	JobID int `json:"-" validate:"required"` // From URL path
}

// ListApplicationsByCandidateRequest defines the structure for the "mine"
// view, always scoped to the requester's own id.
type ListApplicationsByCandidateRequest struct {
	CandidateID int `json:"-" validate:"required"` // Set internally by handler
}
