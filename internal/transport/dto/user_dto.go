package dto

// CreateUserRequest is used internally by the identity resolver when an
// external subject is seen for the first time.
type CreateUserRequest struct {
	ExternalID      *string `json:"externalId"`
	Username        string  `json:"username" validate:"required,max=100"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Name            *string `json:"name" validate:"omitempty,max=100"`
	ProfileImageURL *string `json:"profileImageUrl" validate:"omitempty,url"`
}

// SyncProfileRequest is used internally by the identity resolver to refresh
// the mutable profile projection of an already-bound user. Role and company
// binding are left untouched.
type SyncProfileRequest struct {
	ExternalID      string  `json:"-"`
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// UpdateProfileRequest defines the structure for updating the authenticated
// user's own profile. Role and company binding are never client-writable;
// they change only through company creation.
type UpdateProfileRequest struct {
	UserID          int       `json:"-"` // Set internally by handler from auth context
	Name            *string   `json:"name" validate:"omitempty,max=100"`
	Email           *string   `json:"email" validate:"omitempty,email"`
	Bio             *string   `json:"bio" validate:"omitempty,max=2000"`
	ProfileImageURL *string   `json:"profileImageUrl" validate:"omitempty,url"`
	ResumeURL       *string   `json:"resumeUrl" validate:"omitempty,url"`
	Skills          *[]string `json:"skills" validate:"omitempty,dive,max=100"`
}
