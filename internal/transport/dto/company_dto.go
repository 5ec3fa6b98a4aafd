package dto

// CreateCompanyRequest defines the structure for creating a company. The
// creator is promoted to employer and bound to the new company as a side
// effect, so no owner field is accepted from the client.
type CreateCompanyRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	LogoURL     *string `json:"logoUrl" validate:"omitempty,url"`
	Website     *string `json:"website" validate:"omitempty,url"`
}

// GetCompanyByIDRequest defines the structure for getting a company by id.
type GetCompanyByIDRequest struct {
	ID int `json:"-" validate:"required"`
}
