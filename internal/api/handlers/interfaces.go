// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the user routes.
type UserHandlerInterface interface {
	GetCurrentUser(c *gin.Context)
	UpdateProfile(c *gin.Context)
}

// CompanyHandlerInterface defines the methods needed by the company routes.
type CompanyHandlerInterface interface {
	CreateCompany(c *gin.Context)
	GetCompanyByID(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	CreateApplication(c *gin.Context)
	ListApplicationsByJob(c *gin.Context)
	ListMyApplications(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ CompanyHandlerInterface = (*CompanyHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
