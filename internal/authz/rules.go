// Package authz holds the per-operation access rules as plain predicates on
// the resolved user and the target entity. Handlers and services call these
// instead of checking roles inline, so the rules are testable without any
// transport or database.
package authz

import "job-board-api/internal/models"

// CanPostJobs reports whether the user may create job postings: employer role
// with a bound company.
func CanPostJobs(user *models.User) bool {
	return user != nil && user.Role == models.UserRoleEmployer && user.CompanyID != nil
}

// CanManageJob reports whether the user may update or delete the job: only
// the company that owns a job may mutate it.
func CanManageJob(user *models.User, job *models.Job) bool {
	if user == nil || job == nil {
		return false
	}
	if user.Role != models.UserRoleEmployer || user.CompanyID == nil {
		return false
	}
	return *user.CompanyID == job.CompanyID
}

// CanViewJobApplications reports whether the user may list a job's
// applications. Same ownership gate as managing the job.
func CanViewJobApplications(user *models.User, job *models.Job) bool {
	return CanManageJob(user, job)
}

// CanApply reports whether the user may submit an application: any
// authenticated user.
func CanApply(user *models.User) bool {
	return user != nil
}

// CanCreateCompany reports whether the user may create a company: any
// authenticated user, unconditionally. Promotion to employer is a side effect
// of the creation itself.
func CanCreateCompany(user *models.User) bool {
	return user != nil
}
