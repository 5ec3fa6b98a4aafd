package database

import (
	"context"
	"log"

	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// SeedIfEmpty inserts a demo company and a couple of job postings when the
// jobs table is empty, so a fresh environment has something to browse.
func SeedIfEmpty(ctx context.Context, companyRepo storage.CompanyRepository, jobRepo storage.JobRepository) error {
	jobs, err := jobRepo.List(ctx, &dto.ListJobsRequest{})
	if err != nil {
		return err
	}
	if len(jobs) > 0 {
		return nil
	}

	log.Println("Seeding database...")

	company, err := companyRepo.Create(ctx, &dto.CreateCompanyRequest{
		Name:        "TechCorp Inc.",
		Description: strPtr("Leading tech solutions provider."),
		Website:     strPtr("https://techcorp.com"),
		LogoURL:     strPtr("https://via.placeholder.com/100"),
	})
	if err != nil {
		return err
	}

	if _, err := jobRepo.Create(ctx, &dto.CreateJobRequest{
		CompanyID:    company.ID,
		Title:        "Senior Frontend Developer",
		Location:     "Remote",
		JobType:      "Full-time",
		SalaryMin:    intPtr(120000),
		SalaryMax:    intPtr(160000),
		Description:  "We are looking for an experienced React developer...",
		Requirements: strPtr("- 5+ years React\n- TypeScript mastery\n- Node.js knowledge"),
	}); err != nil {
		return err
	}

	if _, err := jobRepo.Create(ctx, &dto.CreateJobRequest{
		CompanyID:    company.ID,
		Title:        "Backend Engineer",
		Location:     "New York, NY",
		JobType:      "Hybrid",
		SalaryMin:    intPtr(130000),
		SalaryMax:    intPtr(170000),
		Description:  "Join our backend team building scalable APIs...",
		Requirements: strPtr("- Python/Django or Node.js\n- PostgreSQL\n- AWS"),
	}); err != nil {
		return err
	}

	log.Println("Seeding complete.")
	return nil
}
