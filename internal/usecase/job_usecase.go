package usecase

import (
	"context"
	"strings"

	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/security"
	"humancapital-api/pkg/validation"
)

const (
	defaultJobPageSize = 50
	maxJobPageSize     = 100
)

type jobUsecase struct {
	ownership
	jobRepo domain.JobRepository
	uploads UploadUsecase
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository, candidateRepo domain.CandidateRepository, uploads UploadUsecase) domain.JobUsecase {
	return &jobUsecase{
		ownership: ownership{candidates: candidateRepo, companies: companyRepo},
		jobRepo:   jobRepo,
		uploads:   uploads,
	}
}

func (u *jobUsecase) Create(ctx context.Context, userID string, input domain.JobInput) (*domain.Job, error) {
	company, err := u.CompanyOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	category := strings.ToUpper(strings.TrimSpace(input.Category))
	if !domain.IsValidCategory(category) {
		return nil, apperror.BadRequest("Invalid category")
	}

	job := &domain.Job{
		CompanyID:        company.ID,
		Title:            strings.TrimSpace(input.Title),
		Description:      validation.SanitizeText(input.Description),
		Category:         category,
		City:             strings.TrimSpace(input.City),
		Salary:           trimmedOrNil(input.Salary),
		Experience:       trimmedOrNil(input.Experience),
		Requirements:     sanitizedOrNil(input.Requirements),
		Responsibilities: sanitizedOrNil(input.Responsibilities),
		IsActive:         true,
	}
	if job.Title == "" || job.Description == "" || job.City == "" {
		return nil, apperror.BadRequest("Title, description and city are required")
	}

	if input.PDF != nil {
		url, err := u.uploads.Upload(ctx, security.PurposeJobPDF, input.PDF)
		if err != nil {
			return nil, err
		}
		job.PDFURL = &url
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	job.Company = company
	return job, nil
}

// Update applies the non-nil fields of update to a job owned by the caller's company.
func (u *jobUsecase) Update(ctx context.Context, userID, jobID string, update domain.JobUpdate) (*domain.Job, error) {
	company, err := u.CompanyOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, notFoundOr(err, "Job not found")
	}
	if err := requireJobOwner(job, company); err != nil {
		return nil, err
	}

	if update.Title != nil {
		job.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		job.Description = validation.SanitizeText(*update.Description)
	}
	if update.Category != nil {
		category := strings.ToUpper(strings.TrimSpace(*update.Category))
		if !domain.IsValidCategory(category) {
			return nil, apperror.BadRequest("Invalid category")
		}
		job.Category = category
	}
	if update.City != nil {
		job.City = strings.TrimSpace(*update.City)
	}
	if update.Salary != nil {
		job.Salary = trimmedOrNil(update.Salary)
	}
	if update.Experience != nil {
		job.Experience = trimmedOrNil(update.Experience)
	}
	if update.Requirements != nil {
		job.Requirements = sanitizedOrNil(update.Requirements)
	}
	if update.Responsibilities != nil {
		job.Responsibilities = sanitizedOrNil(update.Responsibilities)
	}
	if update.IsActive != nil {
		job.IsActive = *update.IsActive
	}
	if job.Title == "" || job.Description == "" || job.City == "" {
		return nil, apperror.BadRequest("Title, description and city are required")
	}

	if update.PDF != nil {
		url, err := u.uploads.Upload(ctx, security.PurposeJobPDF, update.PDF)
		if err != nil {
			return nil, err
		}
		job.PDFURL = &url
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, notFoundOr(err, "Job not found")
	}
	job.Company = company
	return job, nil
}

func (u *jobUsecase) ListActive(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultJobPageSize
	}
	if filter.Limit > maxJobPageSize {
		filter.Limit = maxJobPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	filter.Category = strings.ToUpper(strings.TrimSpace(filter.Category))
	filter.City = strings.TrimSpace(filter.City)
	filter.Search = strings.TrimSpace(filter.Search)

	if filter.Category != "" && !domain.IsValidCategory(filter.Category) {
		return nil, apperror.BadRequest("Invalid category")
	}

	jobs, err := u.jobRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Job not found")
	}
	return job, nil
}

func sanitizedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := validation.SanitizeText(*s)
	if v == "" {
		return nil
	}
	return &v
}
