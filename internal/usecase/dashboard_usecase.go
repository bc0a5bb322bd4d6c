package usecase

import (
	"context"
	"time"

	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/email"
	"humancapital-api/pkg/logger"

	"github.com/google/uuid"
)

const notifyTimeout = 30 * time.Second

// StatusNotifier is satisfied by *email.EmailService
type StatusNotifier interface {
	SendApplicationStatus(ctx context.Context, data email.StatusEmailData) error
}

type dashboardUsecase struct {
	ownership
	jobRepo         domain.JobRepository
	applicationRepo domain.ApplicationRepository
	notifier        StatusNotifier
}

// NewDashboardUsecase wires the company dashboard. notifier may be nil.
func NewDashboardUsecase(
	jobRepo domain.JobRepository,
	appRepo domain.ApplicationRepository,
	candidateRepo domain.CandidateRepository,
	companyRepo domain.CompanyRepository,
	notifier StatusNotifier,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		ownership:       ownership{candidates: candidateRepo, companies: companyRepo},
		jobRepo:         jobRepo,
		applicationRepo: appRepo,
		notifier:        notifier,
	}
}

func (u *dashboardUsecase) MyJobs(ctx context.Context, userID string) ([]domain.Job, error) {
	company, err := u.CompanyOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	jobs, err := u.jobRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *dashboardUsecase) Applications(ctx context.Context, userID string, filter domain.ApplicationFilter) ([]domain.Application, error) {
	company, err := u.CompanyOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if filter.Status != "" && !domain.IsValidApplicationStatus(filter.Status) {
		return nil, apperror.BadRequest("Invalid status")
	}
	if filter.JobID != "" {
		if _, err := uuid.Parse(filter.JobID); err != nil {
			return nil, apperror.BadRequest("Invalid job id")
		}
	}
	apps, err := u.applicationRepo.ListByCompany(ctx, company.ID, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *dashboardUsecase) Stats(ctx context.Context, userID string) (*domain.CompanyStats, error) {
	company, err := u.CompanyOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats, err := u.applicationRepo.StatsByCompany(ctx, company.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}

// UpdateApplicationStatus checks application -> job -> company before writing.
func (u *dashboardUsecase) UpdateApplicationStatus(ctx context.Context, userID, applicationID, status string) (*domain.Application, error) {
	if !domain.IsValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Invalid status")
	}

	company, err := u.CompanyOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	app, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, notFoundOr(err, "Application not found")
	}
	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, notFoundOr(err, "Job not found")
	}
	if job.CompanyID != company.ID {
		return nil, apperror.Forbidden("You do not have access to this application")
	}

	updated, err := u.applicationRepo.UpdateStatus(ctx, app.ID, status)
	if err != nil {
		return nil, notFoundOr(err, "Application not found")
	}
	updated.Job = job

	if app.Status != status {
		u.notifyStatus(ctx, updated, job, company)
	}
	return updated, nil
}

// notifyStatus emails the candidate in the background. Failures are only logged.
func (u *dashboardUsecase) notifyStatus(ctx context.Context, app *domain.Application, job *domain.Job, company *domain.Company) {
	if u.notifier == nil {
		return
	}
	candidate, err := u.candidates.GetByID(ctx, app.CandidateID)
	if err != nil || candidate.Email == "" {
		logger.Log.Warn("Skipping status email: candidate not resolvable", "application_id", app.ID, "error", err)
		return
	}

	data := email.StatusEmailData{
		To:            candidate.Email,
		CandidateName: candidate.FullName(),
		JobTitle:      job.Title,
		CompanyName:   company.Name,
		Status:        app.Status,
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()
		if err := u.notifier.SendApplicationStatus(sendCtx, data); err != nil {
			logger.Log.Error("Failed to send status email", "application_id", app.ID, "error", err)
		}
	}()
}

func (u *dashboardUsecase) ExportApplications(ctx context.Context, userID string, filter domain.ApplicationFilter) ([]byte, error) {
	apps, err := u.Applications(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	data, err := exportApplicationsXLSX(apps)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return data, nil
}
