package domain

import "context"

type CompanyStats struct {
	TotalJobs         int `json:"totalJobs"`
	ActiveJobs        int `json:"activeJobs"`
	TotalApplications int `json:"totalApplications"`
	Pending           int `json:"pending"`
	Accepted          int `json:"accepted"`
	Rejected          int `json:"rejected"`
}

// DashboardUsecase is the company side of jobs and applications
type DashboardUsecase interface {
	MyJobs(ctx context.Context, userID string) ([]Job, error)
	Applications(ctx context.Context, userID string, filter ApplicationFilter) ([]Application, error)
	Stats(ctx context.Context, userID string) (*CompanyStats, error)
	UpdateApplicationStatus(ctx context.Context, userID, applicationID, status string) (*Application, error)
	ExportApplications(ctx context.Context, userID string, filter ApplicationFilter) ([]byte, error)
}
