package domain

import "context"

// JobSeekerStats are the dashboard counters for a job seeker.
type JobSeekerStats struct {
	TotalApplications       int64 `json:"total_applications"`
	PendingApplications     int64 `json:"pending_applications"`
	InterviewedApplications int64 `json:"interviewed_applications"`
}

// EmployerStats are the dashboard counters for an employer.
type EmployerStats struct {
	TotalJobs         int64 `json:"total_jobs"`
	OpenJobs          int64 `json:"open_jobs"`
	TotalApplications int64 `json:"total_applications"`
}

type StatsRepository interface {
	JobSeekerStats(ctx context.Context, jobSeekerID int64) (*JobSeekerStats, error)
	EmployerStats(ctx context.Context, employerID int64) (*EmployerStats, error)
}

type DashboardUsecase interface {
	// Stats returns role-dependent counters for the calling user:
	// *JobSeekerStats or *EmployerStats.
	Stats(ctx context.Context, userID, role string) (any, error)
}
