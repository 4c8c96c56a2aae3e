package dashboard

import "context"

// DashboardService defines the admin stats aggregation.
type DashboardService interface {
	// GetStats collects today's metrics. Metrics fail independently; the
	// response always carries whatever succeeded plus advisory messages
	// for what did not.
	GetStats(ctx context.Context, filter StatsFilter) (StatsResponse, error)
}
