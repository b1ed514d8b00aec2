package dashboard

import "context"

type DashboardService interface {
	// GetStats assembles the role-scoped dashboard: counters, a rolling
	// six-month activity series, and recent records.
	GetStats(ctx context.Context) (StatsResponse, error)
}
