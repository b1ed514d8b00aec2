package dashboard

import (
	"context"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
)

// EmployeeCounts combines the scoped employee counters in a single query.
type EmployeeCounts struct {
	Total           int64
	Approved        int64
	PendingApproval int64
}

// MonthlyCounts is one calendar month of scoped activity.
type MonthlyCounts struct {
	Month        time.Time
	NewEmployees int64
	NewJobs      int64
	Completed    int64
}

type DashboardRepository interface {
	GetEmployeeCounts(ctx context.Context, scope employee.Scope) (EmployeeCounts, error)
	GetRouteJobPartnerCounts(ctx context.Context) (routes, jobs, activeJobs, partners int64, err error)
	// GetPendingPaymentCount counts not-yet-completed payments in scope; the
	// owed and paid sums come from the payment repository.
	GetPendingPaymentCount(ctx context.Context, scope employee.Scope) (int64, error)
	// GetMonthlySeries returns one bucket per calendar month from since up to
	// now, oldest first, zero-filled for empty months.
	GetMonthlySeries(ctx context.Context, scope employee.Scope, since time.Time, months int) ([]MonthlyCounts, error)
	GetRecentEmployees(ctx context.Context, scope employee.Scope, limit int) ([]RecentEmployee, error)
	GetRecentJobs(ctx context.Context, limit int) ([]RecentJob, error)
}
