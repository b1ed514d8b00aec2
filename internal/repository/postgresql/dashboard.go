package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/dashboard"
	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetEmployeeCounts(ctx context.Context, scope employee.Scope) (dashboard.EmployeeCounts, error) {
	q := GetQuerier(ctx, r.db)

	var args []interface{}
	scopeCond, args, _ := scopeCondition(scope, "e", args, 1)

	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE e.approval_status = 'approved'),
			COUNT(*) FILTER (WHERE e.approval_status = 'pending')
		FROM employees e
		WHERE TRUE` + scopeCond

	var counts dashboard.EmployeeCounts
	if err := q.QueryRow(ctx, query, args...).Scan(&counts.Total, &counts.Approved, &counts.PendingApproval); err != nil {
		return dashboard.EmployeeCounts{}, fmt.Errorf("failed to count employees: %w", err)
	}

	return counts, nil
}

func (r *dashboardRepository) GetRouteJobPartnerCounts(ctx context.Context) (int64, int64, int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM routes),
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM jobs WHERE status = 'active'),
			(SELECT COUNT(*) FROM partners)
	`

	var routes, jobs, activeJobs, partners int64
	if err := q.QueryRow(ctx, query).Scan(&routes, &jobs, &activeJobs, &partners); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to count routes and jobs: %w", err)
	}

	return routes, jobs, activeJobs, partners, nil
}

func (r *dashboardRepository) GetPendingPaymentCount(ctx context.Context, scope employee.Scope) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var args []interface{}
	scopeCond, args, _ := scopeCondition(scope, "e", args, 1)

	query := `
		SELECT COUNT(*)
		FROM payments pm
		JOIN employees e ON pm.employee_id = e.id
		WHERE pm.status IN ('pending', 'approved')` + scopeCond

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending payments: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) GetMonthlySeries(ctx context.Context, scope employee.Scope, since time.Time, months int) ([]dashboard.MonthlyCounts, error) {
	q := GetQuerier(ctx, r.db)

	args := []interface{}{since, months}
	scopeCond, args, _ := scopeCondition(scope, "e", args, 3)

	// generate_series zero-fills months with no activity. Jobs are global;
	// employee and payment counts honor the scope.
	query := `
		WITH series AS (
			SELECT date_trunc('month', $1::timestamptz) + (n || ' months')::interval AS month
			FROM generate_series(0, $2 - 1) AS n
		)
		SELECT s.month,
			(SELECT COUNT(*) FROM employees e
				WHERE date_trunc('month', e.created_at) = s.month` + scopeCond + `),
			(SELECT COUNT(*) FROM jobs j
				WHERE date_trunc('month', j.created_at) = s.month),
			(SELECT COUNT(*) FROM payments pm
				JOIN employees e ON pm.employee_id = e.id
				WHERE pm.status = 'completed'
					AND date_trunc('month', pm.paid_date) = s.month` + scopeCond + `)
		FROM series s
		ORDER BY s.month
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly series: %w", err)
	}
	defer rows.Close()

	var series []dashboard.MonthlyCounts
	for rows.Next() {
		var m dashboard.MonthlyCounts
		if err := rows.Scan(&m.Month, &m.NewEmployees, &m.NewJobs, &m.Completed); err != nil {
			return nil, fmt.Errorf("failed to scan monthly counts: %w", err)
		}
		series = append(series, m)
	}

	return series, nil
}

func (r *dashboardRepository) GetRecentEmployees(ctx context.Context, scope employee.Scope, limit int) ([]dashboard.RecentEmployee, error) {
	q := GetQuerier(ctx, r.db)

	args := []interface{}{limit}
	scopeCond, args, _ := scopeCondition(scope, "e", args, 2)

	query := `
		SELECT e.id, e.unique_code, e.full_name, e.approval_status, e.created_at
		FROM employees e
		WHERE TRUE` + scopeCond + `
		ORDER BY e.created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent employees: %w", err)
	}
	defer rows.Close()

	var recent []dashboard.RecentEmployee
	for rows.Next() {
		var e dashboard.RecentEmployee
		var createdAt time.Time
		if err := rows.Scan(&e.ID, &e.UniqueCode, &e.FullName, &e.ApprovalStatus, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent employee: %w", err)
		}
		e.CreatedAt = createdAt.Format(time.RFC3339)
		recent = append(recent, e)
	}

	return recent, nil
}

func (r *dashboardRepository) GetRecentJobs(ctx context.Context, limit int) ([]dashboard.RecentJob, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT j.id, r.name, j.status, j.created_at
		FROM jobs j
		JOIN routes r ON j.route_id = r.id
		ORDER BY j.created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent jobs: %w", err)
	}
	defer rows.Close()

	var recent []dashboard.RecentJob
	for rows.Next() {
		var j dashboard.RecentJob
		var createdAt time.Time
		if err := rows.Scan(&j.ID, &j.RouteName, &j.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent job: %w", err)
		}
		j.CreatedAt = createdAt.Format(time.RFC3339)
		recent = append(recent, j)
	}

	return recent, nil
}
