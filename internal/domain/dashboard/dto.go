package dashboard

import "github.com/shopspring/decimal"

// StatsResponse is the role-scoped dashboard aggregate. Every count and sum is
// computed after the caller's scope filter, so a partner never sees totals
// that include house or other partners' records.
type StatsResponse struct {
	Stats           Stats             `json:"stats"`
	ChartData       []MonthlyActivity `json:"chart_data"`
	RecentEmployees []RecentEmployee  `json:"recent_employees"`
	RecentJobs      []RecentJob       `json:"recent_jobs"`
}

type Stats struct {
	TotalEmployees           int64           `json:"total_employees"`
	ApprovedEmployees        int64           `json:"approved_employees"`
	PendingApprovalEmployees int64           `json:"pending_approval_employees"`
	TotalRoutes              int64           `json:"total_routes"`
	TotalJobs                int64           `json:"total_jobs"`
	ActiveJobs               int64           `json:"active_jobs"`
	TotalPartners            int64           `json:"total_partners"`
	PendingPaymentCount      int64           `json:"pending_payment_count"`
	PendingPaymentTotal      decimal.Decimal `json:"pending_payment_total"`
	CompletedPaymentTotal    decimal.Decimal `json:"completed_payment_total"`
}

// MonthlyActivity is one bucket of the rolling series, oldest first.
type MonthlyActivity struct {
	Name      string `json:"name"` // short month name, e.g. "Mar"
	Employees int64  `json:"employees"`
	Jobs      int64  `json:"jobs"`
	Payments  int64  `json:"payments"` // completed payments by paid date
}

type RecentEmployee struct {
	ID             string `json:"id"`
	UniqueCode     string `json:"unique_code"`
	FullName       string `json:"full_name"`
	ApprovalStatus string `json:"approval_status"`
	CreatedAt      string `json:"created_at"`
}

type RecentJob struct {
	ID        string `json:"id"`
	RouteName string `json:"route_name"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
