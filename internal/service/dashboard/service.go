package dashboard

import (
	"context"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/auth"
	"github.com/crewpay/crewpay-backend-go/internal/domain/dashboard"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payment"
	"github.com/crewpay/crewpay-backend-go/internal/domain/user"
	"github.com/crewpay/crewpay-backend-go/internal/service/scope"
)

const chartMonths = 6

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	paymentRepo   payment.PaymentRepository
	scopes        *scope.Resolver
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	paymentRepo payment.PaymentRepository,
	scopes *scope.Resolver,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		paymentRepo:   paymentRepo,
		scopes:        scopes,
	}
}

func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	sc, err := s.scopes.Resolve(ctx, principal)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	var resp dashboard.StatsResponse

	counts, err := s.dashboardRepo.GetEmployeeCounts(ctx, sc)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	resp.Stats.TotalEmployees = counts.Total
	resp.Stats.ApprovedEmployees = counts.Approved
	resp.Stats.PendingApprovalEmployees = counts.PendingApproval

	// Routes, jobs and the partner roster are global records; only the admin
	// dashboard surfaces them.
	if principal.Role == user.RoleAdmin {
		routes, jobs, activeJobs, partners, err := s.dashboardRepo.GetRouteJobPartnerCounts(ctx)
		if err != nil {
			return dashboard.StatsResponse{}, err
		}
		resp.Stats.TotalRoutes = routes
		resp.Stats.TotalJobs = jobs
		resp.Stats.ActiveJobs = activeJobs
		resp.Stats.TotalPartners = partners
	}

	pendingCount, err := s.dashboardRepo.GetPendingPaymentCount(ctx, sc)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	resp.Stats.PendingPaymentCount = pendingCount

	owed, paid, err := s.paymentRepo.AmountOwedAndPaid(ctx, sc)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	resp.Stats.PendingPaymentTotal = owed
	resp.Stats.CompletedPaymentTotal = paid

	now := time.Now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(chartMonths - 1), 0)
	series, err := s.dashboardRepo.GetMonthlySeries(ctx, sc, since, chartMonths)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	for _, m := range series {
		resp.ChartData = append(resp.ChartData, dashboard.MonthlyActivity{
			Name:      m.Month.Format("Jan"),
			Employees: m.NewEmployees,
			Jobs:      m.NewJobs,
			Payments:  m.Completed,
		})
	}

	recents, err := s.dashboardRepo.GetRecentEmployees(ctx, sc, 5)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	resp.RecentEmployees = recents

	if principal.Role == user.RoleAdmin {
		jobs, err := s.dashboardRepo.GetRecentJobs(ctx, 5)
		if err != nil {
			return dashboard.StatsResponse{}, err
		}
		resp.RecentJobs = jobs
	}

	return resp, nil
}
