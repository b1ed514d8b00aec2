package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/auth"
	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payment"
	"github.com/crewpay/crewpay-backend-go/internal/domain/user"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/crewpay/crewpay-backend-go/internal/service/scope"
)

type PaymentServiceImpl struct {
	db           *database.DB
	paymentRepo  payment.PaymentRepository
	employeeRepo employee.EmployeeRepository
	scopes       *scope.Resolver
}

func NewPaymentService(
	db *database.DB,
	paymentRepo payment.PaymentRepository,
	employeeRepo employee.EmployeeRepository,
	scopes *scope.Resolver,
) payment.PaymentService {
	return &PaymentServiceImpl{
		db:           db,
		paymentRepo:  paymentRepo,
		employeeRepo: employeeRepo,
		scopes:       scopes,
	}
}

func mapPaymentToResponse(p payment.Payment) payment.PaymentResponse {
	var paidDate *string
	if p.PaidDate != nil {
		s := p.PaidDate.Format(time.RFC3339)
		paidDate = &s
	}

	return payment.PaymentResponse{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		EmployeeName:       p.EmployeeName,
		EmployeeUniqueCode: p.EmployeeUniqueCode,
		PartnerCompanyName: p.PartnerCompanyName,
		Amount:             p.Amount,
		DueDate:            p.DueDate.Format("2006-01-02"),
		PaidDate:           paidDate,
		Status:             string(p.Status),
		PaidBy:             p.PaidBy,
		PaidByEmail:        p.PaidByEmail,
		ProofURL:           p.ProofURL,
		Notes:              p.Notes,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}
}

// markPaidTarget maps the caller's role to the landing status. The admin's
// mark is authoritative; everyone else's is a claim awaiting countersignature.
func markPaidTarget(role user.Role) payment.Status {
	if role == user.RoleAdmin {
		return payment.StatusCompleted
	}
	return payment.StatusApproved
}

func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req payment.CreatePaymentRequest) (payment.PaymentResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	if principal.Role != user.RoleAdmin {
		return payment.PaymentResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}
	dueDate, _ := validator.IsValidDate(req.DueDate)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, employee.ScopeAll())
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	if emp.ApprovalStatus != employee.ApprovalStatusApproved {
		return payment.PaymentResponse{}, employee.ErrEmployeeNotApproved
	}

	// The amount is a snapshot; later salary edits never touch it.
	amount := emp.Salary
	if req.Amount != nil {
		amount = *req.Amount
	}

	created, err := s.paymentRepo.Create(ctx, payment.Payment{
		EmployeeID: emp.ID,
		Amount:     amount,
		DueDate:    dueDate,
		Notes:      req.Notes,
	})
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	slog.Info("payment created", "payment_id", created.ID, "employee_id", emp.ID, "amount", amount)
	return mapPaymentToResponse(created), nil
}

func (s *PaymentServiceImpl) GetPayment(ctx context.Context, id string) (payment.PaymentResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return payment.PaymentResponse{}, payment.ErrInvalidPaymentID
	}

	sc, err := s.scopes.Resolve(ctx, principal)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	p, err := s.paymentRepo.GetByID(ctx, id, sc)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	return mapPaymentToResponse(p), nil
}

func (s *PaymentServiceImpl) ListPayments(ctx context.Context, filter payment.PaymentFilter) (payment.ListPaymentsResponse, int64, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return payment.ListPaymentsResponse{}, 0, err
	}

	sc, err := s.scopes.Resolve(ctx, principal)
	if err != nil {
		return payment.ListPaymentsResponse{}, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	payments, total, err := s.paymentRepo.List(ctx, sc, filter)
	if err != nil {
		return payment.ListPaymentsResponse{}, 0, err
	}

	// Buckets cover the same filtered set, unpaged.
	buckets, err := s.paymentRepo.ListDueDateBuckets(ctx, sc, filter)
	if err != nil {
		return payment.ListPaymentsResponse{}, 0, err
	}

	resp := payment.ListPaymentsResponse{
		Payments:       make([]payment.PaymentResponse, 0, len(payments)),
		PaymentsByDate: buckets,
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, mapPaymentToResponse(p))
	}

	return resp, total, nil
}

func (s *PaymentServiceImpl) UpdatePayment(ctx context.Context, req payment.UpdatePaymentRequest) (payment.PaymentResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	if principal.Role != user.RoleAdmin {
		return payment.PaymentResponse{}, user.ErrAdminPrivilegeRequired
	}
	if !validator.IsValidUUID(req.ID) {
		return payment.PaymentResponse{}, payment.ErrInvalidPaymentID
	}

	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	if err := s.paymentRepo.Update(ctx, req); err != nil {
		return payment.PaymentResponse{}, err
	}

	p, err := s.paymentRepo.GetByID(ctx, req.ID, employee.ScopeAll())
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	return mapPaymentToResponse(p), nil
}

func (s *PaymentServiceImpl) DeletePayment(ctx context.Context, id string) error {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return err
	}
	if principal.Role != user.RoleAdmin {
		return user.ErrAdminPrivilegeRequired
	}
	if !validator.IsValidUUID(id) {
		return payment.ErrInvalidPaymentID
	}

	return s.paymentRepo.Delete(ctx, id)
}

func (s *PaymentServiceImpl) MarkPaid(ctx context.Context, req payment.MarkPaidRequest) (payment.PaymentResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	if !validator.IsValidUUID(req.ID) {
		return payment.PaymentResponse{}, payment.ErrInvalidPaymentID
	}

	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	sc, err := s.scopes.Resolve(ctx, principal)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	target := markPaidTarget(principal.Role)
	p, err := s.paymentRepo.MarkPaid(ctx, req.ID, sc, target, principal.UserID, req.ProofURL, req.Notes)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	slog.Info("payment marked paid", "payment_id", p.ID, "status", p.Status, "by", principal.UserID)
	return mapPaymentToResponse(p), nil
}

func (s *PaymentServiceImpl) ApprovePayment(ctx context.Context, req payment.ApprovePaymentRequest) (payment.PaymentResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	if principal.Role != user.RoleAdmin {
		return payment.PaymentResponse{}, user.ErrAdminPrivilegeRequired
	}
	if !validator.IsValidUUID(req.ID) {
		return payment.PaymentResponse{}, payment.ErrInvalidPaymentID
	}

	target := payment.StatusCompleted
	if !req.Approved {
		target = payment.StatusPending
	}

	p, err := s.paymentRepo.SetApprovalOutcome(ctx, req.ID, target)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	slog.Info("payment approval resolved", "payment_id", p.ID, "status", p.Status)
	return mapPaymentToResponse(p), nil
}

func (s *PaymentServiceImpl) BatchCreatePayments(ctx context.Context, req payment.BatchCreatePaymentsRequest) (payment.BatchCreatePaymentsResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return payment.BatchCreatePaymentsResponse{}, err
	}
	if principal.Role != user.RoleAdmin {
		return payment.BatchCreatePaymentsResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return payment.BatchCreatePaymentsResponse{}, err
	}
	dueDate, _ := validator.IsValidDate(req.DueDate)

	// One insert-select; unapproved employees fall out of the WHERE clause.
	created, err := s.paymentRepo.CreateForEmployees(ctx, req.EmployeeIDs, dueDate, req.Notes)
	if err != nil {
		return payment.BatchCreatePaymentsResponse{}, err
	}
	if len(created) == 0 {
		return payment.BatchCreatePaymentsResponse{}, payment.ErrNoApprovedTargets
	}

	resp := payment.BatchCreatePaymentsResponse{CreatedCount: len(created)}
	for _, p := range created {
		resp.Payments = append(resp.Payments, mapPaymentToResponse(p))
	}

	slog.Info("payment batch created", "requested", len(req.EmployeeIDs), "created", len(created))
	return resp, nil
}

func (s *PaymentServiceImpl) BatchMarkPaid(ctx context.Context, req payment.BatchMarkPaidRequest) (payment.BatchMarkPaidResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return payment.BatchMarkPaidResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return payment.BatchMarkPaidResponse{}, err
	}

	sc, err := s.scopes.Resolve(ctx, principal)
	if err != nil {
		return payment.BatchMarkPaidResponse{}, err
	}

	target := markPaidTarget(principal.Role)
	modified, err := s.paymentRepo.BulkMarkPaid(ctx, req.PaymentIDs, sc, target, principal.UserID, req.ProofURL)
	if err != nil {
		return payment.BatchMarkPaidResponse{}, err
	}

	slog.Info("payment batch marked paid", "requested", len(req.PaymentIDs), "modified", modified, "status", target)
	return payment.BatchMarkPaidResponse{ModifiedCount: modified}, nil
}
