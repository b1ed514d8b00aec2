package partnerpayment

import (
	"context"
	"log/slog"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/auth"
	"github.com/crewpay/crewpay-backend-go/internal/domain/partnerpayment"
	"github.com/crewpay/crewpay-backend-go/internal/domain/user"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/crewpay/crewpay-backend-go/internal/service/scope"
)

type PartnerPaymentServiceImpl struct {
	partnerPaymentRepo partnerpayment.PartnerPaymentRepository
	scopes             *scope.Resolver
}

func NewPartnerPaymentService(
	partnerPaymentRepo partnerpayment.PartnerPaymentRepository,
	scopes *scope.Resolver,
) partnerpayment.PartnerPaymentService {
	return &PartnerPaymentServiceImpl{
		partnerPaymentRepo: partnerPaymentRepo,
		scopes:             scopes,
	}
}

func mapPartnerPaymentToResponse(p partnerpayment.PartnerPayment) partnerpayment.PartnerPaymentResponse {
	var paidDate *string
	if p.PaidDate != nil {
		s := p.PaidDate.Format(time.RFC3339)
		paidDate = &s
	}

	return partnerpayment.PartnerPaymentResponse{
		ID:                 p.ID,
		PartnerID:          p.PartnerID,
		PartnerCompanyName: p.PartnerCompanyName,
		ContactPerson:      p.ContactPerson,
		ContactPhone:       p.ContactPhone,
		Amount:             p.Amount,
		DueDate:            p.DueDate.Format("2006-01-02"),
		PaidDate:           paidDate,
		Status:             string(p.Status),
		ProofURL:           p.ProofURL,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}
}

// ownPartnerID returns the ledger restriction for the caller: nil for the
// admin, the linked partner ID for a partner, and an error for staff, who
// have no business in this ledger.
func (s *PartnerPaymentServiceImpl) ownPartnerID(ctx context.Context, p auth.Principal) (*string, error) {
	switch p.Role {
	case user.RoleAdmin:
		return nil, nil
	case user.RolePartner:
		pt, err := s.scopes.ResolvePartner(ctx, p)
		if err != nil {
			return nil, err
		}
		return &pt.ID, nil
	}
	return nil, user.ErrRoleNotAllowed
}

func (s *PartnerPaymentServiceImpl) CreatePartnerPayment(ctx context.Context, req partnerpayment.CreatePartnerPaymentRequest) (partnerpayment.PartnerPaymentResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}
	if principal.Role != user.RoleAdmin {
		return partnerpayment.PartnerPaymentResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}
	dueDate, _ := validator.IsValidDate(req.DueDate)

	created, err := s.partnerPaymentRepo.Create(ctx, partnerpayment.PartnerPayment{
		PartnerID: req.PartnerID,
		Amount:    req.Amount,
		DueDate:   dueDate,
	})
	if err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}

	slog.Info("partner payment created", "partner_payment_id", created.ID, "partner_id", created.PartnerID)
	return mapPartnerPaymentToResponse(created), nil
}

func (s *PartnerPaymentServiceImpl) GetPartnerPayment(ctx context.Context, id string) (partnerpayment.PartnerPaymentResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return partnerpayment.PartnerPaymentResponse{}, partnerpayment.ErrPartnerPaymentNotFound
	}

	own, err := s.ownPartnerID(ctx, principal)
	if err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}

	p, err := s.partnerPaymentRepo.GetByID(ctx, id, own)
	if err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}

	return mapPartnerPaymentToResponse(p), nil
}

func (s *PartnerPaymentServiceImpl) ListPartnerPayments(ctx context.Context, filter partnerpayment.PartnerPaymentFilter) (partnerpayment.ListPartnerPaymentsResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return partnerpayment.ListPartnerPaymentsResponse{}, err
	}

	own, err := s.ownPartnerID(ctx, principal)
	if err != nil {
		return partnerpayment.ListPartnerPaymentsResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	payments, total, err := s.partnerPaymentRepo.List(ctx, own, filter)
	if err != nil {
		return partnerpayment.ListPartnerPaymentsResponse{}, err
	}

	resp := partnerpayment.ListPartnerPaymentsResponse{
		Payments: make([]partnerpayment.PartnerPaymentResponse, 0, len(payments)),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, mapPartnerPaymentToResponse(p))
	}

	return resp, nil
}

func (s *PartnerPaymentServiceImpl) UpdatePartnerPayment(ctx context.Context, req partnerpayment.UpdatePartnerPaymentRequest) (partnerpayment.PartnerPaymentResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}
	if principal.Role != user.RoleAdmin {
		return partnerpayment.PartnerPaymentResponse{}, user.ErrAdminPrivilegeRequired
	}
	if !validator.IsValidUUID(req.ID) {
		return partnerpayment.PartnerPaymentResponse{}, partnerpayment.ErrPartnerPaymentNotFound
	}

	if err := req.Validate(); err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}

	if err := s.partnerPaymentRepo.Update(ctx, req); err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}

	p, err := s.partnerPaymentRepo.GetByID(ctx, req.ID, nil)
	if err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}

	return mapPartnerPaymentToResponse(p), nil
}

func (s *PartnerPaymentServiceImpl) DeletePartnerPayment(ctx context.Context, id string) error {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return err
	}
	if principal.Role != user.RoleAdmin {
		return user.ErrAdminPrivilegeRequired
	}
	if !validator.IsValidUUID(id) {
		return partnerpayment.ErrPartnerPaymentNotFound
	}

	return s.partnerPaymentRepo.Delete(ctx, id)
}

func (s *PartnerPaymentServiceImpl) MarkPaid(ctx context.Context, req partnerpayment.MarkPaidRequest) (partnerpayment.PartnerPaymentResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}
	if !validator.IsValidUUID(req.ID) {
		return partnerpayment.PartnerPaymentResponse{}, partnerpayment.ErrPartnerPaymentNotFound
	}

	if err := req.Validate(); err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}

	own, err := s.ownPartnerID(ctx, principal)
	if err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}

	// Admin completes from either live state; a partner's mark is a claim
	// that parks its own pending record in approved.
	from := []partnerpayment.Status{partnerpayment.StatusPending}
	target := partnerpayment.StatusApproved
	if principal.Role == user.RoleAdmin {
		from = []partnerpayment.Status{partnerpayment.StatusPending, partnerpayment.StatusApproved}
		target = partnerpayment.StatusCompleted
	}

	p, err := s.partnerPaymentRepo.MarkPaid(ctx, req.ID, own, from, target, req.ProofURL)
	if err != nil {
		return partnerpayment.PartnerPaymentResponse{}, err
	}

	slog.Info("partner payment marked paid", "partner_payment_id", p.ID, "status", p.Status, "by", principal.UserID)
	return mapPartnerPaymentToResponse(p), nil
}
