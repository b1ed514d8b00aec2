package partnerpayment

import "context"

type ListPartnerPaymentsResponse struct {
	Payments []PartnerPaymentResponse `json:"payments"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	Limit    int                      `json:"limit"`
}

// PartnerPaymentService manages agency settlements. Creation and edits are
// admin only; a partner sees and marks only their own ledger. Staff have no
// access to this ledger at all.
type PartnerPaymentService interface {
	CreatePartnerPayment(ctx context.Context, req CreatePartnerPaymentRequest) (PartnerPaymentResponse, error)
	GetPartnerPayment(ctx context.Context, id string) (PartnerPaymentResponse, error)
	ListPartnerPayments(ctx context.Context, filter PartnerPaymentFilter) (ListPartnerPaymentsResponse, error)
	UpdatePartnerPayment(ctx context.Context, req UpdatePartnerPaymentRequest) (PartnerPaymentResponse, error)
	DeletePartnerPayment(ctx context.Context, id string) error

	// MarkPaid: the admin completes a settlement from pending or approved;
	// a partner's mark on their own record is a claim that parks it in
	// approved.
	MarkPaid(ctx context.Context, req MarkPaidRequest) (PartnerPaymentResponse, error)
}
