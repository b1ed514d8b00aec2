package partnerpayment

import "context"

type PartnerPaymentRepository interface {
	Create(ctx context.Context, p PartnerPayment) (PartnerPayment, error)
	// GetByID optionally restricts to one partner's ledger; ownPartnerID nil
	// means unrestricted (admin).
	GetByID(ctx context.Context, id string, ownPartnerID *string) (PartnerPayment, error)
	List(ctx context.Context, ownPartnerID *string, filter PartnerPaymentFilter) ([]PartnerPayment, int64, error)
	Update(ctx context.Context, req UpdatePartnerPaymentRequest) error
	Delete(ctx context.Context, id string) error

	// MarkPaid applies the role-dependent transition atomically. fromStatuses
	// lists the states the record may currently be in (pending for partners,
	// pending or approved for the admin).
	MarkPaid(ctx context.Context, id string, ownPartnerID *string, fromStatuses []Status, target Status, proofURL *string) (PartnerPayment, error)
}
