package payment

import "context"

type PaymentService interface {
	// CreatePayment schedules one payment for an approved employee, snapshotting
	// the amount from the current salary unless an explicit amount is given
	// (admin only).
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error)

	GetPayment(ctx context.Context, id string) (PaymentResponse, error)

	// ListPayments returns the scoped page plus due-date buckets over the same
	// filtered set for the calendar view.
	ListPayments(ctx context.Context, filter PaymentFilter) (ListPaymentsResponse, int64, error)

	UpdatePayment(ctx context.Context, req UpdatePaymentRequest) (PaymentResponse, error)
	DeletePayment(ctx context.Context, id string) error

	// MarkPaid records a settlement. The admin's mark is authoritative
	// (pending to completed); partner and staff marks are claims that park the
	// record in approved awaiting the admin's sign-off.
	MarkPaid(ctx context.Context, req MarkPaidRequest) (PaymentResponse, error)

	// ApprovePayment resolves an approved claim: completed when approved,
	// back to pending when rejected (admin only).
	ApprovePayment(ctx context.Context, req ApprovePaymentRequest) (PaymentResponse, error)

	// BatchCreatePayments schedules one payment per approved employee in the
	// list; unapproved IDs are skipped, an all-unapproved list is an error
	// (admin only).
	BatchCreatePayments(ctx context.Context, req BatchCreatePaymentsRequest) (BatchCreatePaymentsResponse, error)

	// BatchMarkPaid applies MarkPaid semantics across many IDs, silently
	// skipping records not in pending, and reports the number changed.
	BatchMarkPaid(ctx context.Context, req BatchMarkPaidRequest) (BatchMarkPaidResponse, error)
}
