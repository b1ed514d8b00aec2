package payment

import (
	"context"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// PaymentRepository defines data access for the payment ledger. State
// transitions are conditional updates: the WHERE clause carries the required
// current status so a stale read can never apply an invalid transition.
type PaymentRepository interface {
	Create(ctx context.Context, p Payment) (Payment, error)
	GetByID(ctx context.Context, id string, scope employee.Scope) (Payment, error)
	List(ctx context.Context, scope employee.Scope, filter PaymentFilter) ([]Payment, int64, error)
	ListDueDateBuckets(ctx context.Context, scope employee.Scope, filter PaymentFilter) ([]DueDateBucket, error)
	Update(ctx context.Context, req UpdatePaymentRequest) error
	Delete(ctx context.Context, id string) error

	// MarkPaid transitions one pending payment to target, stamping paid_date
	// and paid_by atomically. Returns ErrNotPending when the record exists but
	// is not pending, ErrPaymentNotFound when it does not exist, and
	// ErrOutsideScope when the scope excludes it.
	MarkPaid(ctx context.Context, id string, scope employee.Scope, target Status, paidBy string, proofURL, notes *string) (Payment, error)

	// SetApprovalOutcome moves an approved payment to completed (approve) or
	// back to pending (reject), atomically on current status.
	SetApprovalOutcome(ctx context.Context, id string, target Status) (Payment, error)

	// CreateForEmployees bulk-inserts one pending payment per approved
	// employee among ids, each at that employee's current salary. One
	// statement, no partial-success window.
	CreateForEmployees(ctx context.Context, employeeIDs []string, dueDate time.Time, notes *string) ([]Payment, error)

	// BulkMarkPaid applies the pending→target transition to every scoped,
	// matching ID in one update and reports how many rows changed.
	BulkMarkPaid(ctx context.Context, ids []string, scope employee.Scope, target Status, paidBy string, proofURL *string) (int64, error)

	// AmountOwedAndPaid returns the pending+approved sum and the completed sum
	// for the scope.
	AmountOwedAndPaid(ctx context.Context, scope employee.Scope) (owed, paid decimal.Decimal, err error)
}
