package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the payment lifecycle state.
//
// pending is the initial state. A partner or staff mark-paid parks the record
// in approved, which is a claim awaiting the admin's countersignature. The
// admin's own mark-paid is authoritative and lands directly on completed.
// approved can be rejected back to pending; completed is terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCompleted Status = "completed"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusCompleted:
		return true
	}
	return false
}

// Payment is one scheduled compensation event for one employee. The amount is
// a snapshot taken at creation; later salary changes never alter it.
type Payment struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	DueDate    time.Time
	PaidDate   *time.Time
	Status     Status
	PaidBy     *string
	ProofURL   *string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName       *string
	EmployeeUniqueCode *string
	PartnerCompanyName *string
	PaidByEmail        *string
}
