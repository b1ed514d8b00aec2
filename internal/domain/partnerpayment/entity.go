package partnerpayment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status mirrors the employee payment lifecycle without the reject path:
// pending → approved (partner's mark-paid claim) → completed, or pending →
// completed directly when the admin marks paid.
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

// PartnerPayment is a settlement from the administrator to a partner agency
// itself, a separate ledger from per-employee payments.
type PartnerPayment struct {
	ID        string
	PartnerID string
	Amount    decimal.Decimal
	DueDate   time.Time
	PaidDate  *time.Time
	Status    Status
	ProofURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	PartnerCompanyName *string
	ContactPerson      *string
	ContactPhone       *string
}
