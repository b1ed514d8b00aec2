package payment

import (
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	EmployeeID string           `json:"employee_id"`
	Amount     *decimal.Decimal `json:"amount,omitempty"` // defaults to the employee's current salary
	DueDate    string           `json:"due_date"`
	Notes      *string          `json:"notes,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if validator.IsEmpty(r.DueDate) {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.DueDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePaymentRequest struct {
	ID      string
	Amount  *decimal.Decimal `json:"amount,omitempty"`
	DueDate *string          `json:"due_date,omitempty"`
	Notes   *string          `json:"notes,omitempty"`
}

func (r *UpdatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	ID       string
	ProofURL *string `json:"proof_url,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ProofURL != nil && !validator.IsValidURL(*r.ProofURL) {
		errs = append(errs, validator.ValidationError{Field: "proof_url", Message: "must be a valid URL"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApprovePaymentRequest struct {
	ID       string
	Approved bool `json:"approved"`
}

type BatchCreatePaymentsRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	DueDate     string   `json:"due_date"`
	Notes       *string  `json:"notes,omitempty"`
}

func (r *BatchCreatePaymentsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	}
	for i, id := range r.EmployeeIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{Field: "employee_ids[" + validator.Itoa(i) + "]", Message: "must be a valid UUID"})
		}
	}
	if validator.IsEmpty(r.DueDate) {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.DueDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchMarkPaidRequest struct {
	PaymentIDs []string `json:"payment_ids"`
	ProofURL   *string  `json:"proof_url,omitempty"`
}

func (r *BatchMarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.PaymentIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "payment_ids", Message: "at least one payment is required"})
	}
	for i, id := range r.PaymentIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{Field: "payment_ids[" + validator.Itoa(i) + "]", Message: "must be a valid UUID"})
		}
	}
	if r.ProofURL != nil && !validator.IsValidURL(*r.ProofURL) {
		errs = append(errs, validator.ValidationError{Field: "proof_url", Message: "must be a valid URL"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PaymentFilter narrows a scoped payment listing.
type PaymentFilter struct {
	Status     *Status
	EmployeeID *string
	PartnerID  *string
	StartDate  *time.Time
	EndDate    *time.Time
	Month      *int
	Year       *int
	Page       int
	Limit      int
}

type PaymentResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       *string         `json:"employee_name,omitempty"`
	EmployeeUniqueCode *string         `json:"employee_unique_code,omitempty"`
	PartnerCompanyName *string         `json:"partner_company_name,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	DueDate            string          `json:"due_date"`
	PaidDate           *string         `json:"paid_date,omitempty"`
	Status             string          `json:"status"`
	PaidBy             *string         `json:"paid_by,omitempty"`
	PaidByEmail        *string         `json:"paid_by_email,omitempty"`
	ProofURL           *string         `json:"proof_url,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	CreatedAt          string          `json:"created_at"`
}

// DueDateBucket powers the calendar view: one row per distinct due date.
// PendingCount > 0 renders the "has pending" indicator, otherwise the date is
// fully settled.
type DueDateBucket struct {
	Date         string          `json:"date"`
	Count        int64           `json:"count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PendingCount int64           `json:"pending_count"`
}

type ListPaymentsResponse struct {
	Payments       []PaymentResponse `json:"payments"`
	PaymentsByDate []DueDateBucket   `json:"payments_by_date"`
}

type BatchCreatePaymentsResponse struct {
	CreatedCount int               `json:"created_count"`
	Payments     []PaymentResponse `json:"payments"`
}

type BatchMarkPaidResponse struct {
	ModifiedCount int64 `json:"modified_count"`
}
