package partnerpayment

import (
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePartnerPaymentRequest struct {
	PartnerID string          `json:"partner_id"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   string          `json:"due_date"`
}

func (r *CreatePartnerPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PartnerID) {
		errs = append(errs, validator.ValidationError{Field: "partner_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.PartnerID) {
		errs = append(errs, validator.ValidationError{Field: "partner_id", Message: "must be a valid UUID"})
	}
	if !r.Amount.IsPositive() {
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

type UpdatePartnerPaymentRequest struct {
	ID      string
	Amount  *decimal.Decimal `json:"amount,omitempty"`
	DueDate *string          `json:"due_date,omitempty"`
}

func (r *UpdatePartnerPaymentRequest) Validate() error {
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

type PartnerPaymentFilter struct {
	Status *Status
	Page   int
	Limit  int
}

type PartnerPaymentResponse struct {
	ID                 string          `json:"id"`
	PartnerID          string          `json:"partner_id"`
	PartnerCompanyName *string         `json:"partner_company_name,omitempty"`
	ContactPerson      *string         `json:"contact_person,omitempty"`
	ContactPhone       *string         `json:"contact_phone,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	DueDate            string          `json:"due_date"`
	PaidDate           *string         `json:"paid_date,omitempty"`
	Status             string          `json:"status"`
	ProofURL           *string         `json:"proof_url,omitempty"`
	CreatedAt          string          `json:"created_at"`
}
