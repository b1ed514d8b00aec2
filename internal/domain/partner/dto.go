package partner

import "github.com/crewpay/crewpay-backend-go/internal/pkg/validator"

type CreatePartnerRequest struct {
	UserID         string  `json:"user_id"`
	CompanyName    string  `json:"company_name"`
	CompanyDetails string  `json:"company_details"`
	ContactPerson  *string `json:"contact_person,omitempty"`
	ContactPhone   *string `json:"contact_phone,omitempty"`
}

func (r *CreatePartnerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "must be a valid UUID"})
	}
	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "company_name", Message: "is required"})
	}
	if validator.IsEmpty(r.CompanyDetails) {
		errs = append(errs, validator.ValidationError{Field: "company_details", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePartnerRequest struct {
	ID             string
	CompanyName    *string `json:"company_name,omitempty"`
	CompanyDetails *string `json:"company_details,omitempty"`
	ContactPerson  *string `json:"contact_person,omitempty"`
	ContactPhone   *string `json:"contact_phone,omitempty"`
}

func (r *UpdatePartnerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyName != nil && validator.IsEmpty(*r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "company_name", Message: "must not be empty"})
	}
	if r.CompanyDetails != nil && validator.IsEmpty(*r.CompanyDetails) {
		errs = append(errs, validator.ValidationError{Field: "company_details", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PartnerResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	UserEmail      *string `json:"user_email,omitempty"`
	CompanyName    string  `json:"company_name"`
	CompanyDetails string  `json:"company_details"`
	ContactPerson  *string `json:"contact_person,omitempty"`
	ContactPhone   *string `json:"contact_phone,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}
