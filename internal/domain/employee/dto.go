package employee

import (
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	UniqueCode string          `json:"unique_code"`
	FullName   string          `json:"full_name"`
	NID        string          `json:"nid"`
	Salary     decimal.Decimal `json:"salary"`
	LevelID    *string         `json:"level_id,omitempty"`
	PhotoURL   *string         `json:"photo_url,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UniqueCode) {
		errs = append(errs, validator.ValidationError{Field: "unique_code", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.NID) {
		errs = append(errs, validator.ValidationError{Field: "nid", Message: "is required"})
	} else if !validator.IsValidNID(r.NID) {
		errs = append(errs, validator.ValidationError{Field: "nid", Message: "must be 10, 13 or 17 digits"})
	}
	// A level reference makes the salary optional; it defaults to the level's
	// base salary.
	if r.LevelID != nil {
		if !validator.IsValidUUID(*r.LevelID) {
			errs = append(errs, validator.ValidationError{Field: "level_id", Message: "must be a valid UUID"})
		}
		if r.Salary.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "must not be negative"})
		}
	} else if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be positive"})
	}
	if r.PhotoURL != nil && !validator.IsValidURL(*r.PhotoURL) {
		errs = append(errs, validator.ValidationError{Field: "photo_url", Message: "must be a valid URL"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchCreateEmployeesRequest struct {
	Employees []CreateEmployeeRequest `json:"employees"`
}

func (r *BatchCreateEmployeesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Employees) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employees", Message: "at least one employee is required"})
	}
	for i, emp := range r.Employees {
		if err := emp.Validate(); err != nil {
			if fieldErrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range fieldErrs {
					errs = append(errs, validator.ValidationError{
						Field:   "employees[" + validator.Itoa(i) + "]." + fe.Field,
						Message: fe.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID       string
	FullName *string          `json:"full_name,omitempty"`
	NID      *string          `json:"nid,omitempty"`
	Salary   *decimal.Decimal `json:"salary,omitempty"`
	LevelID  *string          `json:"level_id,omitempty"`
	PhotoURL *string          `json:"photo_url,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.NID != nil && !validator.IsValidNID(*r.NID) {
		errs = append(errs, validator.ValidationError{Field: "nid", Message: "must be 10, 13 or 17 digits"})
	}
	if r.Salary != nil && !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be positive"})
	}
	if r.LevelID != nil && !validator.IsValidUUID(*r.LevelID) {
		errs = append(errs, validator.ValidationError{Field: "level_id", Message: "must be a valid UUID"})
	}
	if r.PhotoURL != nil && !validator.IsValidURL(*r.PhotoURL) {
		errs = append(errs, validator.ValidationError{Field: "photo_url", Message: "must be a valid URL"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeFilter narrows a scoped employee listing. Scope is applied first,
// these filters only ever shrink the result further.
type EmployeeFilter struct {
	Status    *ApprovalStatus
	PartnerID *string // "house" handled separately via ProviderKind
	Provider  *ProviderKind
	Search    string
	MinSalary *decimal.Decimal
	MaxSalary *decimal.Decimal
	Page      int
	Limit     int
}

type ProviderResponse struct {
	Kind        string  `json:"kind"`
	PartnerID   *string `json:"partner_id,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
}

type EmployeeResponse struct {
	ID             string           `json:"id"`
	UniqueCode     string           `json:"unique_code"`
	FullName       string           `json:"full_name"`
	NID            string           `json:"nid"`
	Salary         decimal.Decimal  `json:"salary"`
	LevelID        *string          `json:"level_id,omitempty"`
	LevelName      *string          `json:"level_name,omitempty"`
	PhotoURL       *string          `json:"photo_url,omitempty"`
	ProvidedBy     ProviderResponse `json:"provided_by"`
	ApprovalStatus string           `json:"approval_status"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

type BatchCreateEmployeesResponse struct {
	CreatedCount int                `json:"created_count"`
	Employees    []EmployeeResponse `json:"employees"`
}
