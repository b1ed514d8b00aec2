package level

import (
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLevelRequest struct {
	LevelName  string          `json:"level_name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

func (r *CreateLevelRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LevelName) {
		errs = append(errs, validator.ValidationError{Field: "level_name", Message: "is required"})
	}
	if !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLevelRequest struct {
	ID         string
	LevelName  *string          `json:"level_name,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
}

func (r *UpdateLevelRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LevelName != nil && validator.IsEmpty(*r.LevelName) {
		errs = append(errs, validator.ValidationError{Field: "level_name", Message: "must not be empty"})
	}
	if r.BaseSalary != nil && !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LevelResponse struct {
	ID         string          `json:"id"`
	LevelName  string          `json:"level_name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}
