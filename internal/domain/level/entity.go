package level

import (
	"time"

	"github.com/shopspring/decimal"
)

// Level is a named salary grade. Employees may reference one; its base
// salary is the default when an employee is created without an explicit
// salary.
type Level struct {
	ID         string
	LevelName  string
	BaseSalary decimal.Decimal
	CreatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
