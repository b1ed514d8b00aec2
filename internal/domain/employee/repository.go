package employee

import "context"

// EmployeeRepository defines data access for employees. Every method that
// reads or mutates takes the caller's Scope so record visibility is enforced
// in SQL, not in handlers.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	CreateBatch(ctx context.Context, emps []Employee) ([]Employee, error)
	GetByID(ctx context.Context, id string, scope Scope) (Employee, error)
	List(ctx context.Context, scope Scope, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	SetApprovalStatus(ctx context.Context, id string, status ApprovalStatus) (Employee, error)
	Delete(ctx context.Context, id string) error

	// ExistingCodes returns which of the given unique codes are already taken.
	ExistingCodes(ctx context.Context, codes []string) ([]string, error)
}
