package employee

import "context"

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
}

type EmployeeService interface {
	// CreateEmployee registers one worker. The provider branch follows the
	// caller's role: admin and staff create house employees (approved on
	// creation), partners create their own (pending approval).
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// BatchCreateEmployees registers several workers in one transaction;
	// any duplicate unique code fails the whole batch.
	BatchCreateEmployees(ctx context.Context, req BatchCreateEmployeesRequest) (BatchCreateEmployeesResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// ApproveEmployee resolves a partner-provided employee's approval: eligible
	// for payment scheduling when approved, back to pending when not (admin
	// only). House employees are never subject to this step.
	ApproveEmployee(ctx context.Context, id string, approved bool) (EmployeeResponse, error)

	DeleteEmployee(ctx context.Context, id string) error
}
