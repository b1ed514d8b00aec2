package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/auth"
	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/domain/level"
	"github.com/crewpay/crewpay-backend-go/internal/domain/user"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/crewpay/crewpay-backend-go/internal/repository/postgresql"
	"github.com/crewpay/crewpay-backend-go/internal/service/scope"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	levelRepo    level.LevelRepository
	scopes       *scope.Resolver
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	levelRepo level.LevelRepository,
	scopes *scope.Resolver,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		levelRepo:    levelRepo,
		scopes:       scopes,
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	provided := employee.ProviderResponse{Kind: string(emp.ProvidedBy.Kind)}
	if emp.ProvidedBy.Kind == employee.ProviderPartner {
		provided.PartnerID = emp.ProvidedBy.PartnerID
		provided.CompanyName = emp.PartnerCompanyName
	}

	return employee.EmployeeResponse{
		ID:             emp.ID,
		UniqueCode:     emp.UniqueCode,
		FullName:       emp.FullName,
		NID:            emp.NID,
		Salary:         emp.Salary,
		LevelID:        emp.LevelID,
		LevelName:      emp.LevelName,
		PhotoURL:       emp.PhotoURL,
		ProvidedBy:     provided,
		ApprovalStatus: string(emp.ApprovalStatus),
		CreatedAt:      emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      emp.UpdatedAt.Format(time.RFC3339),
	}
}

// resolveSalary verifies the level reference and falls back to the level's
// base salary when the request leaves the salary unset.
func (s *EmployeeServiceImpl) resolveSalary(ctx context.Context, salary decimal.Decimal, levelID *string) (decimal.Decimal, error) {
	if levelID == nil {
		return salary, nil
	}
	lvl, err := s.levelRepo.GetByID(ctx, *levelID)
	if err != nil {
		return decimal.Zero, err
	}
	if salary.IsPositive() {
		return salary, nil
	}
	return lvl.BaseSalary, nil
}

// providerFor derives the provider branch and initial approval status from
// the caller's role. House employees need no approval step; partner employees
// start pending.
func (s *EmployeeServiceImpl) providerFor(ctx context.Context, p auth.Principal) (employee.Provider, employee.ApprovalStatus, error) {
	switch p.Role {
	case user.RoleAdmin, user.RoleStaff:
		return employee.HouseProvider(), employee.ApprovalStatusApproved, nil
	case user.RolePartner:
		pt, err := s.scopes.ResolvePartner(ctx, p)
		if err != nil {
			return employee.Provider{}, "", err
		}
		return employee.PartnerProvider(pt.ID), employee.ApprovalStatusPending, nil
	}
	return employee.Provider{}, "", user.ErrRoleNotAllowed
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	provider, status, err := s.providerFor(ctx, principal)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	salary, err := s.resolveSalary(ctx, req.Salary, req.LevelID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		UniqueCode:     req.UniqueCode,
		FullName:       req.FullName,
		NID:            req.NID,
		Salary:         salary,
		LevelID:        req.LevelID,
		PhotoURL:       req.PhotoURL,
		ProvidedBy:     provider,
		ApprovalStatus: status,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "unique_code", created.UniqueCode, "provider", provider.Kind)
	return mapEmployeeToResponse(created), nil
}

func (s *EmployeeServiceImpl) BatchCreateEmployees(ctx context.Context, req employee.BatchCreateEmployeesRequest) (employee.BatchCreateEmployeesResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return employee.BatchCreateEmployeesResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.BatchCreateEmployeesResponse{}, err
	}
	if len(req.Employees) == 0 {
		return employee.BatchCreateEmployeesResponse{}, employee.ErrNoEmployeesInBatch
	}

	provider, status, err := s.providerFor(ctx, principal)
	if err != nil {
		return employee.BatchCreateEmployeesResponse{}, err
	}

	codes := make([]string, 0, len(req.Employees))
	seen := make(map[string]bool, len(req.Employees))
	for _, e := range req.Employees {
		if seen[e.UniqueCode] {
			return employee.BatchCreateEmployeesResponse{}, employee.ErrBatchCodesExist
		}
		seen[e.UniqueCode] = true
		codes = append(codes, e.UniqueCode)
	}

	var created []employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		taken, err := s.employeeRepo.ExistingCodes(txCtx, codes)
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return employee.ErrBatchCodesExist
		}

		emps := make([]employee.Employee, 0, len(req.Employees))
		for _, e := range req.Employees {
			salary, err := s.resolveSalary(txCtx, e.Salary, e.LevelID)
			if err != nil {
				return err
			}
			emps = append(emps, employee.Employee{
				UniqueCode:     e.UniqueCode,
				FullName:       e.FullName,
				NID:            e.NID,
				Salary:         salary,
				LevelID:        e.LevelID,
				PhotoURL:       e.PhotoURL,
				ProvidedBy:     provider,
				ApprovalStatus: status,
			})
		}

		created, err = s.employeeRepo.CreateBatch(txCtx, emps)
		return err
	})
	if err != nil {
		return employee.BatchCreateEmployeesResponse{}, err
	}

	resp := employee.BatchCreateEmployeesResponse{CreatedCount: len(created)}
	for _, emp := range created {
		resp.Employees = append(resp.Employees, mapEmployeeToResponse(emp))
	}

	slog.Info("employee batch created", "count", len(created), "provider", provider.Kind)
	return resp, nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrInvalidEmployeeID
	}

	sc, err := s.scopes.Resolve(ctx, principal)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, sc)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	sc, err := s.scopes.Resolve(ctx, principal)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	emps, total, err := s.employeeRepo.List(ctx, sc, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	resp := employee.ListEmployeesResponse{
		Employees: make([]employee.EmployeeResponse, 0, len(emps)),
		Total:     total,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}
	for _, emp := range emps {
		resp.Employees = append(resp.Employees, mapEmployeeToResponse(emp))
	}

	return resp, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !validator.IsValidUUID(req.ID) {
		return employee.EmployeeResponse{}, employee.ErrInvalidEmployeeID
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	sc, err := s.scopes.Resolve(ctx, principal)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Scope check before the write; the update itself is by ID.
	if _, err := s.employeeRepo.GetByID(ctx, req.ID, sc); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.LevelID != nil {
		if _, err := s.levelRepo.GetByID(ctx, *req.LevelID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID, sc)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

func (s *EmployeeServiceImpl) ApproveEmployee(ctx context.Context, id string, approved bool) (employee.EmployeeResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if principal.Role != user.RoleAdmin {
		return employee.EmployeeResponse{}, user.ErrAdminPrivilegeRequired
	}
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrInvalidEmployeeID
	}

	status := employee.ApprovalStatusApproved
	if !approved {
		status = employee.ApprovalStatusPending
	}

	emp, err := s.employeeRepo.SetApprovalStatus(ctx, id, status)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee approval resolved", "employee_id", emp.ID, "status", status)
	return mapEmployeeToResponse(emp), nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return err
	}
	if principal.Role != user.RoleAdmin {
		return user.ErrAdminPrivilegeRequired
	}
	if !validator.IsValidUUID(id) {
		return employee.ErrInvalidEmployeeID
	}

	return s.employeeRepo.Delete(ctx, id)
}
