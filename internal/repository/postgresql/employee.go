package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.unique_code, e.full_name, e.nid, e.salary, e.level_id, e.photo_url,
	e.provided_by_kind, e.provided_by_partner_id, e.approval_status,
	e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var kind string
	var partnerID *string
	err := row.Scan(
		&e.ID, &e.UniqueCode, &e.FullName, &e.NID, &e.Salary, &e.LevelID, &e.PhotoURL,
		&kind, &partnerID, &e.ApprovalStatus,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	e.ProvidedBy = employee.Provider{Kind: employee.ProviderKind(kind), PartnerID: partnerID}
	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (unique_code, full_name, nid, salary, level_id, photo_url,
			provided_by_kind, provided_by_partner_id, approval_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumnsFlat()

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.UniqueCode, emp.FullName, emp.NID, emp.Salary, emp.LevelID, emp.PhotoURL,
		string(emp.ProvidedBy.Kind), emp.ProvidedBy.PartnerID, emp.ApprovalStatus,
	))
	if err != nil {
		if isUniqueViolation(err, "employees_unique_code_key") {
			return employee.Employee{}, employee.ErrUniqueCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) CreateBatch(ctx context.Context, emps []employee.Employee) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	valueParts := make([]string, 0, len(emps))
	args := make([]interface{}, 0, len(emps)*9)
	argIdx := 1
	for _, emp := range emps {
		valueParts = append(valueParts, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			argIdx, argIdx+1, argIdx+2, argIdx+3, argIdx+4, argIdx+5, argIdx+6, argIdx+7, argIdx+8))
		args = append(args,
			emp.UniqueCode, emp.FullName, emp.NID, emp.Salary, emp.LevelID, emp.PhotoURL,
			string(emp.ProvidedBy.Kind), emp.ProvidedBy.PartnerID, emp.ApprovalStatus,
		)
		argIdx += 9
	}

	query := `
		INSERT INTO employees (unique_code, full_name, nid, salary, level_id, photo_url,
			provided_by_kind, provided_by_partner_id, approval_status)
		VALUES ` + strings.Join(valueParts, ", ") + `
		RETURNING ` + employeeColumnsFlat()

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, "employees_unique_code_key") {
			return nil, employee.ErrUniqueCodeExists
		}
		return nil, fmt.Errorf("failed to batch create employees: %w", err)
	}
	defer rows.Close()

	var created []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		created = append(created, e)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string, scope employee.Scope) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, p.company_name, l.level_name
		FROM employees e
		LEFT JOIN partners p ON e.provided_by_partner_id = p.id
		LEFT JOIN levels l ON e.level_id = l.id
		WHERE e.id = $1
	`
	args := []interface{}{id}
	argIdx := 2

	var cond string
	cond, args, _ = scopeCondition(scope, "e", args, argIdx)
	query += cond

	var e employee.Employee
	var kind string
	var partnerID *string
	err := q.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.UniqueCode, &e.FullName, &e.NID, &e.Salary, &e.LevelID, &e.PhotoURL,
		&kind, &partnerID, &e.ApprovalStatus,
		&e.CreatedAt, &e.UpdatedAt, &e.PartnerCompanyName, &e.LevelName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	e.ProvidedBy = employee.Provider{Kind: employee.ProviderKind(kind), PartnerID: partnerID}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, scope employee.Scope, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM employees e
		LEFT JOIN partners p ON e.provided_by_partner_id = p.id
		LEFT JOIN levels l ON e.level_id = l.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	var cond string
	cond, args, argIdx = scopeCondition(scope, "e", args, argIdx)
	baseQuery += cond

	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND e.approval_status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Provider != nil {
		baseQuery += fmt.Sprintf(" AND e.provided_by_kind = $%d", argIdx)
		args = append(args, string(*filter.Provider))
		argIdx++
	}
	if filter.PartnerID != nil {
		baseQuery += fmt.Sprintf(" AND e.provided_by_partner_id = $%d", argIdx)
		args = append(args, *filter.PartnerID)
		argIdx++
	}
	if filter.Search != "" {
		baseQuery += fmt.Sprintf(" AND (e.full_name ILIKE $%d OR e.unique_code ILIKE $%d OR e.nid ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.MinSalary != nil {
		baseQuery += fmt.Sprintf(" AND e.salary >= $%d", argIdx)
		args = append(args, *filter.MinSalary)
		argIdx++
	}
	if filter.MaxSalary != nil {
		baseQuery += fmt.Sprintf(" AND e.salary <= $%d", argIdx)
		args = append(args, *filter.MaxSalary)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s, p.company_name, l.level_name
		%s
		ORDER BY e.created_at DESC
		LIMIT $%d OFFSET $%d
	`, employeeColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		var kind string
		var partnerID *string
		if err := rows.Scan(
			&e.ID, &e.UniqueCode, &e.FullName, &e.NID, &e.Salary, &e.LevelID, &e.PhotoURL,
			&kind, &partnerID, &e.ApprovalStatus,
			&e.CreatedAt, &e.UpdatedAt, &e.PartnerCompanyName, &e.LevelName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		e.ProvidedBy = employee.Provider{Kind: employee.ProviderKind(kind), PartnerID: partnerID}
		employees = append(employees, e)
	}

	return employees, totalCount, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.FullName != nil {
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.NID != nil {
		setParts = append(setParts, fmt.Sprintf("nid = $%d", argIdx))
		args = append(args, *req.NID)
		argIdx++
	}
	if req.Salary != nil {
		setParts = append(setParts, fmt.Sprintf("salary = $%d", argIdx))
		args = append(args, *req.Salary)
		argIdx++
	}
	if req.LevelID != nil {
		setParts = append(setParts, fmt.Sprintf("level_id = $%d", argIdx))
		args = append(args, *req.LevelID)
		argIdx++
	}
	if req.PhotoURL != nil {
		setParts = append(setParts, fmt.Sprintf("photo_url = $%d", argIdx))
		args = append(args, *req.PhotoURL)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) SetApprovalStatus(ctx context.Context, id string, status employee.ApprovalStatus) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	// House employees are approved at creation and never revisit approval.
	query := `
		UPDATE employees e
		SET approval_status = $2, updated_at = NOW()
		WHERE e.id = $1 AND e.provided_by_kind = 'partner'
		RETURNING ` + employeeColumnsFlat()

	updated, err := scanEmployee(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			// Distinguish a missing record from a house employee.
			var kind string
			checkErr := q.QueryRow(ctx, `SELECT provided_by_kind FROM employees WHERE id = $1`, id).Scan(&kind)
			if checkErr == pgx.ErrNoRows {
				return employee.Employee{}, employee.ErrEmployeeNotFound
			}
			if checkErr == nil && kind == string(employee.ProviderHouse) {
				return employee.Employee{}, employee.ErrCannotApproveHouse
			}
			return employee.Employee{}, fmt.Errorf("failed to check employee: %w", checkErr)
		}
		return employee.Employee{}, fmt.Errorf("failed to set approval status: %w", err)
	}

	return updated, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		if isForeignKeyViolation(err) {
			return employee.ErrEmployeeHasPayments
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) ExistingCodes(ctx context.Context, codes []string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT unique_code FROM employees WHERE unique_code = ANY($1)`, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing codes: %w", err)
	}
	defer rows.Close()

	var existing []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan unique code: %w", err)
		}
		existing = append(existing, code)
	}

	return existing, nil
}

// employeeColumnsFlat is employeeColumns without the table alias, for
// INSERT/UPDATE ... RETURNING clauses.
func employeeColumnsFlat() string {
	return strings.ReplaceAll(employeeColumns, "e.", "")
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && (constraint == "" || pgErr.ConstraintName == constraint)
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
