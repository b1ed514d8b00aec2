package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payment"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const paymentColumns = `
	pm.id, pm.employee_id, pm.amount, pm.due_date, pm.paid_date, pm.status,
	pm.paid_by, pm.proof_url, pm.notes, pm.created_at, pm.updated_at,
	e.full_name, e.unique_code, pt.company_name, u.email
`

const paymentJoins = `
	FROM payments pm
	JOIN employees e ON pm.employee_id = e.id
	LEFT JOIN partners pt ON e.provided_by_partner_id = pt.id
	LEFT JOIN users u ON pm.paid_by = u.id
`

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{db: db}
}

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var p payment.Payment
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Amount, &p.DueDate, &p.PaidDate, &p.Status,
		&p.PaidBy, &p.ProofURL, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeUniqueCode, &p.PartnerCompanyName, &p.PaidByEmail,
	)
	return p, err
}

func (r *paymentRepository) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO payments (employee_id, amount, due_date, status, notes)
			VALUES ($1, $2, $3, 'pending', $4)
			RETURNING *
		)
		SELECT pm.id, pm.employee_id, pm.amount, pm.due_date, pm.paid_date, pm.status,
			pm.paid_by, pm.proof_url, pm.notes, pm.created_at, pm.updated_at,
			e.full_name, e.unique_code, pt.company_name, NULL::text
		FROM inserted pm
		JOIN employees e ON pm.employee_id = e.id
		LEFT JOIN partners pt ON e.provided_by_partner_id = pt.id
	`

	created, err := scanPayment(q.QueryRow(ctx, query, p.EmployeeID, p.Amount, p.DueDate, p.Notes))
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string, scope employee.Scope) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	args := []interface{}{id}
	scopeCond, args, _ := scopeCondition(scope, "e", args, 2)

	query := `SELECT ` + paymentColumns + paymentJoins + ` WHERE pm.id = $1` + scopeCond

	p, err := scanPayment(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}

	return p, nil
}

// paymentFilterConditions renders the optional filters shared by List and
// ListDueDateBuckets. Scope is rendered first so it can never be widened by a
// client filter.
func paymentFilterConditions(scope employee.Scope, filter payment.PaymentFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	argIdx := 1

	scopeCond, args, argIdx := scopeCondition(scope, "e", args, argIdx)
	if scopeCond != "" {
		conds = append(conds, strings.TrimPrefix(scopeCond, " AND "))
	}

	if filter.Status != nil {
		conds = append(conds, fmt.Sprintf("pm.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		conds = append(conds, fmt.Sprintf("pm.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.PartnerID != nil {
		conds = append(conds, fmt.Sprintf("e.provided_by_partner_id = $%d", argIdx))
		args = append(args, *filter.PartnerID)
		argIdx++
	}
	if filter.StartDate != nil {
		conds = append(conds, fmt.Sprintf("pm.due_date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conds = append(conds, fmt.Sprintf("pm.due_date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Month != nil && filter.Year != nil {
		conds = append(conds, fmt.Sprintf("EXTRACT(MONTH FROM pm.due_date) = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
		conds = append(conds, fmt.Sprintf("EXTRACT(YEAR FROM pm.due_date) = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	return where, args
}

func (r *paymentRepository) List(ctx context.Context, scope employee.Scope, filter payment.PaymentFilter) ([]payment.Payment, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args := paymentFilterConditions(scope, filter)

	countQuery := `SELECT COUNT(*)` + paymentJoins + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	query := `SELECT ` + paymentColumns + paymentJoins + where +
		fmt.Sprintf(` ORDER BY pm.due_date DESC, pm.created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, total, nil
}

func (r *paymentRepository) ListDueDateBuckets(ctx context.Context, scope employee.Scope, filter payment.PaymentFilter) ([]payment.DueDateBucket, error) {
	q := GetQuerier(ctx, r.db)

	where, args := paymentFilterConditions(scope, filter)

	query := `
		SELECT pm.due_date, COUNT(*), COALESCE(SUM(pm.amount), 0),
			COUNT(*) FILTER (WHERE pm.status = 'pending')
	` + paymentJoins + where + `
		GROUP BY pm.due_date
		ORDER BY pm.due_date
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list due date buckets: %w", err)
	}
	defer rows.Close()

	var buckets []payment.DueDateBucket
	for rows.Next() {
		var b payment.DueDateBucket
		var date time.Time
		if err := rows.Scan(&date, &b.Count, &b.TotalAmount, &b.PendingCount); err != nil {
			return nil, fmt.Errorf("failed to scan due date bucket: %w", err)
		}
		b.Date = date.Format("2006-01-02")
		buckets = append(buckets, b)
	}

	return buckets, nil
}

func (r *paymentRepository) Update(ctx context.Context, req payment.UpdatePaymentRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("amount = $%d", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.DueDate != nil {
		setParts = append(setParts, fmt.Sprintf("due_date = $%d", argIdx))
		args = append(args, *req.DueDate)
		argIdx++
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", argIdx))
		args = append(args, *req.Notes)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE payments
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to update payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payments WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) MarkPaid(ctx context.Context, id string, scope employee.Scope, target payment.Status, paidBy string, proofURL, notes *string) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	args := []interface{}{id, target, paidBy, proofURL, notes}
	scopeCond, args, _ := scopeCondition(scope, "e", args, 6)

	// Conditional update: the pending requirement lives in the WHERE clause so
	// two concurrent mark-paid calls cannot both succeed.
	query := `
		WITH updated AS (
			UPDATE payments
			SET status = $2, paid_date = NOW(), paid_by = $3,
				proof_url = COALESCE($4, proof_url),
				notes = COALESCE($5, notes),
				updated_at = NOW()
			WHERE id = $1 AND status = 'pending'
				AND employee_id IN (
					SELECT e.id FROM employees e WHERE TRUE` + scopeCond + `
				)
			RETURNING *
		)
		SELECT pm.id, pm.employee_id, pm.amount, pm.due_date, pm.paid_date, pm.status,
			pm.paid_by, pm.proof_url, pm.notes, pm.created_at, pm.updated_at,
			e.full_name, e.unique_code, pt.company_name, u.email
		FROM updated pm
		JOIN employees e ON pm.employee_id = e.id
		LEFT JOIN partners pt ON e.provided_by_partner_id = pt.id
		LEFT JOIN users u ON pm.paid_by = u.id
	`

	p, err := scanPayment(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.Payment{}, r.classifyMissedTransition(ctx, id, scope, payment.StatusPending)
		}
		return payment.Payment{}, fmt.Errorf("failed to mark payment paid: %w", err)
	}

	return p, nil
}

func (r *paymentRepository) SetApprovalOutcome(ctx context.Context, id string, target payment.Status) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	// Rejection only reverts the status; the claim fields stay as evidence
	// of who marked the payment and when.
	query := `
		WITH updated AS (
			UPDATE payments
			SET status = $2,
				updated_at = NOW()
			WHERE id = $1 AND status = 'approved'
			RETURNING *
		)
		SELECT pm.id, pm.employee_id, pm.amount, pm.due_date, pm.paid_date, pm.status,
			pm.paid_by, pm.proof_url, pm.notes, pm.created_at, pm.updated_at,
			e.full_name, e.unique_code, pt.company_name, u.email
		FROM updated pm
		JOIN employees e ON pm.employee_id = e.id
		LEFT JOIN partners pt ON e.provided_by_partner_id = pt.id
		LEFT JOIN users u ON pm.paid_by = u.id
	`

	p, err := scanPayment(q.QueryRow(ctx, query, id, target))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.Payment{}, r.classifyMissedTransition(ctx, id, employee.ScopeAll(), payment.StatusApproved)
		}
		return payment.Payment{}, fmt.Errorf("failed to set approval outcome: %w", err)
	}

	return p, nil
}

// classifyMissedTransition re-reads a payment whose conditional update matched
// no rows and maps the miss to the right domain error: absent, out of scope,
// or present in the wrong status.
func (r *paymentRepository) classifyMissedTransition(ctx context.Context, id string, scope employee.Scope, required payment.Status) error {
	q := GetQuerier(ctx, r.db)

	var status payment.Status
	err := q.QueryRow(ctx, `SELECT status FROM payments WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to check payment status: %w", err)
	}

	if !scope.Unrestricted() {
		args := []interface{}{id}
		scopeCond, args, _ := scopeCondition(scope, "e", args, 2)
		var inScope bool
		err := q.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM payments pm
				JOIN employees e ON pm.employee_id = e.id
				WHERE pm.id = $1`+scopeCond+`
			)
		`, args...).Scan(&inScope)
		if err != nil {
			return fmt.Errorf("failed to check payment scope: %w", err)
		}
		if !inScope {
			return payment.ErrOutsideScope
		}
	}

	if required == payment.StatusApproved {
		return payment.ErrNotApproved
	}
	return payment.ErrNotPending
}

func (r *paymentRepository) CreateForEmployees(ctx context.Context, employeeIDs []string, dueDate time.Time, notes *string) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	// Amount is snapshotted from the employee's current salary inside the
	// insert, so there is no read-then-write window.
	query := `
		WITH inserted AS (
			INSERT INTO payments (employee_id, amount, due_date, status, notes)
			SELECT e.id, e.salary, $2, 'pending', $3
			FROM employees e
			WHERE e.id = ANY($1) AND e.approval_status = 'approved'
			RETURNING *
		)
		SELECT pm.id, pm.employee_id, pm.amount, pm.due_date, pm.paid_date, pm.status,
			pm.paid_by, pm.proof_url, pm.notes, pm.created_at, pm.updated_at,
			e.full_name, e.unique_code, pt.company_name, NULL::text
		FROM inserted pm
		JOIN employees e ON pm.employee_id = e.id
		LEFT JOIN partners pt ON e.provided_by_partner_id = pt.id
		ORDER BY e.unique_code
	`

	rows, err := q.Query(ctx, query, employeeIDs, dueDate, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create payments batch: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, nil
}

func (r *paymentRepository) BulkMarkPaid(ctx context.Context, ids []string, scope employee.Scope, target payment.Status, paidBy string, proofURL *string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	args := []interface{}{ids, target, paidBy, proofURL}
	scopeCond, args, _ := scopeCondition(scope, "e", args, 5)

	// Non-pending and out-of-scope IDs are silently excluded; the caller
	// reports how many rows actually changed.
	query := `
		UPDATE payments
		SET status = $2, paid_date = NOW(), paid_by = $3,
			proof_url = COALESCE($4, proof_url),
			updated_at = NOW()
		WHERE id = ANY($1) AND status = 'pending'
			AND employee_id IN (
				SELECT e.id FROM employees e WHERE TRUE` + scopeCond + `
			)
	`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk mark payments paid: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *paymentRepository) AmountOwedAndPaid(ctx context.Context, scope employee.Scope) (decimal.Decimal, decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var args []interface{}
	scopeCond, args, _ := scopeCondition(scope, "e", args, 1)

	query := `
		SELECT
			COALESCE(SUM(pm.amount) FILTER (WHERE pm.status IN ('pending', 'approved')), 0),
			COALESCE(SUM(pm.amount) FILTER (WHERE pm.status = 'completed'), 0)
		FROM payments pm
		JOIN employees e ON pm.employee_id = e.id
		WHERE TRUE` + scopeCond

	var owed, paid decimal.Decimal
	if err := q.QueryRow(ctx, query, args...).Scan(&owed, &paid); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum payment amounts: %w", err)
	}

	return owed, paid, nil
}
