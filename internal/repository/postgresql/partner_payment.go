package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/crewpay/crewpay-backend-go/internal/domain/partnerpayment"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const partnerPaymentColumns = `
	pp.id, pp.partner_id, pp.amount, pp.due_date, pp.paid_date, pp.status,
	pp.proof_url, pp.created_at, pp.updated_at,
	pt.company_name, pt.contact_person, pt.contact_phone
`

const partnerPaymentJoins = `
	FROM partner_payments pp
	JOIN partners pt ON pp.partner_id = pt.id
`

type partnerPaymentRepository struct {
	db *database.DB
}

func NewPartnerPaymentRepository(db *database.DB) partnerpayment.PartnerPaymentRepository {
	return &partnerPaymentRepository{db: db}
}

func scanPartnerPayment(row pgx.Row) (partnerpayment.PartnerPayment, error) {
	var p partnerpayment.PartnerPayment
	err := row.Scan(
		&p.ID, &p.PartnerID, &p.Amount, &p.DueDate, &p.PaidDate, &p.Status,
		&p.ProofURL, &p.CreatedAt, &p.UpdatedAt,
		&p.PartnerCompanyName, &p.ContactPerson, &p.ContactPhone,
	)
	return p, err
}

func (r *partnerPaymentRepository) Create(ctx context.Context, p partnerpayment.PartnerPayment) (partnerpayment.PartnerPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO partner_payments (partner_id, amount, due_date, status)
			VALUES ($1, $2, $3, 'pending')
			RETURNING *
		)
		SELECT pp.id, pp.partner_id, pp.amount, pp.due_date, pp.paid_date, pp.status,
			pp.proof_url, pp.created_at, pp.updated_at,
			pt.company_name, pt.contact_person, pt.contact_phone
		FROM inserted pp
		JOIN partners pt ON pp.partner_id = pt.id
	`

	created, err := scanPartnerPayment(q.QueryRow(ctx, query, p.PartnerID, p.Amount, p.DueDate))
	if err != nil {
		return partnerpayment.PartnerPayment{}, fmt.Errorf("failed to create partner payment: %w", err)
	}

	return created, nil
}

func (r *partnerPaymentRepository) GetByID(ctx context.Context, id string, ownPartnerID *string) (partnerpayment.PartnerPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + partnerPaymentColumns + partnerPaymentJoins + ` WHERE pp.id = $1`
	args := []interface{}{id}
	if ownPartnerID != nil {
		query += ` AND pp.partner_id = $2`
		args = append(args, *ownPartnerID)
	}

	p, err := scanPartnerPayment(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return partnerpayment.PartnerPayment{}, partnerpayment.ErrPartnerPaymentNotFound
		}
		return partnerpayment.PartnerPayment{}, fmt.Errorf("failed to get partner payment: %w", err)
	}

	return p, nil
}

func (r *partnerPaymentRepository) List(ctx context.Context, ownPartnerID *string, filter partnerpayment.PartnerPaymentFilter) ([]partnerpayment.PartnerPayment, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conds []string
	var args []interface{}
	argIdx := 1

	if ownPartnerID != nil {
		conds = append(conds, fmt.Sprintf("pp.partner_id = $%d", argIdx))
		args = append(args, *ownPartnerID)
		argIdx++
	}
	if filter.Status != nil {
		conds = append(conds, fmt.Sprintf("pp.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := `SELECT COUNT(*)` + partnerPaymentJoins + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count partner payments: %w", err)
	}

	query := `SELECT ` + partnerPaymentColumns + partnerPaymentJoins + where +
		fmt.Sprintf(` ORDER BY pp.due_date DESC, pp.created_at DESC LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list partner payments: %w", err)
	}
	defer rows.Close()

	var payments []partnerpayment.PartnerPayment
	for rows.Next() {
		p, err := scanPartnerPayment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan partner payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, total, nil
}

func (r *partnerPaymentRepository) Update(ctx context.Context, req partnerpayment.UpdatePartnerPaymentRequest) error {
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

	query := fmt.Sprintf(`
		UPDATE partner_payments
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return partnerpayment.ErrPartnerPaymentNotFound
		}
		return fmt.Errorf("failed to update partner payment: %w", err)
	}

	return nil
}

func (r *partnerPaymentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM partner_payments WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return partnerpayment.ErrPartnerPaymentNotFound
		}
		return fmt.Errorf("failed to delete partner payment: %w", err)
	}

	return nil
}

func (r *partnerPaymentRepository) MarkPaid(ctx context.Context, id string, ownPartnerID *string, fromStatuses []partnerpayment.Status, target partnerpayment.Status, proofURL *string) (partnerpayment.PartnerPayment, error) {
	q := GetQuerier(ctx, r.db)

	from := make([]string, len(fromStatuses))
	for i, s := range fromStatuses {
		from[i] = string(s)
	}

	args := []interface{}{id, target, proofURL, from}
	ownCond := ""
	if ownPartnerID != nil {
		ownCond = " AND partner_id = $5"
		args = append(args, *ownPartnerID)
	}

	query := `
		WITH updated AS (
			UPDATE partner_payments
			SET status = $2, paid_date = NOW(),
				proof_url = COALESCE($3, proof_url),
				updated_at = NOW()
			WHERE id = $1 AND status = ANY($4)` + ownCond + `
			RETURNING *
		)
		SELECT pp.id, pp.partner_id, pp.amount, pp.due_date, pp.paid_date, pp.status,
			pp.proof_url, pp.created_at, pp.updated_at,
			pt.company_name, pt.contact_person, pt.contact_phone
		FROM updated pp
		JOIN partners pt ON pp.partner_id = pt.id
	`

	p, err := scanPartnerPayment(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return partnerpayment.PartnerPayment{}, r.classifyMissedTransition(ctx, id, ownPartnerID)
		}
		return partnerpayment.PartnerPayment{}, fmt.Errorf("failed to mark partner payment paid: %w", err)
	}

	return p, nil
}

func (r *partnerPaymentRepository) classifyMissedTransition(ctx context.Context, id string, ownPartnerID *string) error {
	q := GetQuerier(ctx, r.db)

	var partnerID string
	var status partnerpayment.Status
	err := q.QueryRow(ctx, `SELECT partner_id, status FROM partner_payments WHERE id = $1`, id).Scan(&partnerID, &status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return partnerpayment.ErrPartnerPaymentNotFound
		}
		return fmt.Errorf("failed to check partner payment status: %w", err)
	}

	if ownPartnerID != nil && partnerID != *ownPartnerID {
		return partnerpayment.ErrNotOwnPayment
	}
	if status == partnerpayment.StatusCompleted {
		return partnerpayment.ErrAlreadyCompleted
	}
	return partnerpayment.ErrNotPending
}
