package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/crewpay/crewpay-backend-go/internal/domain/partner"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type partnerRepository struct {
	db *database.DB
}

func NewPartnerRepository(db *database.DB) partner.PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) Create(ctx context.Context, p partner.Partner) (partner.Partner, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO partners (user_id, company_name, company_details, contact_person, contact_phone, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, company_name, company_details, contact_person, contact_phone,
			created_by, created_at, updated_at
	`

	var created partner.Partner
	err := q.QueryRow(ctx, query,
		p.UserID, p.CompanyName, p.CompanyDetails, p.ContactPerson, p.ContactPhone, p.CreatedBy,
	).Scan(
		&created.ID, &created.UserID, &created.CompanyName, &created.CompanyDetails,
		&created.ContactPerson, &created.ContactPhone, &created.CreatedBy,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "partners_user_id_key") {
			return partner.Partner{}, partner.ErrUserAlreadyLinked
		}
		return partner.Partner{}, fmt.Errorf("failed to create partner: %w", err)
	}

	return created, nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id string) (partner.Partner, error) {
	return r.getOne(ctx, "p.id = $1", id, partner.ErrPartnerNotFound)
}

func (r *partnerRepository) GetByUserID(ctx context.Context, userID string) (partner.Partner, error) {
	return r.getOne(ctx, "p.user_id = $1", userID, partner.ErrPartnerProfileNotFound)
}

func (r *partnerRepository) getOne(ctx context.Context, where string, arg string, notFound error) (partner.Partner, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.user_id, p.company_name, p.company_details, p.contact_person,
			p.contact_phone, p.created_by, p.created_at, p.updated_at, u.email
		FROM partners p
		JOIN users u ON p.user_id = u.id
		WHERE ` + where

	var p partner.Partner
	err := q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.CompanyDetails, &p.ContactPerson,
		&p.ContactPhone, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt, &p.UserEmail,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return partner.Partner{}, notFound
		}
		return partner.Partner{}, fmt.Errorf("failed to get partner: %w", err)
	}

	return p, nil
}

func (r *partnerRepository) List(ctx context.Context) ([]partner.Partner, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.user_id, p.company_name, p.company_details, p.contact_person,
			p.contact_phone, p.created_by, p.created_at, p.updated_at, u.email
		FROM partners p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	defer rows.Close()

	var partners []partner.Partner
	for rows.Next() {
		var p partner.Partner
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.CompanyName, &p.CompanyDetails, &p.ContactPerson,
			&p.ContactPhone, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt, &p.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan partner: %w", err)
		}
		partners = append(partners, p)
	}

	return partners, nil
}

func (r *partnerRepository) Update(ctx context.Context, req partner.UpdatePartnerRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.CompanyName != nil {
		setParts = append(setParts, fmt.Sprintf("company_name = $%d", argIdx))
		args = append(args, *req.CompanyName)
		argIdx++
	}
	if req.CompanyDetails != nil {
		setParts = append(setParts, fmt.Sprintf("company_details = $%d", argIdx))
		args = append(args, *req.CompanyDetails)
		argIdx++
	}
	if req.ContactPerson != nil {
		setParts = append(setParts, fmt.Sprintf("contact_person = $%d", argIdx))
		args = append(args, *req.ContactPerson)
		argIdx++
	}
	if req.ContactPhone != nil {
		setParts = append(setParts, fmt.Sprintf("contact_phone = $%d", argIdx))
		args = append(args, *req.ContactPhone)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE partners
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return partner.ErrPartnerNotFound
		}
		return fmt.Errorf("failed to update partner: %w", err)
	}

	return nil
}

func (r *partnerRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM partners WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return partner.ErrPartnerNotFound
		}
		if isForeignKeyViolation(err) {
			return partner.ErrPartnerHasEmployees
		}
		return fmt.Errorf("failed to delete partner: %w", err)
	}

	return nil
}
