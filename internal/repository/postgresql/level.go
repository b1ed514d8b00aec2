package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/crewpay/crewpay-backend-go/internal/domain/level"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type levelRepository struct {
	db *database.DB
}

func NewLevelRepository(db *database.DB) level.LevelRepository {
	return &levelRepository{db: db}
}

func (r *levelRepository) Create(ctx context.Context, lvl level.Level) (level.Level, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO levels (level_name, base_salary, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, level_name, base_salary, created_by, created_at, updated_at
	`

	var created level.Level
	err := q.QueryRow(ctx, query, lvl.LevelName, lvl.BaseSalary, lvl.CreatedBy).Scan(
		&created.ID, &created.LevelName, &created.BaseSalary,
		&created.CreatedBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "levels_level_name_key") {
			return level.Level{}, level.ErrLevelNameExists
		}
		return level.Level{}, fmt.Errorf("failed to create level: %w", err)
	}

	return created, nil
}

func (r *levelRepository) GetByID(ctx context.Context, id string) (level.Level, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, level_name, base_salary, created_by, created_at, updated_at
		FROM levels
		WHERE id = $1
	`

	var lvl level.Level
	err := q.QueryRow(ctx, query, id).Scan(
		&lvl.ID, &lvl.LevelName, &lvl.BaseSalary,
		&lvl.CreatedBy, &lvl.CreatedAt, &lvl.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return level.Level{}, level.ErrLevelNotFound
		}
		return level.Level{}, fmt.Errorf("failed to get level: %w", err)
	}

	return lvl, nil
}

func (r *levelRepository) List(ctx context.Context) ([]level.Level, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, level_name, base_salary, created_by, created_at, updated_at
		FROM levels
		ORDER BY base_salary ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	defer rows.Close()

	var levels []level.Level
	for rows.Next() {
		var lvl level.Level
		if err := rows.Scan(
			&lvl.ID, &lvl.LevelName, &lvl.BaseSalary,
			&lvl.CreatedBy, &lvl.CreatedAt, &lvl.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan level: %w", err)
		}
		levels = append(levels, lvl)
	}

	return levels, nil
}

func (r *levelRepository) Update(ctx context.Context, req level.UpdateLevelRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.LevelName != nil {
		setParts = append(setParts, fmt.Sprintf("level_name = $%d", argIdx))
		args = append(args, *req.LevelName)
		argIdx++
	}
	if req.BaseSalary != nil {
		setParts = append(setParts, fmt.Sprintf("base_salary = $%d", argIdx))
		args = append(args, *req.BaseSalary)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE levels
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return level.ErrLevelNotFound
		}
		if isUniqueViolation(err, "levels_level_name_key") {
			return level.ErrLevelNameExists
		}
		return fmt.Errorf("failed to update level: %w", err)
	}

	return nil
}

func (r *levelRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM levels WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return level.ErrLevelNotFound
		}
		if isForeignKeyViolation(err) {
			return level.ErrLevelInUse
		}
		return fmt.Errorf("failed to delete level: %w", err)
	}

	return nil
}
