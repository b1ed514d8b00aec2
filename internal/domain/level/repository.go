package level

import "context"

type LevelRepository interface {
	Create(ctx context.Context, lvl Level) (Level, error)
	GetByID(ctx context.Context, id string) (Level, error)
	// List returns every level ordered by base salary; the registry is small
	// and unpaginated.
	List(ctx context.Context) ([]Level, error)
	Update(ctx context.Context, req UpdateLevelRequest) error
	Delete(ctx context.Context, id string) error
}
