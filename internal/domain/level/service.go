package level

import "context"

// LevelService manages the salary grade registry. Writes are admin only;
// any authenticated role may read the registry.
type LevelService interface {
	CreateLevel(ctx context.Context, req CreateLevelRequest) (LevelResponse, error)
	GetLevel(ctx context.Context, id string) (LevelResponse, error)
	ListLevels(ctx context.Context) ([]LevelResponse, error)
	UpdateLevel(ctx context.Context, req UpdateLevelRequest) (LevelResponse, error)
	DeleteLevel(ctx context.Context, id string) error
}
