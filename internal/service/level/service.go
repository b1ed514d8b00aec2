package level

import (
	"context"
	"log/slog"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/auth"
	"github.com/crewpay/crewpay-backend-go/internal/domain/level"
	"github.com/crewpay/crewpay-backend-go/internal/domain/user"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
)

type LevelServiceImpl struct {
	levelRepo level.LevelRepository
}

func NewLevelService(levelRepo level.LevelRepository) level.LevelService {
	return &LevelServiceImpl{levelRepo: levelRepo}
}

func mapLevelToResponse(lvl level.Level) level.LevelResponse {
	return level.LevelResponse{
		ID:         lvl.ID,
		LevelName:  lvl.LevelName,
		BaseSalary: lvl.BaseSalary,
		CreatedAt:  lvl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  lvl.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *LevelServiceImpl) CreateLevel(ctx context.Context, req level.CreateLevelRequest) (level.LevelResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return level.LevelResponse{}, err
	}
	if principal.Role != user.RoleAdmin {
		return level.LevelResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return level.LevelResponse{}, err
	}

	created, err := s.levelRepo.Create(ctx, level.Level{
		LevelName:  req.LevelName,
		BaseSalary: req.BaseSalary,
		CreatedBy:  &principal.UserID,
	})
	if err != nil {
		return level.LevelResponse{}, err
	}

	slog.Info("level created", "level_id", created.ID, "level_name", created.LevelName)
	return mapLevelToResponse(created), nil
}

func (s *LevelServiceImpl) GetLevel(ctx context.Context, id string) (level.LevelResponse, error) {
	if _, err := auth.PrincipalFromContext(ctx); err != nil {
		return level.LevelResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return level.LevelResponse{}, level.ErrLevelNotFound
	}

	lvl, err := s.levelRepo.GetByID(ctx, id)
	if err != nil {
		return level.LevelResponse{}, err
	}

	return mapLevelToResponse(lvl), nil
}

func (s *LevelServiceImpl) ListLevels(ctx context.Context) ([]level.LevelResponse, error) {
	if _, err := auth.PrincipalFromContext(ctx); err != nil {
		return nil, err
	}

	levels, err := s.levelRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]level.LevelResponse, 0, len(levels))
	for _, lvl := range levels {
		responses = append(responses, mapLevelToResponse(lvl))
	}

	return responses, nil
}

func (s *LevelServiceImpl) UpdateLevel(ctx context.Context, req level.UpdateLevelRequest) (level.LevelResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return level.LevelResponse{}, err
	}
	if principal.Role != user.RoleAdmin {
		return level.LevelResponse{}, user.ErrAdminPrivilegeRequired
	}

	if !validator.IsValidUUID(req.ID) {
		return level.LevelResponse{}, level.ErrInvalidLevelID
	}
	if err := req.Validate(); err != nil {
		return level.LevelResponse{}, err
	}

	if err := s.levelRepo.Update(ctx, req); err != nil {
		return level.LevelResponse{}, err
	}

	lvl, err := s.levelRepo.GetByID(ctx, req.ID)
	if err != nil {
		return level.LevelResponse{}, err
	}

	slog.Info("level updated", "level_id", lvl.ID)
	return mapLevelToResponse(lvl), nil
}

func (s *LevelServiceImpl) DeleteLevel(ctx context.Context, id string) error {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return err
	}
	if principal.Role != user.RoleAdmin {
		return user.ErrAdminPrivilegeRequired
	}

	if !validator.IsValidUUID(id) {
		return level.ErrInvalidLevelID
	}

	if err := s.levelRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("level deleted", "level_id", id)
	return nil
}
