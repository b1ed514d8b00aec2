package partner

import "context"

type PartnerRepository interface {
	Create(ctx context.Context, p Partner) (Partner, error)
	GetByID(ctx context.Context, id string) (Partner, error)
	// GetByUserID resolves the partner record linked to a partner-role
	// principal. Missing row returns ErrPartnerProfileNotFound.
	GetByUserID(ctx context.Context, userID string) (Partner, error)
	List(ctx context.Context) ([]Partner, error)
	Update(ctx context.Context, req UpdatePartnerRequest) error
	Delete(ctx context.Context, id string) error
}
