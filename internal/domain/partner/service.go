package partner

import "context"

// PartnerService manages the partner registry. All write operations are
// admin only; partners may read their own profile.
type PartnerService interface {
	CreatePartner(ctx context.Context, req CreatePartnerRequest) (PartnerResponse, error)
	GetPartner(ctx context.Context, id string) (PartnerResponse, error)
	// GetOwnProfile resolves the caller's partner record from their user ID.
	GetOwnProfile(ctx context.Context) (PartnerResponse, error)
	ListPartners(ctx context.Context) ([]PartnerResponse, error)
	UpdatePartner(ctx context.Context, req UpdatePartnerRequest) (PartnerResponse, error)
	DeletePartner(ctx context.Context, id string) error
}
