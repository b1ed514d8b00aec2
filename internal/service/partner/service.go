package partner

import (
	"context"
	"log/slog"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/auth"
	"github.com/crewpay/crewpay-backend-go/internal/domain/partner"
	"github.com/crewpay/crewpay-backend-go/internal/domain/user"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
)

type PartnerServiceImpl struct {
	partnerRepo partner.PartnerRepository
}

func NewPartnerService(partnerRepo partner.PartnerRepository) partner.PartnerService {
	return &PartnerServiceImpl{partnerRepo: partnerRepo}
}

func mapPartnerToResponse(p partner.Partner) partner.PartnerResponse {
	return partner.PartnerResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		UserEmail:      p.UserEmail,
		CompanyName:    p.CompanyName,
		CompanyDetails: p.CompanyDetails,
		ContactPerson:  p.ContactPerson,
		ContactPhone:   p.ContactPhone,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *PartnerServiceImpl) CreatePartner(ctx context.Context, req partner.CreatePartnerRequest) (partner.PartnerResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return partner.PartnerResponse{}, err
	}
	if principal.Role != user.RoleAdmin {
		return partner.PartnerResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return partner.PartnerResponse{}, err
	}

	created, err := s.partnerRepo.Create(ctx, partner.Partner{
		UserID:         req.UserID,
		CompanyName:    req.CompanyName,
		CompanyDetails: req.CompanyDetails,
		ContactPerson:  req.ContactPerson,
		ContactPhone:   req.ContactPhone,
		CreatedBy:      principal.UserID,
	})
	if err != nil {
		return partner.PartnerResponse{}, err
	}

	slog.Info("partner created", "partner_id", created.ID, "company_name", created.CompanyName)
	return mapPartnerToResponse(created), nil
}

func (s *PartnerServiceImpl) GetPartner(ctx context.Context, id string) (partner.PartnerResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return partner.PartnerResponse{}, err
	}
	if !validator.IsValidUUID(id) {
		return partner.PartnerResponse{}, partner.ErrPartnerNotFound
	}

	p, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return partner.PartnerResponse{}, err
	}

	// A partner may only read their own profile by ID.
	if principal.Role == user.RolePartner && p.UserID != principal.UserID {
		return partner.PartnerResponse{}, partner.ErrPartnerNotFound
	}

	return mapPartnerToResponse(p), nil
}

func (s *PartnerServiceImpl) GetOwnProfile(ctx context.Context) (partner.PartnerResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return partner.PartnerResponse{}, err
	}
	if principal.Role != user.RolePartner {
		return partner.PartnerResponse{}, user.ErrRoleNotAllowed
	}

	p, err := s.partnerRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return partner.PartnerResponse{}, err
	}

	return mapPartnerToResponse(p), nil
}

func (s *PartnerServiceImpl) ListPartners(ctx context.Context) ([]partner.PartnerResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if principal.Role != user.RoleAdmin {
		return nil, user.ErrAdminPrivilegeRequired
	}

	partners, err := s.partnerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]partner.PartnerResponse, 0, len(partners))
	for _, p := range partners {
		resp = append(resp, mapPartnerToResponse(p))
	}

	return resp, nil
}

func (s *PartnerServiceImpl) UpdatePartner(ctx context.Context, req partner.UpdatePartnerRequest) (partner.PartnerResponse, error) {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return partner.PartnerResponse{}, err
	}
	if principal.Role != user.RoleAdmin {
		return partner.PartnerResponse{}, user.ErrAdminPrivilegeRequired
	}
	if !validator.IsValidUUID(req.ID) {
		return partner.PartnerResponse{}, partner.ErrPartnerNotFound
	}

	if err := req.Validate(); err != nil {
		return partner.PartnerResponse{}, err
	}

	if err := s.partnerRepo.Update(ctx, req); err != nil {
		return partner.PartnerResponse{}, err
	}

	p, err := s.partnerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return partner.PartnerResponse{}, err
	}

	return mapPartnerToResponse(p), nil
}

func (s *PartnerServiceImpl) DeletePartner(ctx context.Context, id string) error {
	principal, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return err
	}
	if principal.Role != user.RoleAdmin {
		return user.ErrAdminPrivilegeRequired
	}
	if !validator.IsValidUUID(id) {
		return partner.ErrPartnerNotFound
	}

	return s.partnerRepo.Delete(ctx, id)
}
