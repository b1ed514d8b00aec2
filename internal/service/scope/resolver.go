// Package scope maps an authenticated principal to the record subset it may
// see or act on. Resolution happens once per request, server-side; handlers
// and repositories never widen it from client input.
package scope

import (
	"context"

	"github.com/crewpay/crewpay-backend-go/internal/domain/auth"
	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/domain/partner"
	"github.com/crewpay/crewpay-backend-go/internal/domain/user"
)

type Resolver struct {
	partnerRepo partner.PartnerRepository
}

func NewResolver(partnerRepo partner.PartnerRepository) *Resolver {
	return &Resolver{partnerRepo: partnerRepo}
}

// Resolve returns the caller's scope. Admin is unrestricted, staff see the
// house pool, and a partner is pinned to their own agency's records. A
// partner-role principal without a linked partner record is an error, not an
// empty scope.
func (r *Resolver) Resolve(ctx context.Context, p auth.Principal) (employee.Scope, error) {
	switch p.Role {
	case user.RoleAdmin:
		return employee.ScopeAll(), nil
	case user.RoleStaff:
		return employee.ScopeHouse(), nil
	case user.RolePartner:
		pt, err := r.partnerRepo.GetByUserID(ctx, p.UserID)
		if err != nil {
			return employee.Scope{}, err
		}
		return employee.ScopePartner(pt.ID), nil
	}
	return employee.Scope{}, user.ErrRoleNotAllowed
}

// ResolvePartner returns the partner record linked to a partner-role
// principal, for endpoints that need the agency itself rather than a scope.
func (r *Resolver) ResolvePartner(ctx context.Context, p auth.Principal) (partner.Partner, error) {
	return r.partnerRepo.GetByUserID(ctx, p.UserID)
}
