package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProviderKind discriminates who supplies an employee.
type ProviderKind string

const (
	// ProviderHouse marks employees from the administrator's own staff pool.
	ProviderHouse ProviderKind = "house"
	// ProviderPartner marks employees supplied by a partner agency.
	ProviderPartner ProviderKind = "partner"
)

// Provider is a tagged union: the house branch carries no reference, the
// partner branch must carry the supplying partner's ID.
type Provider struct {
	Kind      ProviderKind
	PartnerID *string
}

func HouseProvider() Provider {
	return Provider{Kind: ProviderHouse}
}

func PartnerProvider(partnerID string) Provider {
	return Provider{Kind: ProviderPartner, PartnerID: &partnerID}
}

// IsHouse reports whether the employee comes from the house pool.
func (p Provider) IsHouse() bool {
	return p.Kind == ProviderHouse
}

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
)

type Employee struct {
	ID             string
	UniqueCode     string
	FullName       string
	NID            string
	Salary         decimal.Decimal
	LevelID        *string
	PhotoURL       *string
	ProvidedBy     Provider
	ApprovalStatus ApprovalStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	PartnerCompanyName *string
	LevelName          *string
}

// Scope is the record subset a principal may see or act on, computed
// server-side before any other filter. A nil Provider means unrestricted.
type Scope struct {
	Provider *Provider
}

// ScopeAll is the unrestricted scope (admin role).
func ScopeAll() Scope {
	return Scope{}
}

// ScopeHouse restricts to house-provided employees (staff role).
func ScopeHouse() Scope {
	p := HouseProvider()
	return Scope{Provider: &p}
}

// ScopePartner restricts to one partner's employees (partner role).
func ScopePartner(partnerID string) Scope {
	p := PartnerProvider(partnerID)
	return Scope{Provider: &p}
}

func (s Scope) Unrestricted() bool {
	return s.Provider == nil
}
