package postgresql

import (
	"fmt"

	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
)

// scopeCondition renders the caller's scope as a SQL predicate on the
// employees table (aliased). It returns the predicate (or empty for an
// unrestricted scope) and appends bind args as needed. Scope is applied in
// every query before any other filter; it is never a client-supplied value.
func scopeCondition(scope employee.Scope, alias string, args []interface{}, argIdx int) (string, []interface{}, int) {
	if scope.Unrestricted() {
		return "", args, argIdx
	}

	p := *scope.Provider
	switch p.Kind {
	case employee.ProviderHouse:
		return fmt.Sprintf(" AND %s.provided_by_kind = 'house'", alias), args, argIdx
	case employee.ProviderPartner:
		cond := fmt.Sprintf(" AND %s.provided_by_kind = 'partner' AND %s.provided_by_partner_id = $%d", alias, alias, argIdx)
		args = append(args, *p.PartnerID)
		return cond, args, argIdx + 1
	}
	return "", args, argIdx
}
