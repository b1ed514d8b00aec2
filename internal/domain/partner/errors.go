package partner

import "errors"

var (
	ErrPartnerNotFound = errors.New("partner not found")
	// ErrPartnerProfileNotFound fires when a partner-role principal has no
	// linked partner record. It is deliberately distinct from an empty result
	// set: it means the account is misconfigured.
	ErrPartnerProfileNotFound = errors.New("partner profile not found")
	ErrUserAlreadyLinked      = errors.New("user already linked to a partner")
	ErrPartnerHasEmployees    = errors.New("partner still supplies employees and cannot be deleted")
)
