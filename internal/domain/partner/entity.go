package partner

import "time"

// Partner wraps an identity-bearing account (provisioned externally) with
// company metadata. One partner supplies zero or more employees.
type Partner struct {
	ID             string
	UserID         string
	CompanyName    string
	CompanyDetails string
	ContactPerson  *string
	ContactPhone   *string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	UserEmail *string
}
