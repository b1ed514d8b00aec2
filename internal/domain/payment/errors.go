package payment

import "errors"

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrInvalidPaymentID  = errors.New("invalid payment ID")
	ErrNotPending        = errors.New("payment must be in pending status to mark paid")
	ErrNotApproved       = errors.New("payment must be in approved status to complete")
	ErrOutsideScope      = errors.New("payment is outside the caller's scope")
	ErrNoApprovedTargets = errors.New("no approved employees found")
)
