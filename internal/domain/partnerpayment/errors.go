package partnerpayment

import "errors"

var (
	ErrPartnerPaymentNotFound = errors.New("partner payment not found")
	ErrAlreadyCompleted       = errors.New("partner payment is already completed")
	ErrNotPending             = errors.New("partner payment must be in pending status to mark paid")
	ErrNotOwnPayment          = errors.New("partner payment belongs to another partner")
)
