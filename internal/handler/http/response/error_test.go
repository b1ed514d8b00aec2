package response

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/crewpay/crewpay-backend-go/internal/domain/partnerpayment"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payment"
	"github.com/crewpay/crewpay-backend-go/internal/domain/user"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"out of scope transition is forbidden", payment.ErrOutsideScope, 403},
		{"missing payment is not found", payment.ErrPaymentNotFound, 404},
		{"wrong status is a validation failure", payment.ErrNotPending, 400},
		{"admin gate", user.ErrAdminPrivilegeRequired, 403},
		{"foreign ledger entry", partnerpayment.ErrNotOwnPayment, 403},
		{"completed settlement conflicts", partnerpayment.ErrAlreadyCompleted, 409},
		{"field errors", validator.ValidationErrors{{Field: "amount", Message: "must be positive"}}, 422},
		{"unknown error is internal", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
