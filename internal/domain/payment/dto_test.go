package payment

import (
	"testing"

	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentRequestValidate(t *testing.T) {
	valid := CreatePaymentRequest{
		EmployeeID: "123e4567-e89b-12d3-a456-426614174000",
		DueDate:    "2026-09-15",
	}
	assert.NoError(t, valid.Validate())

	neg := decimal.RequireFromString("-5")
	bad := CreatePaymentRequest{
		EmployeeID: "not-a-uuid",
		Amount:     &neg,
		DueDate:    "15/09/2026",
	}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "employee_id")
	assert.Contains(t, m, "amount")
	assert.Contains(t, m, "due_date")
}

func TestBatchCreatePaymentsRequestValidate(t *testing.T) {
	empty := BatchCreatePaymentsRequest{DueDate: "2026-09-15"}
	assert.Error(t, empty.Validate())

	mixed := BatchCreatePaymentsRequest{
		EmployeeIDs: []string{"123e4567-e89b-12d3-a456-426614174000", "nope"},
		DueDate:     "2026-09-15",
	}
	err := mixed.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "employee_ids[1]")
}

func TestMarkPaidRequestValidate(t *testing.T) {
	bad := "not a url"
	req := MarkPaidRequest{ID: "123e4567-e89b-12d3-a456-426614174000", ProofURL: &bad}
	assert.Error(t, req.Validate())

	good := "https://cdn.example.com/proof.png"
	req.ProofURL = &good
	assert.NoError(t, req.Validate())
}
