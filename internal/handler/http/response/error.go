package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/crewpay/crewpay-backend-go/internal/domain/auth"
	"github.com/crewpay/crewpay-backend-go/internal/domain/employee"
	"github.com/crewpay/crewpay-backend-go/internal/domain/level"
	"github.com/crewpay/crewpay-backend-go/internal/domain/partner"
	"github.com/crewpay/crewpay-backend-go/internal/domain/partnerpayment"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payment"
	"github.com/crewpay/crewpay-backend-go/internal/domain/user"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth and role errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrRoleNotAllowed):
		Forbidden(w, "Role not allowed for this operation")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		BadRequest(w, "Invalid employee ID", nil)
	case errors.Is(err, employee.ErrUniqueCodeExists):
		Conflict(w, "Employee unique code already exists")
	case errors.Is(err, employee.ErrBatchCodesExist):
		Conflict(w, "One or more unique codes already exist")
	case errors.Is(err, employee.ErrNoEmployeesInBatch):
		BadRequest(w, "No employees in batch", nil)
	case errors.Is(err, employee.ErrEmployeeNotApproved):
		BadRequest(w, "Employee must be approved first", nil)
	case errors.Is(err, employee.ErrCannotApproveHouse):
		BadRequest(w, "House employees do not require approval", nil)
	case errors.Is(err, employee.ErrEmployeeHasPayments):
		Conflict(w, "Employee has payment records and cannot be deleted")

	// Level domain errors
	case errors.Is(err, level.ErrLevelNotFound):
		NotFound(w, "Level not found")
	case errors.Is(err, level.ErrLevelNameExists):
		Conflict(w, "Level name already exists")
	case errors.Is(err, level.ErrInvalidLevelID):
		BadRequest(w, "Invalid level ID", nil)
	case errors.Is(err, level.ErrLevelInUse):
		Conflict(w, "Level is referenced by employees and cannot be deleted")

	// Partner domain errors
	case errors.Is(err, partner.ErrPartnerNotFound):
		NotFound(w, "Partner not found")
	case errors.Is(err, partner.ErrPartnerProfileNotFound):
		NotFound(w, "Partner profile not found")
	case errors.Is(err, partner.ErrUserAlreadyLinked):
		Conflict(w, "User is already linked to a partner")
	case errors.Is(err, partner.ErrPartnerHasEmployees):
		Conflict(w, "Partner still supplies employees and cannot be deleted")

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payment.ErrInvalidPaymentID):
		BadRequest(w, "Invalid payment ID", nil)
	case errors.Is(err, payment.ErrNotPending):
		BadRequest(w, "Payment must be in pending status", nil)
	case errors.Is(err, payment.ErrNotApproved):
		BadRequest(w, "Payment must be in approved status", nil)
	case errors.Is(err, payment.ErrOutsideScope):
		Forbidden(w, "Payment is outside your scope")
	case errors.Is(err, payment.ErrNoApprovedTargets):
		BadRequest(w, "No approved employees found", nil)

	// Partner payment domain errors
	case errors.Is(err, partnerpayment.ErrPartnerPaymentNotFound):
		NotFound(w, "Partner payment not found")
	case errors.Is(err, partnerpayment.ErrNotOwnPayment):
		Forbidden(w, "Partner payment belongs to another partner")
	case errors.Is(err, partnerpayment.ErrAlreadyCompleted):
		Conflict(w, "Partner payment is already completed")
	case errors.Is(err, partnerpayment.ErrNotPending):
		BadRequest(w, "Partner payment must be in pending status", nil)

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
