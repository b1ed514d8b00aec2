package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrUniqueCodeExists    = errors.New("employee unique code already exists")
	ErrEmployeeNotApproved = errors.New("employee must be approved first")
	ErrCannotApproveHouse  = errors.New("cannot approve house employees")
	ErrEmployeeHasPayments = errors.New("employee has payment records and cannot be deleted")
	ErrNoEmployeesInBatch  = errors.New("no employees to create")
	ErrBatchCodesExist     = errors.New("some employee unique codes already exist")
	ErrInvalidEmployeeID   = errors.New("invalid employee ID")
)
