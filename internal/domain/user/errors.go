package user

import "errors"

var (
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrRoleNotAllowed         = errors.New("role not allowed for this action")
)
