package level

import "errors"

var (
	ErrLevelNotFound   = errors.New("level not found")
	ErrLevelNameExists = errors.New("level name already exists")
	ErrInvalidLevelID  = errors.New("invalid level ID")
	ErrLevelInUse      = errors.New("level is referenced by employees and cannot be deleted")
)
