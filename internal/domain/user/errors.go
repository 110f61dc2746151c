package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already exists")
	ErrUserInactive           = errors.New("user account is inactive")
	ErrInvalidMinuteCost      = errors.New("minute cost must not be negative")
	ErrInvalidVacationDays    = errors.New("vacation days must not be negative")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
