package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// User is an employee or administrator account. The engine only reads
// MinuteCost and JoinDate; the rest belongs to auth and administration.
type User struct {
	ID                  string
	Username            string
	PasswordHash        string
	FullName            string
	Role                Role
	MinuteCost          decimal.Decimal // rate per worked minute
	VacationDaysAllowed int
	JoinDate            time.Time
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsAdmin checks if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
