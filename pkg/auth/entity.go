package auth

import (
	"time"

	"github.com/google/uuid"
)

// Role определяет, что пользователь может делать с вакансиями.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// ParseRole: пустая строка означает кандидата.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case "":
		return RoleCandidate, nil
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return r, nil
	}
	return "", ErrInvalidRole
}

// User is a domain entity representing a system user.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
