package domain

import (
	"errors"
	"fmt"
)

// Role is the kind of account an Identity belongs to.
type Role string

const (
	RoleResearcher Role = "researcher"
	RoleCompany    Role = "company"
	RoleAdmin      Role = "admin"
)

var ErrUnknownRole = errors.New("unknown role")

// Roles lists every known role in display order.
func Roles() []Role {
	return []Role{RoleResearcher, RoleCompany, RoleAdmin}
}

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleResearcher, RoleCompany, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// RoleHandler has one method per role. Every behaviour that differs by role
// implements it, so adding a role fails to compile until each handler
// covers the new case.
type RoleHandler[T any] interface {
	Researcher() (T, error)
	Company() (T, error)
	Admin() (T, error)
}

// DispatchRole calls the handler method matching r.
func DispatchRole[T any](r Role, h RoleHandler[T]) (T, error) {
	switch r {
	case RoleResearcher:
		return h.Researcher()
	case RoleCompany:
		return h.Company()
	case RoleAdmin:
		return h.Admin()
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrUnknownRole, string(r))
}
