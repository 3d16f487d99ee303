package actor

import (
	"fmt"

	"medorders/internal/pkg/errs"
)

// Role is the capability class of a user. The order domain reads it to
// authorize operations and never changes it.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	// SalesRep creates orders and sees only their own.
	SalesRep
	// PharmacistAdmin fulfils orders and manages their status.
	PharmacistAdmin
	// Admin has every pharmacist capability.
	Admin
)

var roleCodes = map[Role]string{
	SalesRep:        "sales_rep",
	PharmacistAdmin: "pharmacist_admin",
	Admin:           "admin",
}

// RoleFromCode parses the persisted role code.
func RoleFromCode(code string) (Role, error) {
	for role, c := range roleCodes {
		if c == code {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", code))
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if _, ok := roleCodes[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Code returns the persisted form, e.g. "pharmacist_admin".
func (r Role) Code() string {
	if c, ok := roleCodes[r]; ok {
		return c
	}
	return "unknown"
}

func (r Role) String() string {
	switch r {
	case SalesRep:
		return "Sales Representative"
	case PharmacistAdmin:
		return "Pharmacist/Admin"
	case Admin:
		return "Admin"
	default:
		return "Unknown"
	}
}

// IsStaff reports pharmacist/admin level access.
func (r Role) IsStaff() bool {
	return r == PharmacistAdmin || r == Admin
}
