package services

import (
	"errors"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/order"
)

// ErrUnauthorized is returned when the access policy refuses an action.
var ErrUnauthorized = errors.New("unauthorized")

// AccessPolicy decides which actor may perform which order operation.
// Implementations must be pure: no I/O, no side effects.
type AccessPolicy interface {
	CanCreateOrder(a actor.Actor) bool
	CanManageStatus(a actor.Actor) bool
	CanCancelOrder(a actor.Actor, o *order.Order) bool
	CanViewAllOrders(a actor.Actor) bool
	CanViewOrder(a actor.Actor, o *order.Order) bool
	CanManageCatalog(a actor.Actor) bool
	CanManageUsers(a actor.Actor) bool
}

var _ AccessPolicy = RoleAccessPolicy{}

// RoleAccessPolicy grants permissions by role:
//   - sales reps create orders, see their own orders and cancel them while Pending
//   - pharmacist admins and admins manage status, see and cancel every order
//     and maintain the medicine catalog
//   - only admins register users
type RoleAccessPolicy struct{}

func NewRoleAccessPolicy() RoleAccessPolicy {
	return RoleAccessPolicy{}
}

func (RoleAccessPolicy) CanCreateOrder(a actor.Actor) bool {
	return a.Validate() == nil && a.Role() == actor.SalesRep
}

func (RoleAccessPolicy) CanManageStatus(a actor.Actor) bool {
	return a.Validate() == nil && a.Role().IsStaff()
}

func (p RoleAccessPolicy) CanCancelOrder(a actor.Actor, o *order.Order) bool {
	if p.CanManageStatus(a) {
		return true
	}
	return a.Validate() == nil &&
		a.Role() == actor.SalesRep &&
		o.IsOwnedBy(a.ID()) &&
		o.Status() == order.Pending
}

func (RoleAccessPolicy) CanViewAllOrders(a actor.Actor) bool {
	return a.Validate() == nil && a.Role().IsStaff()
}

func (p RoleAccessPolicy) CanViewOrder(a actor.Actor, o *order.Order) bool {
	if p.CanViewAllOrders(a) {
		return true
	}
	return a.Validate() == nil && o.IsOwnedBy(a.ID())
}

func (RoleAccessPolicy) CanManageCatalog(a actor.Actor) bool {
	return a.Validate() == nil && a.Role().IsStaff()
}

func (RoleAccessPolicy) CanManageUsers(a actor.Actor) bool {
	return a.Validate() == nil && a.Role() == actor.Admin
}
