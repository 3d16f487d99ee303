// Package actor models the authenticated user on whose behalf an order
// operation runs. User lifecycle lives outside the order domain; an Actor
// only carries what authorization needs.
package actor

import (
	"errors"
	"strings"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"
	"medorders/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is an immutable identity plus role.
type Actor struct {
	id       kernel.UUID
	username string
	role     Role
	guard    guard.ConstructorGuard
}

// NewActor validates identity and role.
func NewActor(id kernel.UUID, username string, role Role) (Actor, error) {
	username = strings.TrimSpace(username)

	var usernameErr error
	if username == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if err := errors.Join(id.Validate(), usernameErr, role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:       id,
		username: username,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Username() string {
	return a.username
}

func (a Actor) Role() Role {
	return a.role
}
