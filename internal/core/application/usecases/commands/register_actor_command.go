package commands

import (
	"errors"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/pkg/errs"
	"medorders/internal/pkg/guard"
)

// MinPasswordLength is the shortest password accepted for new users.
const MinPasswordLength = 8

var ErrRegisterActorCommandIsNotConstructed = errors.New(
	"RegisterActorCommand must be created via NewRegisterActorCommand constructor",
)

// RegisterActorCommand creates a user account.
type RegisterActorCommand struct { //nolint:recvcheck //using for validation
	requester actor.Actor
	newActor  actor.Actor
	password  string

	guard guard.ConstructorGuard
}

func NewRegisterActorCommand(requester, newActor actor.Actor, password string) (RegisterActorCommand, error) {
	var passwordErr error
	if len(password) < MinPasswordLength {
		passwordErr = errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, 72)
	}
	if err := errors.Join(requester.Validate(), newActor.Validate(), passwordErr); err != nil {
		return RegisterActorCommand{}, err
	}

	return RegisterActorCommand{
		requester: requester,
		newActor:  newActor,
		password:  password,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterActorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterActorCommandIsNotConstructed)
}

func (c RegisterActorCommand) Requester() actor.Actor {
	return c.requester
}

func (c RegisterActorCommand) NewActor() actor.Actor {
	return c.newActor
}

func (c RegisterActorCommand) Password() string {
	return c.password
}
