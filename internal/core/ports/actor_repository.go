package ports

import (
	"context"
	"errors"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
)

// ErrInvalidCredentials is returned by Authenticate for an unknown username
// or a wrong password; callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUsernameTaken is returned by Register for an existing username.
var ErrUsernameTaken = errors.New("username already taken")

// Authenticator resolves login credentials to an actor.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (actor.Actor, error)
}

// ActorRepository stores users. Passwords are only ever held as hashes.
type ActorRepository interface {
	Authenticator

	Register(ctx context.Context, a actor.Actor, password string) error

	Get(ctx context.Context, id kernel.UUID) (actor.Actor, error)
}
