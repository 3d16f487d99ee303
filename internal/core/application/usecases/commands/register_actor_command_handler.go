package commands

import (
	"context"
	"errors"
	"fmt"

	"medorders/internal/core/domain/services"
	"medorders/internal/core/ports"
)

type RegisterActorCommandHandler struct {
	actors ports.ActorRepository
	policy services.AccessPolicy
}

func NewRegisterActorCommandHandler(
	actors ports.ActorRepository,
	policy services.AccessPolicy,
) (*RegisterActorCommandHandler, error) {
	if actors == nil {
		return nil, errors.New("actor repository is required")
	}
	if policy == nil {
		return nil, errors.New("access policy is required")
	}
	return &RegisterActorCommandHandler{actors: actors, policy: policy}, nil
}

func (h *RegisterActorCommandHandler) Handle(ctx context.Context, cmd RegisterActorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !h.policy.CanManageUsers(cmd.Requester()) {
		return fmt.Errorf("%w: %s may not register users", services.ErrUnauthorized, cmd.Requester().Role())
	}
	return h.actors.Register(ctx, cmd.NewActor(), cmd.Password())
}
