package actor_test

import (
	"testing"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create actor with trimmed username", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := actor.NewActor(id, "  pharm.jane ", actor.PharmacistAdmin)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "pharm.jane", a.Username())
		assert.Equal(t, actor.PharmacistAdmin, a.Role())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := actor.NewActor(kernel.UUID{}, " ", actor.UnknownRole)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: username")
		assert.Contains(t, err.Error(), "role is invalid")
	})

	t.Run("zero value actor is not constructed", func(t *testing.T) {
		var a actor.Actor

		assert.Equal(t, actor.ErrActorIsNotConstructed, a.Validate())
	})
}

func TestRole(t *testing.T) {
	t.Run("codes round trip", func(t *testing.T) {
		for _, role := range []actor.Role{actor.SalesRep, actor.PharmacistAdmin, actor.Admin} {
			parsed, err := actor.RoleFromCode(role.Code())

			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("unknown code is rejected", func(t *testing.T) {
		_, err := actor.RoleFromCode("customer")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("only pharmacist and admin are staff", func(t *testing.T) {
		assert.False(t, actor.SalesRep.IsStaff())
		assert.True(t, actor.PharmacistAdmin.IsStaff())
		assert.True(t, actor.Admin.IsStaff())
		assert.False(t, actor.UnknownRole.IsStaff())
	})

	t.Run("display names", func(t *testing.T) {
		assert.Equal(t, "Pharmacist/Admin", actor.PharmacistAdmin.String())
		assert.Equal(t, "Unknown", actor.Role(42).String())
		assert.Equal(t, "unknown", actor.Role(42).Code())
	})
}
