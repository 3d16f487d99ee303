// Package actorrepo stores service users with bcrypt password hashes and
// resolves login credentials to domain actors.
package actorrepo

import (
	"time"

	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ActorDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(72);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
}

func (ActorDTO) TableName() string {
	return "users"
}

func toDomain(dto ActorDTO) (actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return actor.Actor{}, err
	}
	role, err := actor.RoleFromCode(dto.Role)
	if err != nil {
		return actor.Actor{}, err
	}
	return actor.NewActor(id, dto.Username, role)
}
