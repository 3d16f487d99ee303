package actorrepo

import (
	"context"
	"errors"
	"fmt"

	"medorders/internal/adapters/out/postgres/pgerr"
	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/ports"
	"medorders/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GormActorRepository implements ports.ActorRepository.
type GormActorRepository struct {
	db   *gorm.DB
	cost int
}

// NewGormActorRepository uses bcrypt.DefaultCost when cost is 0.
func NewGormActorRepository(db *gorm.DB, cost int) *GormActorRepository {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &GormActorRepository{db: db, cost: cost}
}

func (r *GormActorRepository) Register(ctx context.Context, a actor.Actor, password string) error {
	if err := a.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	dto := ActorDTO{
		ID:           a.ID().Bytes(),
		Username:     a.Username(),
		PasswordHash: string(hash),
		Role:         a.Role().Code(),
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ports.ErrUsernameTaken, a.Username())
		}
		return err
	}
	return nil
}

// Authenticate compares password with the stored hash. Unknown users and
// wrong passwords both yield ports.ErrInvalidCredentials.
func (r *GormActorRepository) Authenticate(ctx context.Context, username, password string) (actor.Actor, error) {
	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return actor.Actor{}, ports.ErrInvalidCredentials
		}
		return actor.Actor{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dto.PasswordHash), []byte(password)); err != nil {
		return actor.Actor{}, ports.ErrInvalidCredentials
	}

	return toDomain(dto)
}

func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return actor.Actor{}, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return actor.Actor{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return actor.Actor{}, err
	}

	return toDomain(dto)
}
