package actorrepo_test

import (
	"context"
	"testing"

	"medorders/internal/adapters/out/postgres/actorrepo"
	"medorders/internal/adapters/out/postgres/postgrestest"
	"medorders/internal/core/domain/model/actor"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/ports"
	"medorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ActorRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *actorrepo.GormActorRepository
}

func (suite *ActorRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&actorrepo.ActorDTO{}))
	suite.repository = actorrepo.NewGormActorRepository(db, bcrypt.MinCost)
}

func (suite *ActorRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)
}

func (suite *ActorRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ActorRepositoryIntegrationTestSuite) TestRegister_ThenAuthenticate() {
	ctx := context.Background()
	rep := suite.newActor("maria", actor.SalesRep)
	suite.Require().NoError(suite.repository.Register(ctx, rep, "s3cret-pass"))

	authenticated, err := suite.repository.Authenticate(ctx, "maria", "s3cret-pass")
	suite.Require().NoError(err)
	suite.True(rep.ID().IsEqual(authenticated.ID()))
	suite.Equal(actor.SalesRep, authenticated.Role())

	var stored actorrepo.ActorDTO
	suite.Require().NoError(suite.db.First(&stored, "username = ?", "maria").Error)
	suite.NotEqual("s3cret-pass", stored.PasswordHash)
}

func (suite *ActorRepositoryIntegrationTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Register(ctx, suite.newActor("maria", actor.SalesRep), "s3cret-pass"))

	_, err := suite.repository.Authenticate(ctx, "maria", "guess")

	suite.ErrorIs(err, ports.ErrInvalidCredentials)
}

func (suite *ActorRepositoryIntegrationTestSuite) TestAuthenticate_UnknownUser() {
	_, err := suite.repository.Authenticate(context.Background(), "nobody", "whatever")

	suite.ErrorIs(err, ports.ErrInvalidCredentials)
}

func (suite *ActorRepositoryIntegrationTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Register(ctx, suite.newActor("maria", actor.SalesRep), "s3cret-pass"))

	err := suite.repository.Register(ctx, suite.newActor("maria", actor.Admin), "another-pass")

	suite.ErrorIs(err, ports.ErrUsernameTaken)
}

func (suite *ActorRepositoryIntegrationTestSuite) TestGet() {
	ctx := context.Background()
	pharmacist := suite.newActor("li", actor.PharmacistAdmin)
	suite.Require().NoError(suite.repository.Register(ctx, pharmacist, "s3cret-pass"))

	found, err := suite.repository.Get(ctx, pharmacist.ID())
	suite.Require().NoError(err)
	suite.Equal("li", found.Username())
	suite.Equal(actor.PharmacistAdmin, found.Role())

	_, err = suite.repository.Get(ctx, kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ActorRepositoryIntegrationTestSuite) newActor(username string, role actor.Role) actor.Actor {
	a, err := actor.NewActor(kernel.NewUUID(), username, role)
	suite.Require().NoError(err)
	return a
}

func TestActorRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(ActorRepositoryIntegrationTestSuite))
}
