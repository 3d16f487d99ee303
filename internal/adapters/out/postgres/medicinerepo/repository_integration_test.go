package medicinerepo_test

import (
	"context"
	"testing"

	"medorders/internal/adapters/out/postgres/medicinerepo"
	"medorders/internal/adapters/out/postgres/postgrestest"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/medicine"
	"medorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MedicineRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *medicinerepo.GormMedicineRepository
}

func (suite *MedicineRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&medicinerepo.MedicineDTO{}))
}

func (suite *MedicineRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE medicines").Error)
	suite.repository = medicinerepo.NewGormMedicineRepository(suite.db)
}

func (suite *MedicineRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MedicineRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := context.Background()
	m := postgrestest.NewMedicine(suite.T(), "Omeprazole 20mg", "6.35", 18)

	suite.Require().NoError(suite.repository.Add(ctx, m))

	stored, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Equal("Omeprazole 20mg", stored.Name())
	suite.True(kernel.MustMoney("6.35").IsEqual(stored.UnitPrice()))
	suite.Equal(18, stored.CurrentStock())
	suite.True(stored.IsActive())
}

func (suite *MedicineRepositoryIntegrationTestSuite) TestAdd_DuplicateName_Fails() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, postgrestest.NewMedicine(suite.T(), "Omeprazole 20mg", "6.35", 18)))

	err := suite.repository.Add(ctx, postgrestest.NewMedicine(suite.T(), "Omeprazole 20mg", "5.00", 2))

	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *MedicineRepositoryIntegrationTestSuite) TestUpdate_StockAndActiveFlag() {
	ctx := context.Background()
	m := postgrestest.NewMedicine(suite.T(), "Metformin 500mg", "4.10", 12)
	suite.Require().NoError(suite.repository.Add(ctx, m))

	_, err := m.Reserve(5, medicine.MovementOrigin{Reference: "ORD-0A1B2C3D", ActorID: kernel.NewUUID()})
	suite.Require().NoError(err)
	m.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, m))

	stored, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Equal(7, stored.CurrentStock())
	suite.False(stored.IsActive())
}

func (suite *MedicineRepositoryIntegrationTestSuite) TestUpdate_Unknown_ReturnsNotFound() {
	m := postgrestest.NewMedicine(suite.T(), "Metformin 500mg", "4.10", 12)

	suite.ErrorIs(suite.repository.Update(context.Background(), m), errs.ErrObjectNotFound)
}

func (suite *MedicineRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	stored, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(stored)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MedicineRepositoryIntegrationTestSuite) TestGetMany_ReturnsOnlyKnown() {
	ctx := context.Background()
	a := postgrestest.NewMedicine(suite.T(), "Aspirin 75mg", "1.99", 50)
	b := postgrestest.NewMedicine(suite.T(), "Atorvastatin 10mg", "9.40", 20)
	suite.Require().NoError(suite.repository.Add(ctx, a))
	suite.Require().NoError(suite.repository.Add(ctx, b))

	found, err := suite.repository.GetMany(ctx, []kernel.UUID{a.ID(), b.ID(), kernel.NewUUID()})
	suite.Require().NoError(err)
	suite.Len(found, 2)

	names := make([]string, 0, len(found))
	for _, m := range found {
		names = append(names, m.Name())
	}
	suite.ElementsMatch([]string{"Aspirin 75mg", "Atorvastatin 10mg"}, names)
}

func (suite *MedicineRepositoryIntegrationTestSuite) TestGetMany_InsideTransaction() {
	ctx := context.Background()
	m := postgrestest.NewMedicine(suite.T(), "Aspirin 75mg", "1.99", 50)
	suite.Require().NoError(suite.repository.Add(ctx, m))

	err := suite.db.Transaction(func(tx *gorm.DB) error {
		locked, err := medicinerepo.NewGormMedicineRepository(tx).GetMany(ctx, []kernel.UUID{m.ID()})
		suite.Require().NoError(err)
		suite.Require().Len(locked, 1)
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *MedicineRepositoryIntegrationTestSuite) TestGetMany_Empty() {
	found, err := suite.repository.GetMany(context.Background(), nil)

	suite.Require().NoError(err)
	suite.Empty(found)
}

func TestMedicineRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(MedicineRepositoryIntegrationTestSuite))
}
