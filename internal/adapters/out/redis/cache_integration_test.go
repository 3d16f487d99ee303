package redis_test

import (
	"context"
	"testing"
	"time"

	redis_adapter "medorders/internal/adapters/out/redis"
	"medorders/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type CacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	cache     *redis_adapter.Cache
}

func (suite *CacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "redis")
	suite.Require().NoError(err)

	suite.cache, err = redis_adapter.Connect(ctx, endpoint, "medorders-test:")
	suite.Require().NoError(err)
}

func (suite *CacheIntegrationTestSuite) TearDownSuite() {
	if suite.cache != nil {
		suite.Require().NoError(suite.cache.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CacheIntegrationTestSuite) TestSetGetDelete() {
	ctx := context.Background()

	suite.Require().NoError(suite.cache.Set(ctx, "stats", []byte(`{"total_orders":3}`), time.Minute))

	value, err := suite.cache.Get(ctx, "stats")
	suite.Require().NoError(err)
	suite.JSONEq(`{"total_orders":3}`, string(value))

	suite.Require().NoError(suite.cache.Delete(ctx, "stats", "never-set"))

	_, err = suite.cache.Get(ctx, "stats")
	suite.ErrorIs(err, ports.ErrCacheMiss)
}

func (suite *CacheIntegrationTestSuite) TestGet_Missing() {
	_, err := suite.cache.Get(context.Background(), "absent")

	suite.ErrorIs(err, ports.ErrCacheMiss)
}

func (suite *CacheIntegrationTestSuite) TestSet_Expires() {
	ctx := context.Background()
	suite.Require().NoError(suite.cache.Set(ctx, "short", []byte("x"), 50*time.Millisecond))

	suite.Eventually(func() bool {
		_, err := suite.cache.Get(ctx, "short")
		return err != nil
	}, 2*time.Second, 20*time.Millisecond)
}

func (suite *CacheIntegrationTestSuite) TestDelete_NoKeys() {
	suite.NoError(suite.cache.Delete(context.Background()))
}

func (suite *CacheIntegrationTestSuite) TestConnect_InvalidURL() {
	_, err := redis_adapter.Connect(context.Background(), "http://not-redis", "")

	suite.Error(err)
}

func TestCacheIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(CacheIntegrationTestSuite))
}
