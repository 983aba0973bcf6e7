package userrepo_test

import (
	"context"
	"testing"
	"time"

	"jobboard/internal/adapters/out/postgres/pgtest"
	"jobboard/internal/adapters/out/postgres/userrepo"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Stop(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = userrepo.NewGormUserRepository(suite.pg.DB, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(username string) *user.User {
	hash, err := user.HashPassword("s3cret", bcrypt.MinCost)
	suite.Require().NoError(err)

	dob := time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC)
	u, err := user.NewUser(kernel.NewUUID(), username, hash, user.Profile{
		Name:             "Alice Example",
		PhoneNumber:      "+1 555 0100",
		Gender:           "female",
		DateOfBirth:      &dob,
		MembershipStatus: "premium",
		Address:          "1 Main St",
	}, time.Now().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_ThenGetByUsername() {
	ctx := context.Background()
	account := suite.newUser("alice")

	suite.Require().NoError(suite.repository.Add(ctx, account))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", account.ID(), account)

	got, err := suite.repository.GetByUsername(ctx, "alice")
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(account.ID()))
	suite.True(got.Authenticate("s3cret"))
	suite.Equal("Alice Example", got.Profile().Name)
	suite.Equal("premium", got.Profile().MembershipStatus)
	suite.Require().NotNil(got.Profile().DateOfBirth)
	suite.Equal(1990, got.Profile().DateOfBirth.Year())
	suite.True(got.CreatedAt().Equal(account.CreatedAt()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateUsername_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("alice")))

	err := suite.repository.Add(ctx, suite.newUser("alice"))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Contains(err.Error(), "alice")
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByUsername_Unknown_ReturnsNotFound() {
	_, err := suite.repository.GetByUsername(context.Background(), "nobody")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByUsername_IsCaseSensitive() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("alice")))

	_, err := suite.repository.GetByUsername(ctx, "ALICE")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
