//go:build integration
// +build integration

package repository

import (
	"testing"

	"homefinder-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LocationRepositoryTestSuite tests the LocationRepository
type LocationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LocationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *LocationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewLocationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LocationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LocationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LocationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LocationRepositoryTestSuite) TestListStatesOrdered() {
	sp := suite.factories.State.WithUF("São Paulo", "SP")
	ba := suite.factories.State.WithUF("Bahia", "BA")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(sp).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(ba).Error)

	states, err := suite.repo.ListStates()

	suite.NoError(err)
	suite.Len(states, 2)
	suite.Equal("Bahia", states[0].Name)
	suite.Equal("São Paulo", states[1].Name)
}

func (suite *LocationRepositoryTestSuite) TestGetStateBySlug() {
	state := suite.factories.State.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(state).Error)

	found, err := suite.repo.GetStateBySlug("sao-paulo")

	suite.NoError(err)
	suite.Equal(state.ID, found.ID)
	suite.Equal("SP", found.UF)
}

func (suite *LocationRepositoryTestSuite) TestGetStateByUFNormalizesInput() {
	state := suite.factories.State.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(state).Error)

	found, err := suite.repo.GetStateByUF(" sp ")

	suite.NoError(err)
	suite.Equal(state.ID, found.ID)
}

func (suite *LocationRepositoryTestSuite) TestGetStateBySlugNotFound() {
	_, err := suite.repo.GetStateBySlug("atlantida")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *LocationRepositoryTestSuite) TestGetCityBySlugScopedToState() {
	sp := suite.factories.State.WithUF("São Paulo", "SP")
	rj := suite.factories.State.WithUF("Rio de Janeiro", "RJ")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(sp).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(rj).Error)

	city := suite.factories.City.WithName("São Paulo", sp.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(city).Error)

	found, err := suite.repo.GetCityBySlug("sao-paulo", "sao-paulo")
	suite.NoError(err)
	suite.Equal("São Paulo", found.Name)
	suite.NotNil(found.State)
	suite.Equal("SP", found.State.UF)

	// Same city slug under the wrong state must miss
	_, err = suite.repo.GetCityBySlug("rio-de-janeiro", "sao-paulo")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *LocationRepositoryTestSuite) TestGetNeighborhoodBySlugChain() {
	state := suite.factories.State.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(state).Error)
	city := suite.factories.City.WithState(state.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(city).Error)
	hood := suite.factories.Neighborhood.WithName("Vila Mariana", city.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(hood).Error)

	found, err := suite.repo.GetNeighborhoodBySlug("sao-paulo", "sao-paulo", "vila-mariana")

	suite.NoError(err)
	suite.Equal(hood.ID, found.ID)
	suite.NotNil(found.City)
	suite.NotNil(found.City.State)
}

func (suite *LocationRepositoryTestSuite) TestFindOrCreateNeighborhoodCreates() {
	state := suite.factories.State.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(state).Error)
	city := suite.factories.City.WithState(state.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(city).Error)

	hood, err := suite.repo.FindOrCreateNeighborhood("Jardim Paulista", city.ID)

	suite.NoError(err)
	suite.NotZero(hood.ID)
	suite.Equal("Jardim Paulista", hood.Name)
	suite.Equal("jardim-paulista", hood.Slug)
}

func (suite *LocationRepositoryTestSuite) TestFindOrCreateNeighborhoodIdempotent() {
	state := suite.factories.State.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(state).Error)
	city := suite.factories.City.WithState(state.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(city).Error)

	first, err := suite.repo.FindOrCreateNeighborhood("Moema", city.ID)
	suite.Require().NoError(err)

	// Case-insensitive second call returns the same row
	second, err := suite.repo.FindOrCreateNeighborhood("  MOEMA ", city.ID)
	suite.NoError(err)
	suite.Equal(first.ID, second.ID)

	var count int64
	suite.baseTestSuite.DB.Model(&second).Where("city_id = ?", city.ID).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *LocationRepositoryTestSuite) TestFindOrCreateNeighborhoodSeparateCities() {
	state := suite.factories.State.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(state).Error)
	cityA := suite.factories.City.WithName("Campinas", state.ID)
	cityB := suite.factories.City.WithName("Santos", state.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(cityA).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(cityB).Error)

	hoodA, err := suite.repo.FindOrCreateNeighborhood("Centro", cityA.ID)
	suite.Require().NoError(err)
	hoodB, err := suite.repo.FindOrCreateNeighborhood("Centro", cityB.ID)
	suite.Require().NoError(err)

	suite.NotEqual(hoodA.ID, hoodB.ID)
}

// TestLocationRepositoryTestSuite runs the test suite
func TestLocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryTestSuite))
}
