package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"homefinder-backend/internal/api/handlers"
	"homefinder-backend/internal/database/models"
	apperrors "homefinder-backend/internal/errors"
	"homefinder-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LocationHandlerTestSuite defines the test suite for LocationHandler
type LocationHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockLocationSv *mocks.MockLocationServiceInterface
	handler        *handlers.LocationHandler
	router         *gin.Engine
}

func (suite *LocationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLocationSv = mocks.NewMockLocationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewLocationHandler(suite.mockLocationSv)

	suite.router = gin.New()
	suite.router.GET("/admin/states", suite.handler.ListStates)
	suite.router.GET("/admin/cities", suite.handler.ListCities)
	suite.router.GET("/admin/neighborhoods", suite.handler.ListNeighborhoods)
	suite.router.POST("/admin/neighborhoods", suite.handler.CreateNeighborhood)
}

func (suite *LocationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LocationHandlerTestSuite) TestListStates_Success() {
	suite.mockLocationSv.EXPECT().ListStates().Return([]models.State{
		{BaseModel: models.BaseModel{ID: 1}, Name: "São Paulo", UF: "SP"},
		{BaseModel: models.BaseModel{ID: 2}, Name: "Rio de Janeiro", UF: "RJ"},
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/states", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []models.State
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "SP", got[0].UF)
}

func (suite *LocationHandlerTestSuite) TestListStates_AlwaysOK() {
	suite.mockLocationSv.EXPECT().ListStates().Return([]models.State{})

	req := httptest.NewRequest(http.MethodGet, "/admin/states", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "[]", w.Body.String())
}

func (suite *LocationHandlerTestSuite) TestListCities_Success() {
	suite.mockLocationSv.EXPECT().ListCitiesByState(uint(1)).Return([]models.City{
		{BaseModel: models.BaseModel{ID: 3}, Name: "Santos"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/cities?state_id=1", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *LocationHandlerTestSuite) TestListCities_MissingStateID() {
	req := httptest.NewRequest(http.MethodGet, "/admin/cities", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "state_id")
}

func (suite *LocationHandlerTestSuite) TestListNeighborhoods_InvalidCityID() {
	req := httptest.NewRequest(http.MethodGet, "/admin/neighborhoods?city_id=zero", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "city_id")
}

func (suite *LocationHandlerTestSuite) TestCreateNeighborhood_Success() {
	suite.mockLocationSv.EXPECT().
		FindOrCreateNeighborhood("Moema", uint(3)).
		Return(&models.Neighborhood{BaseModel: models.BaseModel{ID: 9}, Name: "Moema", CityID: 3}, nil)

	body := bytes.NewBufferString(`{"name": "Moema", "city_id": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/neighborhoods", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got models.Neighborhood
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(9), got.ID)
}

func (suite *LocationHandlerTestSuite) TestCreateNeighborhood_MissingCityID() {
	body := bytes.NewBufferString(`{"name": "Moema"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/neighborhoods", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *LocationHandlerTestSuite) TestCreateNeighborhood_BlankName() {
	body := bytes.NewBufferString(`{"name": "   ", "city_id": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/neighborhoods", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "name")
}

func (suite *LocationHandlerTestSuite) TestCreateNeighborhood_ServiceError() {
	suite.mockLocationSv.EXPECT().
		FindOrCreateNeighborhood("Moema", uint(3)).
		Return(nil, apperrors.NewUpstreamError("database", assert.AnError))

	body := bytes.NewBufferString(`{"name": "Moema", "city_id": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/neighborhoods", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

func TestLocationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LocationHandlerTestSuite))
}
