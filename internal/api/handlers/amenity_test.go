package handlers_test

import (
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

// AmenityHandlerTestSuite defines the test suite for AmenityHandler
type AmenityHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAmenitySv *mocks.MockAmenityServiceInterface
	handler       *handlers.AmenityHandler
	router        *gin.Engine
}

func (suite *AmenityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAmenitySv = mocks.NewMockAmenityServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAmenityHandler(suite.mockAmenitySv)

	suite.router = gin.New()
	suite.router.GET("/admin/amenities", suite.handler.ListAmenities)
}

func (suite *AmenityHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AmenityHandlerTestSuite) TestListAmenities_Success() {
	suite.mockAmenitySv.EXPECT().ListAmenities().Return([]models.Amenity{
		{BaseModel: models.BaseModel{ID: 1}, Name: "Academia"},
		{BaseModel: models.BaseModel{ID: 2}, Name: "Piscina"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/amenities", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []models.Amenity
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "Academia", got[0].Name)
}

func (suite *AmenityHandlerTestSuite) TestListAmenities_ServiceError() {
	suite.mockAmenitySv.EXPECT().
		ListAmenities().
		Return(nil, apperrors.NewUpstreamError("database", assert.AnError))

	req := httptest.NewRequest(http.MethodGet, "/admin/amenities", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

func TestAmenityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AmenityHandlerTestSuite))
}
