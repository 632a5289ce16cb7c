package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"homefinder-backend/internal/api/handlers"
	"homefinder-backend/internal/database/models"
	apperrors "homefinder-backend/internal/errors"
	"homefinder-backend/internal/mocks"
	"homefinder-backend/internal/service"
	"homefinder-backend/internal/storage"
	"homefinder-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AdminPropertyHandlerTestSuite defines the test suite for AdminPropertyHandler
type AdminPropertyHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPropertySv *mocks.MockPropertyServiceInterface
	handler        *handlers.AdminPropertyHandler
	http           *testutils.HTTPTestSuite
}

func (suite *AdminPropertyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPropertySv = mocks.NewMockPropertyServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAdminPropertyHandler(suite.mockPropertySv)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/admin/properties", suite.handler.ListAllProperties)
	suite.http.Router.POST("/admin/properties", suite.handler.CreateProperty)
	suite.http.Router.GET("/admin/properties/:id", suite.handler.GetProperty)
	suite.http.Router.PUT("/admin/properties/:id", suite.handler.UpdateProperty)
	suite.http.Router.DELETE("/admin/properties/:id", suite.handler.DeleteProperty)
}

func (suite *AdminPropertyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func marshalPropertyData(t *testing.T, payload interface{}) string {
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(data)
}

func (suite *AdminPropertyHandlerTestSuite) TestListAllProperties_Success() {
	suite.mockPropertySv.EXPECT().GetAll().Return([]models.Property{
		{BaseModel: models.BaseModel{ID: 1}, Name: "Residencial Aurora"},
		{BaseModel: models.BaseModel{ID: 2}, Name: "Vila Verde"},
	}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/admin/properties", nil)

	var got []models.Property
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Len(suite.T(), got, 2)
}

func (suite *AdminPropertyHandlerTestSuite) TestGetProperty_InvalidID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/admin/properties/abc", nil)

	msg := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), msg, "positive integer")
}

func (suite *AdminPropertyHandlerTestSuite) TestGetProperty_NotFound() {
	suite.mockPropertySv.EXPECT().GetByID(uint(99)).Return(nil, apperrors.ErrPropertyNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/admin/properties/99", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound)
}

func (suite *AdminPropertyHandlerTestSuite) TestCreateProperty_Success() {
	neighborhoodID := uint(3)
	payload := service.CreatePropertyRequest{
		Name:           "Residencial Aurora",
		NeighborhoodID: &neighborhoodID,
		Bedrooms:       2,
		AreaMin:        60,
		PriceMin:       500000,
	}

	suite.mockPropertySv.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreatePropertyRequest, uploads []storage.ImageUpload) (*service.CreatePropertyResult, error) {
			assert.Equal(suite.T(), "Residencial Aurora", req.Name)
			require.NotNil(suite.T(), req.NeighborhoodID)
			assert.Equal(suite.T(), uint(3), *req.NeighborhoodID)
			require.Len(suite.T(), uploads, 2)
			assert.Equal(suite.T(), "front.jpg", uploads[0].Filename)
			assert.Equal(suite.T(), []byte("front"), uploads[0].Data)
			assert.Equal(suite.T(), "pool.jpg", uploads[1].Filename)
			return &service.CreatePropertyResult{
				Property: &models.Property{BaseModel: models.BaseModel{ID: 10}, Name: req.Name, Slug: "residencial-aurora"},
			}, nil
		})

	recorder := suite.http.MakeMultipartRequest(suite.T(), http.MethodPost, "/admin/properties",
		map[string]string{"propertyData": marshalPropertyData(suite.T(), payload)},
		[]testutils.MultipartFile{
			{FieldName: "image_0", Filename: "front.jpg", Content: []byte("front")},
			{FieldName: "image_1", Filename: "pool.jpg", Content: []byte("pool")},
		}, nil)

	var got handlers.PropertyWriteResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	assert.Empty(suite.T(), got.Warnings)
}

func (suite *AdminPropertyHandlerTestSuite) TestCreateProperty_SurfacesWarnings() {
	neighborhoodID := uint(3)
	payload := service.CreatePropertyRequest{
		Name:           "Residencial Aurora",
		NeighborhoodID: &neighborhoodID,
		Bedrooms:       2,
		AreaMin:        60,
		PriceMin:       500000,
	}

	suite.mockPropertySv.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&service.CreatePropertyResult{
			Property: &models.Property{BaseModel: models.BaseModel{ID: 10}},
			Warnings: []string{"images not saved"},
		}, nil)

	recorder := suite.http.MakeMultipartRequest(suite.T(), http.MethodPost, "/admin/properties",
		map[string]string{"propertyData": marshalPropertyData(suite.T(), payload)}, nil, nil)

	var got handlers.PropertyWriteResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	assert.Equal(suite.T(), []string{"images not saved"}, got.Warnings)
}

func (suite *AdminPropertyHandlerTestSuite) TestCreateProperty_MissingPropertyData() {
	recorder := suite.http.MakeMultipartRequest(suite.T(), http.MethodPost, "/admin/properties",
		map[string]string{"unrelated": "value"}, nil, nil)

	msg := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), msg, "propertyData")
}

func (suite *AdminPropertyHandlerTestSuite) TestCreateProperty_MalformedJSON() {
	recorder := suite.http.MakeMultipartRequest(suite.T(), http.MethodPost, "/admin/properties",
		map[string]string{"propertyData": "{not json"}, nil, nil)

	msg := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), msg, "valid JSON")
}

func (suite *AdminPropertyHandlerTestSuite) TestCreateProperty_NotMultipart() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/admin/properties", map[string]string{"name": "x"})

	msg := testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), msg, "multipart")
}

func (suite *AdminPropertyHandlerTestSuite) TestUpdateProperty_Success() {
	suite.mockPropertySv.EXPECT().
		Update(uint(5), gomock.Any()).
		DoAndReturn(func(_ uint, req *service.UpdatePropertyRequest) (*models.Property, error) {
			require.NotNil(suite.T(), req.Name)
			assert.Equal(suite.T(), "Novo Nome", *req.Name)
			assert.Nil(suite.T(), req.PriceMin)
			return &models.Property{BaseModel: models.BaseModel{ID: 5}, Name: "Novo Nome"}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPut, "/admin/properties/5", map[string]string{"name": "Novo Nome"})

	var got models.Property
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), "Novo Nome", got.Name)
}

func (suite *AdminPropertyHandlerTestSuite) TestUpdateProperty_NotFound() {
	suite.mockPropertySv.EXPECT().Update(uint(5), gomock.Any()).Return(nil, apperrors.ErrPropertyNotFound)

	recorder := suite.http.MakeRequest(http.MethodPut, "/admin/properties/5", map[string]string{"name": "Novo Nome"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound)
}

func (suite *AdminPropertyHandlerTestSuite) TestDeleteProperty_Success() {
	suite.mockPropertySv.EXPECT().Delete(gomock.Any(), uint(5)).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/admin/properties/5", nil)

	var got map[string]string
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Contains(suite.T(), got["message"], "deleted")
}

func (suite *AdminPropertyHandlerTestSuite) TestDeleteProperty_InvalidID() {
	recorder := suite.http.MakeRequest(http.MethodDelete, "/admin/properties/0", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest)
}

func TestAdminPropertyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AdminPropertyHandlerTestSuite))
}
