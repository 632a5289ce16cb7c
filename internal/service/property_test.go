package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "homefinder-backend/internal/errors"
	"homefinder-backend/internal/database/models"
	"homefinder-backend/internal/mocks"
	"homefinder-backend/internal/repository"
	"homefinder-backend/internal/service"
	"homefinder-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PropertyServiceTestSuite defines the test suite for PropertyService
type PropertyServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockPropertyRepositoryInterface
	mockLocationRepo *mocks.MockLocationRepositoryInterface
	mockAmenityRepo  *mocks.MockAmenityRepositoryInterface
	mockStorage      *mocks.MockObjectStorage
	propertyService  *service.PropertyService
}

// SetupTest sets up the test suite
func (suite *PropertyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPropertyRepositoryInterface(suite.ctrl)
	suite.mockLocationRepo = mocks.NewMockLocationRepositoryInterface(suite.ctrl)
	suite.mockAmenityRepo = mocks.NewMockAmenityRepositoryInterface(suite.ctrl)
	suite.mockStorage = mocks.NewMockObjectStorage(suite.ctrl)
	suite.propertyService = service.NewPropertyService(
		suite.mockRepo,
		suite.mockLocationRepo,
		suite.mockAmenityRepo,
		suite.mockStorage,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *PropertyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PropertyServiceTestSuite) validCreateRequest() *service.CreatePropertyRequest {
	neighborhoodID := uint(3)
	return &service.CreatePropertyRequest{
		Name:           "Residencial Aurora",
		NeighborhoodID: &neighborhoodID,
		Bedrooms:       2,
		AreaMin:        60,
		PriceMin:       500000,
	}
}

func (suite *PropertyServiceTestSuite) TestCreateValidation() {
	testCases := []struct {
		name    string
		mutate  func(*service.CreatePropertyRequest)
		field   string
	}{
		{
			name:   "Missing name",
			mutate: func(r *service.CreatePropertyRequest) { r.Name = "   " },
			field:  "name",
		},
		{
			name:   "Zero minimum price",
			mutate: func(r *service.CreatePropertyRequest) { r.PriceMin = 0 },
			field:  "price_min",
		},
		{
			name: "Maximum price below minimum",
			mutate: func(r *service.CreatePropertyRequest) {
				max := 400000.0
				r.PriceMax = &max
			},
			field: "price_max",
		},
		{
			name: "Maximum area below minimum",
			mutate: func(r *service.CreatePropertyRequest) {
				max := 10.0
				r.AreaMax = &max
			},
			field: "area_max",
		},
		{
			name:   "Negative bedrooms",
			mutate: func(r *service.CreatePropertyRequest) { r.Bedrooms = -1 },
			field:  "counts",
		},
		{
			name:   "Unknown status",
			mutate: func(r *service.CreatePropertyRequest) { r.Status = "sold_out" },
			field:  "status",
		},
		{
			name:   "Unknown property type",
			mutate: func(r *service.CreatePropertyRequest) { r.PropertyType = "castle" },
			field:  "property_type",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := suite.validCreateRequest()
			tc.mutate(req)

			_, err := suite.propertyService.Create(context.Background(), req, nil)

			suite.Require().Error(err)
			var validationErr *apperrors.ValidationError
			suite.Require().ErrorAs(err, &validationErr)
			suite.Equal(tc.field, validationErr.Field)
		})
	}
}

func (suite *PropertyServiceTestSuite) TestCreateMissingNeighborhood() {
	req := suite.validCreateRequest()
	req.NeighborhoodID = nil

	_, err := suite.propertyService.Create(context.Background(), req, nil)

	suite.ErrorIs(err, apperrors.ErrNeighborhoodMissing)
}

func (suite *PropertyServiceTestSuite) TestCreateSuccess() {
	req := suite.validCreateRequest()

	suite.mockRepo.EXPECT().SlugExists("residencial-aurora").Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Property) error {
		suite.Equal("Residencial Aurora", p.Name)
		suite.Equal("residencial-aurora", p.Slug)
		suite.Equal(models.PropertyStatusLaunching, p.Status)
		suite.Equal(models.PropertyTypeApartment, p.PropertyType)
		p.ID = 10
		return nil
	})
	stored := &models.Property{BaseModel: models.BaseModel{ID: 10}, Name: "Residencial Aurora", Slug: "residencial-aurora"}
	suite.mockRepo.EXPECT().GetByID(uint(10)).Return(stored, nil)

	result, err := suite.propertyService.Create(context.Background(), req, nil)

	suite.Require().NoError(err)
	suite.Equal(stored, result.Property)
	suite.Empty(result.Warnings)
}

func (suite *PropertyServiceTestSuite) TestCreateSlugCollision() {
	req := suite.validCreateRequest()

	gomock.InOrder(
		suite.mockRepo.EXPECT().SlugExists("residencial-aurora").Return(true, nil),
		suite.mockRepo.EXPECT().SlugExists("residencial-aurora-1").Return(true, nil),
		suite.mockRepo.EXPECT().SlugExists("residencial-aurora-2").Return(false, nil),
	)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Property) error {
		suite.Equal("residencial-aurora-2", p.Slug)
		p.ID = 11
		return nil
	})
	suite.mockRepo.EXPECT().GetByID(uint(11)).Return(&models.Property{BaseModel: models.BaseModel{ID: 11}}, nil)

	_, err := suite.propertyService.Create(context.Background(), req, nil)

	suite.NoError(err)
}

func (suite *PropertyServiceTestSuite) TestCreateResolvesNeighborhoodByName() {
	req := suite.validCreateRequest()
	req.NeighborhoodID = nil
	cityID := uint(5)
	req.CityID = &cityID
	req.NeighborhoodName = "Jardim Europa"

	suite.mockLocationRepo.EXPECT().
		FindOrCreateNeighborhood("Jardim Europa", uint(5)).
		Return(&models.Neighborhood{BaseModel: models.BaseModel{ID: 44}}, nil)
	suite.mockRepo.EXPECT().SlugExists(gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Property) error {
		suite.Equal(uint(44), p.NeighborhoodID)
		p.ID = 12
		return nil
	})
	suite.mockRepo.EXPECT().GetByID(uint(12)).Return(&models.Property{BaseModel: models.BaseModel{ID: 12}}, nil)

	_, err := suite.propertyService.Create(context.Background(), req, nil)

	suite.NoError(err)
}

func (suite *PropertyServiceTestSuite) TestCreateImageFailureIsWarning() {
	req := suite.validCreateRequest()
	images := []storage.ImageUpload{{Filename: "front.jpg", ContentType: "image/jpeg", Data: []byte{0xff}}}

	suite.mockRepo.EXPECT().SlugExists(gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Property) error {
		p.ID = 13
		return nil
	})
	suite.mockStorage.EXPECT().
		UploadPropertyImages(gomock.Any(), uint(13), images).
		Return(nil, errors.New("bucket unavailable"))
	suite.mockRepo.EXPECT().GetByID(uint(13)).Return(&models.Property{BaseModel: models.BaseModel{ID: 13}}, nil)

	result, err := suite.propertyService.Create(context.Background(), req, images)

	suite.Require().NoError(err)
	suite.Require().Len(result.Warnings, 1)
	suite.Contains(result.Warnings[0], "images not saved")
}

func (suite *PropertyServiceTestSuite) TestCreateStoresImageRowsInOrder() {
	req := suite.validCreateRequest()
	images := []storage.ImageUpload{
		{Filename: "front.jpg", ContentType: "image/jpeg", Data: []byte{0x01}},
		{Filename: "back.jpg", ContentType: "image/jpeg", Data: []byte{0x02}},
	}
	urls := []string{"https://cdn.example.com/f.jpg", "https://cdn.example.com/b.jpg"}

	suite.mockRepo.EXPECT().SlugExists(gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Property) error {
		p.ID = 14
		return nil
	})
	suite.mockStorage.EXPECT().UploadPropertyImages(gomock.Any(), uint(14), images).Return(urls, nil)
	suite.mockRepo.EXPECT().AddImages(gomock.Any()).DoAndReturn(func(rows []models.PropertyImage) error {
		suite.Require().Len(rows, 2)
		suite.Equal(urls[0], rows[0].URL)
		suite.True(rows[0].IsMain)
		suite.Equal(1, rows[0].DisplayOrder)
		suite.False(rows[1].IsMain)
		suite.Equal(2, rows[1].DisplayOrder)
		return nil
	})
	suite.mockRepo.EXPECT().GetByID(uint(14)).Return(&models.Property{BaseModel: models.BaseModel{ID: 14}}, nil)

	result, err := suite.propertyService.Create(context.Background(), req, images)

	suite.Require().NoError(err)
	suite.Empty(result.Warnings)
}

func (suite *PropertyServiceTestSuite) TestCreateAmenityFailureIsWarning() {
	req := suite.validCreateRequest()
	req.Amenities = []uint{1, 2}

	suite.mockRepo.EXPECT().SlugExists(gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Property) error {
		p.ID = 15
		return nil
	})
	suite.mockAmenityRepo.EXPECT().GetByIDs([]uint{1, 2}).Return([]models.Amenity{
		{BaseModel: models.BaseModel{ID: 1}},
		{BaseModel: models.BaseModel{ID: 2}},
	}, nil)
	suite.mockRepo.EXPECT().AddAmenityLinks(uint(15), []uint{1, 2}).Return(errors.New("constraint violation"))
	suite.mockRepo.EXPECT().GetByID(uint(15)).Return(&models.Property{BaseModel: models.BaseModel{ID: 15}}, nil)

	result, err := suite.propertyService.Create(context.Background(), req, nil)

	suite.Require().NoError(err)
	suite.Require().Len(result.Warnings, 1)
	suite.Contains(result.Warnings[0], "amenities not saved")
}

func (suite *PropertyServiceTestSuite) TestCreateSkipsUnknownAmenityIDs() {
	req := suite.validCreateRequest()
	req.Amenities = []uint{1, 99, 2}

	suite.mockRepo.EXPECT().SlugExists(gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Property) error {
		p.ID = 17
		return nil
	})
	suite.mockAmenityRepo.EXPECT().GetByIDs([]uint{1, 99, 2}).Return([]models.Amenity{
		{BaseModel: models.BaseModel{ID: 1}},
		{BaseModel: models.BaseModel{ID: 2}},
	}, nil)
	// Only the ids that exist get linked
	suite.mockRepo.EXPECT().AddAmenityLinks(uint(17), []uint{1, 2}).Return(nil)
	suite.mockRepo.EXPECT().GetByID(uint(17)).Return(&models.Property{BaseModel: models.BaseModel{ID: 17}}, nil)

	result, err := suite.propertyService.Create(context.Background(), req, nil)

	suite.Require().NoError(err)
	suite.Require().Len(result.Warnings, 1)
	suite.Contains(result.Warnings[0], "unknown amenity ids")
	suite.Contains(result.Warnings[0], "99")
}

func (suite *PropertyServiceTestSuite) TestCreateNoKnownAmenitiesSkipsLinking() {
	req := suite.validCreateRequest()
	req.Amenities = []uint{98, 99}

	suite.mockRepo.EXPECT().SlugExists(gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Property) error {
		p.ID = 18
		return nil
	})
	suite.mockAmenityRepo.EXPECT().GetByIDs([]uint{98, 99}).Return(nil, nil)
	// No AddAmenityLinks expectation: nothing valid remains to link
	suite.mockRepo.EXPECT().GetByID(uint(18)).Return(&models.Property{BaseModel: models.BaseModel{ID: 18}}, nil)

	result, err := suite.propertyService.Create(context.Background(), req, nil)

	suite.Require().NoError(err)
	suite.Require().Len(result.Warnings, 1)
	suite.Contains(result.Warnings[0], "unknown amenity ids")
}

func (suite *PropertyServiceTestSuite) TestCreateAmenityLookupFailureIsWarning() {
	req := suite.validCreateRequest()
	req.Amenities = []uint{1}

	suite.mockRepo.EXPECT().SlugExists(gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Property) error {
		p.ID = 19
		return nil
	})
	suite.mockAmenityRepo.EXPECT().GetByIDs([]uint{1}).Return(nil, errors.New("connection refused"))
	suite.mockRepo.EXPECT().GetByID(uint(19)).Return(&models.Property{BaseModel: models.BaseModel{ID: 19}}, nil)

	result, err := suite.propertyService.Create(context.Background(), req, nil)

	suite.Require().NoError(err)
	suite.Require().Len(result.Warnings, 1)
	suite.Contains(result.Warnings[0], "amenities not saved")
}

func (suite *PropertyServiceTestSuite) TestCreateSkipsApartmentDetailsForHouse() {
	req := suite.validCreateRequest()
	req.PropertyType = models.PropertyTypeHouse
	req.ApartmentDetails = &service.ApartmentDetailsRequest{}

	suite.mockRepo.EXPECT().SlugExists(gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Property) error {
		p.ID = 16
		return nil
	})
	// No CreateApartmentDetails expectation: the call must not happen
	suite.mockRepo.EXPECT().GetByID(uint(16)).Return(&models.Property{BaseModel: models.BaseModel{ID: 16}}, nil)

	_, err := suite.propertyService.Create(context.Background(), req, nil)

	suite.NoError(err)
}

func (suite *PropertyServiceTestSuite) TestUpdateNotFound() {
	name := "Novo Nome"
	suite.mockRepo.EXPECT().Update(uint(99), gomock.Any()).Return(gorm.ErrRecordNotFound)

	_, err := suite.propertyService.Update(99, &service.UpdatePropertyRequest{Name: &name})

	suite.ErrorIs(err, apperrors.ErrPropertyNotFound)
}

func (suite *PropertyServiceTestSuite) TestUpdateAppliesOnlyPresentFields() {
	name := "  Novo Nome  "
	featured := true

	suite.mockRepo.EXPECT().Update(uint(7), gomock.Any()).DoAndReturn(func(id uint, updates map[string]interface{}) error {
		suite.Equal(map[string]interface{}{
			"name":     "Novo Nome",
			"featured": true,
		}, updates)
		return nil
	})
	suite.mockRepo.EXPECT().GetByID(uint(7)).Return(&models.Property{BaseModel: models.BaseModel{ID: 7}}, nil)

	updated, err := suite.propertyService.Update(7, &service.UpdatePropertyRequest{Name: &name, Featured: &featured})

	suite.NoError(err)
	suite.Equal(uint(7), updated.ID)
}

func (suite *PropertyServiceTestSuite) TestUpdateRejectsZeroPrice() {
	price := 0.0

	_, err := suite.propertyService.Update(7, &service.UpdatePropertyRequest{PriceMin: &price})

	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Equal("price_min", validationErr.Field)
}

func (suite *PropertyServiceTestSuite) TestDeleteNotFound() {
	suite.mockRepo.EXPECT().GetByID(uint(50)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.propertyService.Delete(context.Background(), 50)

	suite.ErrorIs(err, apperrors.ErrPropertyNotFound)
}

func (suite *PropertyServiceTestSuite) TestDeleteRemovesDependentsFirst() {
	property := &models.Property{BaseModel: models.BaseModel{ID: 50}}
	suite.mockRepo.EXPECT().GetByID(uint(50)).Return(property, nil)

	gomock.InOrder(
		suite.mockStorage.EXPECT().DeletePropertyImages(gomock.Any(), uint(50)).Return(nil),
		suite.mockRepo.EXPECT().DeleteImages(uint(50)).Return(nil),
		suite.mockRepo.EXPECT().DeleteAmenityLinks(uint(50)).Return(nil),
		suite.mockRepo.EXPECT().DeleteApartmentDetails(uint(50)).Return(nil),
		suite.mockRepo.EXPECT().Delete(uint(50)).Return(nil),
	)

	err := suite.propertyService.Delete(context.Background(), 50)

	suite.NoError(err)
}

func (suite *PropertyServiceTestSuite) TestDeleteContinuesPastStorageFailure() {
	property := &models.Property{BaseModel: models.BaseModel{ID: 51}}
	suite.mockRepo.EXPECT().GetByID(uint(51)).Return(property, nil)

	suite.mockStorage.EXPECT().DeletePropertyImages(gomock.Any(), uint(51)).Return(errors.New("bucket gone"))
	suite.mockRepo.EXPECT().DeleteImages(uint(51)).Return(nil)
	suite.mockRepo.EXPECT().DeleteAmenityLinks(uint(51)).Return(nil)
	suite.mockRepo.EXPECT().DeleteApartmentDetails(uint(51)).Return(nil)
	suite.mockRepo.EXPECT().Delete(uint(51)).Return(nil)

	err := suite.propertyService.Delete(context.Background(), 51)

	suite.NoError(err)
}

func (suite *PropertyServiceTestSuite) TestGetBySlugPathNotFound() {
	suite.mockRepo.EXPECT().
		GetBySlugPath("sao-paulo", "sao-paulo", "moema", "residencial-x").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.propertyService.GetBySlugPath("sao-paulo", "sao-paulo", "moema", "residencial-x")

	suite.ErrorIs(err, apperrors.ErrPropertyNotFound)
}

func (suite *PropertyServiceTestSuite) TestListPublicDegradesToEmpty() {
	suite.mockRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

	properties := suite.propertyService.ListPublic(repository.PropertyFilter{})

	suite.NotNil(properties)
	suite.Empty(properties)
}

// TestPropertyServiceTestSuite runs the test suite
func TestPropertyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyServiceTestSuite))
}
