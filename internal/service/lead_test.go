package service_test

import (
	"errors"
	"testing"

	"homefinder-backend/internal/database/models"
	apperrors "homefinder-backend/internal/errors"
	"homefinder-backend/internal/mocks"
	"homefinder-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LeadServiceTestSuite defines the test suite for LeadService
type LeadServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockLeadRepositoryInterface
	leadService *service.LeadService
}

// SetupTest sets up the test suite
func (suite *LeadServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.leadService = service.NewLeadService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *LeadServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validLeadRequest() *service.SubmitLeadRequest {
	return &service.SubmitLeadRequest{
		Name:    "Maria Silva",
		Email:   "maria.silva@example.com",
		Phone:   "+55 11 98765-4321",
		Message: "Gostaria de agendar uma visita.",
	}
}

func (suite *LeadServiceTestSuite) TestSubmitValidation() {
	tests := []struct {
		name   string
		mutate func(req *service.SubmitLeadRequest)
		field  string
	}{
		{
			name:   "missing name",
			mutate: func(req *service.SubmitLeadRequest) { req.Name = "   " },
			field:  "name",
		},
		{
			name:   "missing email",
			mutate: func(req *service.SubmitLeadRequest) { req.Email = "" },
			field:  "email",
		},
		{
			name:   "missing phone",
			mutate: func(req *service.SubmitLeadRequest) { req.Phone = "" },
			field:  "phone",
		},
		{
			name:   "malformed email",
			mutate: func(req *service.SubmitLeadRequest) { req.Email = "not-an-email" },
			field:  "email",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := validLeadRequest()
			tt.mutate(req)

			_, err := suite.leadService.Submit(req)

			var validationErr *apperrors.ValidationError
			suite.Require().ErrorAs(err, &validationErr)
			suite.Equal(tt.field, validationErr.Field)
		})
	}
}

func (suite *LeadServiceTestSuite) TestSubmitNormalizesAndReadsBack() {
	req := validLeadRequest()
	req.Email = "  Maria.Silva@Example.COM "
	req.Name = " Maria Silva "

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(lead *models.Lead) error {
		suite.Equal("Maria Silva", lead.Name)
		suite.Equal("maria.silva@example.com", lead.Email)
		suite.Equal(models.LeadStatusNew, lead.Status)
		suite.Require().NotNil(lead.Message)
		suite.Equal("Gostaria de agendar uma visita.", *lead.Message)
		lead.ID = 42
		return nil
	})
	stored := &models.Lead{BaseModel: models.BaseModel{ID: 42}, Name: "Maria Silva"}
	suite.mockRepo.EXPECT().GetByID(uint(42)).Return(stored, nil)

	lead, err := suite.leadService.Submit(req)

	suite.NoError(err)
	suite.Equal(stored, lead)
}

func (suite *LeadServiceTestSuite) TestSubmitOmitsBlankMessage() {
	req := validLeadRequest()
	req.Message = "   "

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(lead *models.Lead) error {
		suite.Nil(lead.Message)
		lead.ID = 7
		return nil
	})
	suite.mockRepo.EXPECT().GetByID(uint(7)).Return(&models.Lead{BaseModel: models.BaseModel{ID: 7}}, nil)

	_, err := suite.leadService.Submit(req)

	suite.NoError(err)
}

func (suite *LeadServiceTestSuite) TestSubmitCreateFailure() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("connection refused"))

	_, err := suite.leadService.Submit(validLeadRequest())

	var upstreamErr *apperrors.UpstreamError
	suite.ErrorAs(err, &upstreamErr)
}

func (suite *LeadServiceTestSuite) TestListAll() {
	leads := []models.Lead{
		{BaseModel: models.BaseModel{ID: 2}, Name: "Ana"},
		{BaseModel: models.BaseModel{ID: 1}, Name: "Bruno"},
	}
	suite.mockRepo.EXPECT().GetAll().Return(leads, nil)

	got, err := suite.leadService.ListAll()

	suite.NoError(err)
	suite.Equal(leads, got)
}

func (suite *LeadServiceTestSuite) TestListAllFailure() {
	suite.mockRepo.EXPECT().GetAll().Return(nil, errors.New("connection refused"))

	_, err := suite.leadService.ListAll()

	var upstreamErr *apperrors.UpstreamError
	suite.ErrorAs(err, &upstreamErr)
}

// TestLeadServiceTestSuite runs the test suite
func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}
