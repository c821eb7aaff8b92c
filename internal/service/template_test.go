package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/mocks"
	"github.com/kingrain94/property-docs-api/internal/templating"
)

const (
	systemTemplateID  = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	foreignTemplateID = "2b3c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d6e"
)

type TemplateServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.PostgresRepository
	mockTemplate *mocks.TemplateRepository
	service      *TemplateService
	landlord     *domain.Identity
}

func (s *TemplateServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.PostgresRepository)
	s.mockTemplate = new(mocks.TemplateRepository)
	s.mockRepo.On("Template").Return(s.mockTemplate)

	s.service = NewTemplateService(s.mockRepo)
	s.landlord = &domain.Identity{ID: "landlord-1", UserType: domain.UserTypeLandlord}
}

func TestTemplateService(t *testing.T) {
	suite.Run(t, new(TemplateServiceTestSuite))
}

func (s *TemplateServiceTestSuite) TestList() {
	ctx := context.Background()
	s.mockTemplate.On("ListUsable", ctx, domain.TemplateFilter{UserID: "landlord-1", Category: "notice"}).
		Return([]domain.Template{{ID: systemTemplateID, Name: "Late Rent", IsSystem: true}}, nil)

	result, err := s.service.List(ctx, s.landlord, "notice")

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal(systemTemplateID, result[0].ID)
	s.True(result[0].IsSystem)
}

func (s *TemplateServiceTestSuite) TestList_RequiresLandlord() {
	_, err := s.service.List(context.Background(), &domain.Identity{ID: "u", UserType: domain.UserTypeTenant}, "")

	s.ErrorIs(err, ErrNotLandlord)
}

func (s *TemplateServiceTestSuite) TestGetByID_ForeignTemplate() {
	ctx := context.Background()
	owner := "landlord-2"
	s.mockTemplate.On("GetByID", ctx, foreignTemplateID).Return(&domain.Template{ID: foreignTemplateID, UserID: &owner}, nil)

	_, err := s.service.GetByID(ctx, s.landlord, foreignTemplateID)

	s.ErrorIs(err, ErrTemplateAccessDenied)
}

func (s *TemplateServiceTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()
	s.mockTemplate.On("GetByID", ctx, missingID).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.GetByID(ctx, s.landlord, missingID)

	s.ErrorIs(err, ErrTemplateNotFound)
}

func (s *TemplateServiceTestSuite) TestGetByID_MalformedID() {
	_, err := s.service.GetByID(context.Background(), s.landlord, "missing")

	s.ErrorIs(err, ErrTemplateNotFound)
	s.mockTemplate.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *TemplateServiceTestSuite) TestVariables() {
	vars := s.service.Variables()

	s.Require().Len(vars, len(templating.BuiltinVariables))
	s.Equal("{PROPERTY_ADDRESS}", vars[0].Token)
}
