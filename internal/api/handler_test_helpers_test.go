package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/property-docs-api/internal/api/dto"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/utils"
)

type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) List(ctx context.Context, identity *domain.Identity, category string) ([]dto.TemplateResponse, error) {
	args := m.Called(ctx, identity, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TemplateResponse), args.Error(1)
}

func (m *MockTemplateService) GetByID(ctx context.Context, identity *domain.Identity, id string) (*dto.TemplateResponse, error) {
	args := m.Called(ctx, identity, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TemplateResponse), args.Error(1)
}

func (m *MockTemplateService) Variables() []dto.VariableResponse {
	args := m.Called()
	return args.Get(0).([]dto.VariableResponse)
}

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Generate(ctx context.Context, identity *domain.Identity, templateID string, req dto.GenerateDocumentRequest) (*dto.GenerateDocumentResponse, error) {
	args := m.Called(ctx, identity, templateID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GenerateDocumentResponse), args.Error(1)
}

func (m *MockDocumentService) GetByID(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DocumentResponse), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, filter *domain.DocumentFilter) ([]dto.DocumentResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DocumentResponse), args.Error(1)
}

func (m *MockDocumentService) Search(ctx context.Context, filter *domain.DocumentFilter) ([]dto.DocumentSearchHit, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DocumentSearchHit), args.Error(1)
}

func (m *MockDocumentService) ScheduleCleanup(ctx context.Context, userID string, beforeDate time.Time) error {
	args := m.Called(ctx, userID, beforeDate)
	return args.Error(0)
}

var testLandlord = &domain.Identity{
	ID:       "landlord-1",
	UserType: domain.UserTypeLandlord,
	Name:     "John Smith",
	Email:    "john@example.com",
}

// withIdentity stands in for the auth middleware.
func withIdentity(identity *domain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(utils.IdentityKey), identity)
		c.Next()
	}
}

func isLandlord(identity *domain.Identity) bool {
	return identity != nil && identity.ID == testLandlord.ID
}
