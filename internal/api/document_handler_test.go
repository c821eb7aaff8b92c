package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/property-docs-api/internal/api/dto"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/service"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

type DocumentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockDocumentService
	handler     *DocumentHandler
	now         time.Time
}

func (s *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockDocumentService)
	s.handler = NewDocumentHandler(s.mockService, logger.NewNop())
	s.now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	s.handler.now = func() time.Time { return s.now }

	authed := s.router.Group("", withIdentity(testLandlord))
	authed.POST("/document-templates/:id/generate", s.handler.GenerateDocument)
	authed.GET("/documents", s.handler.ListDocuments)
	authed.GET("/documents/:id", s.handler.GetDocument)
	authed.DELETE("/documents/cleanup", s.handler.Cleanup)

	anon := s.router.Group("/anon")
	anon.POST("/document-templates/:id/generate", s.handler.GenerateDocument)
	anon.GET("/documents", s.handler.ListDocuments)
	anon.DELETE("/documents/cleanup", s.handler.Cleanup)
}

func (s *DocumentHandlerTestSuite) TearDownTest() {
	s.mockService.AssertExpectations(s.T())
}

func TestDocumentHandler(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}

func (s *DocumentHandlerTestSuite) serve(method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	s.router.ServeHTTP(w, req)
	return w
}

func (s *DocumentHandlerTestSuite) TestGenerateDocument_Success() {
	body := []byte(`{
		"propertyId": "prop-1",
		"tenantId": "tenant-1",
		"title": "Custom Title",
		"shareWithTenant": true,
		"customVariables": {"late_fee": 75}
	}`)
	resp := &dto.GenerateDocumentResponse{
		Title:         "Custom Title",
		Content:       "<!DOCTYPE html>",
		Template:      dto.TemplateSummary{ID: "tmpl-1", Name: "Late Rent Notice", Category: "notice"},
		Property:      dto.PropertySummary{ID: "prop-1", Address: "123 Main St", City: "Austin", State: "TX"},
		Tenant:        &dto.TenantSummary{ID: "tenant-1", Name: "Jane Doe", Email: "jane@example.com"},
		SavedDocument: &dto.SavedDocumentSummary{ID: "doc-1", Name: "Custom Title"},
	}

	s.mockService.On("Generate", mock.Anything, mock.MatchedBy(isLandlord), "tmpl-1",
		mock.MatchedBy(func(req dto.GenerateDocumentRequest) bool {
			return req.PropertyID == "prop-1" &&
				req.TenantID == "tenant-1" &&
				req.Title == "Custom Title" &&
				req.ShareWithTenant &&
				req.SaveToDocuments.ShouldSave()
		})).Return(resp, nil)

	w := s.serve(http.MethodPost, "/document-templates/tmpl-1/generate", body)

	s.Equal(http.StatusCreated, w.Code)
	var got dto.GenerateDocumentResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal(*resp, got)
}

func (s *DocumentHandlerTestSuite) TestGenerateDocument_SkipSave() {
	s.mockService.On("Generate", mock.Anything, mock.Anything, "tmpl-1",
		mock.MatchedBy(func(req dto.GenerateDocumentRequest) bool {
			return !req.SaveToDocuments.ShouldSave()
		})).Return(&dto.GenerateDocumentResponse{Title: "Notice"}, nil)

	w := s.serve(http.MethodPost, "/document-templates/tmpl-1/generate",
		[]byte(`{"propertyId":"prop-1","saveToDocuments":false}`))

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), `"tenant":null`)
	s.Contains(w.Body.String(), `"savedDocument":null`)
}

func (s *DocumentHandlerTestSuite) TestGenerateDocument_InvalidJSON() {
	w := s.serve(http.MethodPost, "/document-templates/tmpl-1/generate", []byte(`{"propertyId":`))

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"Invalid request body"}`, w.Body.String())

	w = s.serve(http.MethodPost, "/document-templates/tmpl-1/generate", []byte(`{"propertyId":42}`))

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"Invalid request body"}`, w.Body.String())
	s.NotContains(w.Body.String(), "GenerateDocumentRequest")
	s.mockService.AssertNotCalled(s.T(), "Generate")
}

func (s *DocumentHandlerTestSuite) TestGenerateDocument_CustomVariablesNotObject() {
	w := s.serve(http.MethodPost, "/document-templates/tmpl-1/generate", []byte(`{"propertyId":"prop-1","customVariables":["a"]}`))

	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"customVariables must be a JSON object"}`, w.Body.String())
	s.mockService.AssertNotCalled(s.T(), "Generate")
}

func (s *DocumentHandlerTestSuite) TestGenerateDocument_ErrorStatuses() {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not authenticated", service.ErrNotAuthenticated, http.StatusUnauthorized, "not authenticated"},
		{"not a landlord", service.ErrNotLandlord, http.StatusForbidden, "unauthorized"},
		{"property id missing", service.ErrPropertyIDRequired, http.StatusBadRequest, "property ID is required"},
		{"template missing", service.ErrTemplateNotFound, http.StatusNotFound, service.ErrTemplateNotFound.Error()},
		{"template not usable", service.ErrTemplateAccessDenied, http.StatusForbidden, "unauthorized to use this template"},
		{"property missing", service.ErrPropertyNotFound, http.StatusNotFound, service.ErrPropertyNotFound.Error()},
		{"property not owned", service.ErrPropertyAccessDenied, http.StatusForbidden, "unauthorized to use this property"},
		{"tenant mismatch", service.ErrTenantNotAssociated, http.StatusNotFound, "tenant not found or not associated with property"},
		{"store failure", errors.New("insert failed: connection refused"), http.StatusInternalServerError, "Failed to generate document"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.mockService.On("Generate", mock.Anything, mock.Anything, "tmpl-1", mock.Anything).Return(nil, tt.err)

			w := s.serve(http.MethodPost, "/document-templates/tmpl-1/generate", []byte(`{"propertyId":"prop-1"}`))

			s.Equal(tt.status, w.Code)
			var got dto.Error
			s.NoError(json.Unmarshal(w.Body.Bytes(), &got))
			s.Equal(tt.message, got.Error)
			s.mockService.AssertExpectations(s.T())
		})
	}
}

func (s *DocumentHandlerTestSuite) TestGenerateDocument_NoIdentityReachesService() {
	s.mockService.On("Generate", mock.Anything, (*domain.Identity)(nil), "tmpl-1", mock.Anything).
		Return(nil, service.ErrNotAuthenticated)

	w := s.serve(http.MethodPost, "/anon/document-templates/tmpl-1/generate", []byte(`{"propertyId":"prop-1"}`))

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *DocumentHandlerTestSuite) TestListDocuments_UsesDatabaseWithoutQuery() {
	docs := []dto.DocumentResponse{{ID: "doc-1", Name: "Lease Renewal"}}
	s.mockService.On("List", mock.Anything, mock.MatchedBy(func(f *domain.DocumentFilter) bool {
		return f.UserID == "landlord-1" &&
			f.PropertyID == "prop-1" &&
			f.Category == "lease" &&
			f.Page == 2 &&
			f.PageSize == 5 &&
			f.StartTime.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.EndTime.Equal(time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC))
	})).Return(docs, nil)

	w := s.serve(http.MethodGet, "/documents?property_id=prop-1&category=lease&page=2&page_size=5&start_time=2026-01-01&end_time=2026-01-31", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"id":"doc-1"`)
	s.mockService.AssertNotCalled(s.T(), "Search", mock.Anything, mock.Anything)
}

func (s *DocumentHandlerTestSuite) TestListDocuments_SearchesWithQuery() {
	hits := []dto.DocumentSearchHit{{DocumentID: "doc-1", Title: "Late Rent Notice"}}
	s.mockService.On("Search", mock.Anything, mock.MatchedBy(func(f *domain.DocumentFilter) bool {
		return f.UserID == "landlord-1" && f.Query == "late rent"
	})).Return(hits, nil)

	w := s.serve(http.MethodGet, "/documents?q=late+rent", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"documentId":"doc-1"`)
}

func (s *DocumentHandlerTestSuite) TestListDocuments_BadTimeRange() {
	w := s.serve(http.MethodGet, "/documents?start_time=2026-02-01&end_time=2026-01-01", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"start_time must be before end_time"}`, w.Body.String())

	w = s.serve(http.MethodGet, "/documents?start_time=yesterday", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"start_time and end_time must be RFC3339 or YYYY-MM-DD"}`, w.Body.String())
}

func (s *DocumentHandlerTestSuite) TestListDocuments_Unauthenticated() {
	w := s.serve(http.MethodGet, "/anon/documents", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *DocumentHandlerTestSuite) TestGetDocument() {
	s.mockService.On("GetByID", mock.Anything, "doc-1").Return(&dto.DocumentResponse{ID: "doc-1"}, nil)
	s.mockService.On("GetByID", mock.Anything, "doc-2").Return(nil, service.ErrDocumentNotFound)

	s.Equal(http.StatusOK, s.serve(http.MethodGet, "/documents/doc-1", nil).Code)
	s.Equal(http.StatusNotFound, s.serve(http.MethodGet, "/documents/doc-2", nil).Code)
}

func (s *DocumentHandlerTestSuite) TestCleanup_Success() {
	before := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.mockService.On("ScheduleCleanup", mock.Anything, "landlord-1", before).Return(nil)

	w := s.serve(http.MethodDelete, "/documents/cleanup?before_date=2026-01-01", nil)

	s.Equal(http.StatusAccepted, w.Code)
	s.JSONEq(`{"message":"Cleanup scheduled","beforeDate":"2026-01-01T00:00:00Z"}`, w.Body.String())
}

func (s *DocumentHandlerTestSuite) TestCleanup_Validation() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"missing date", "/documents/cleanup", http.StatusBadRequest},
		{"bad date", "/documents/cleanup?before_date=01/01/2026", http.StatusBadRequest},
		{"future date", "/documents/cleanup?before_date=2027-01-01", http.StatusBadRequest},
		{"anonymous", "/anon/documents/cleanup?before_date=2026-01-01", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.serve(http.MethodDelete, tt.path, nil)
			s.Equal(tt.status, w.Code)
			s.NotContains(w.Body.String(), "01/01/2026")
		})
	}
	s.mockService.AssertNotCalled(s.T(), "ScheduleCleanup", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DocumentHandlerTestSuite) TestCleanup_QueueFailure() {
	s.mockService.On("ScheduleCleanup", mock.Anything, "landlord-1", mock.Anything).Return(errors.New("sqs unavailable"))

	w := s.serve(http.MethodDelete, "/documents/cleanup?before_date=2026-01-01", nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.JSONEq(`{"error":"Failed to schedule cleanup"}`, w.Body.String())
}
