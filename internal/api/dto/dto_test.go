package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/templating"
)

func TestGenerateDocumentRequest_SaveToDocuments(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"missing", `{"propertyId":"p"}`, true},
		{"true", `{"propertyId":"p","saveToDocuments":true}`, true},
		{"false", `{"propertyId":"p","saveToDocuments":false}`, false},
		{"null", `{"propertyId":"p","saveToDocuments":null}`, true},
		{"string false", `{"propertyId":"p","saveToDocuments":"false"}`, true},
		{"zero", `{"propertyId":"p","saveToDocuments":0}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req GenerateDocumentRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.SaveToDocuments.ShouldSave())
		})
	}
}

func TestGenerateDocumentRequest_Decode(t *testing.T) {
	body := `{
		"propertyId": "prop-1",
		"tenantId": "tenant-1",
		"title": "Notice",
		"shareWithTenant": true,
		"customVariables": {"leaseEndDate": "December 31, 2027", "fee": 75}
	}`

	var req GenerateDocumentRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "prop-1", req.PropertyID)
	assert.Equal(t, "tenant-1", req.TenantID)
	assert.Equal(t, "Notice", req.Title)
	assert.True(t, req.ShareWithTenant)
	assert.Equal(t, templating.CustomVariables{
		{Key: "leaseEndDate", Value: "December 31, 2027"},
		{Key: "fee", Value: "75"},
	}, req.CustomVariables)
}

func TestNewGenerateDocumentResponse_NullTenantAndDocument(t *testing.T) {
	tmpl := &domain.Template{ID: "t-1", Name: "Notice", Category: "notice", Content: "secret body"}
	property := &domain.Property{ID: "p-1", Address: "123 Main St", City: "Austin", State: "TX", ZipCode: "78701"}

	resp := NewGenerateDocumentResponse("Notice", "<html></html>", tmpl, property, nil, nil)
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"title": "Notice",
		"content": "<html></html>",
		"template": {"id": "t-1", "name": "Notice", "category": "notice"},
		"property": {"id": "p-1", "address": "123 Main St", "city": "Austin", "state": "TX"},
		"tenant": null,
		"savedDocument": null
	}`, string(data))
}

func TestNewGenerateDocumentResponse_WithTenantAndDocument(t *testing.T) {
	tmpl := &domain.Template{ID: "t-1", Name: "Notice", Category: "notice"}
	property := &domain.Property{ID: "p-1", Address: "123 Main St"}
	tenant := &domain.Tenant{ID: "te-1", Name: "Jane Doe", Email: "jane@example.com", Phone: "555"}
	saved := &domain.Document{ID: "d-1", Name: "Notice", FileURL: "data:..."}

	resp := NewGenerateDocumentResponse("Notice", "<html></html>", tmpl, property, tenant, saved)

	require.NotNil(t, resp.Tenant)
	assert.Equal(t, TenantSummary{ID: "te-1", Name: "Jane Doe", Email: "jane@example.com"}, *resp.Tenant)
	require.NotNil(t, resp.SavedDocument)
	assert.Equal(t, SavedDocumentSummary{ID: "d-1", Name: "Notice"}, *resp.SavedDocument)
}

func TestFromDocuments_OmitsPayload(t *testing.T) {
	templateID := "t-1"
	docs := []domain.Document{{ID: "d-1", FileURL: "data:text/html;base64,AAAA", TemplateID: &templateID}}

	list := FromDocuments(docs)
	detail := FromDocument(&docs[0], true)

	assert.Empty(t, list[0].FileURL)
	assert.Equal(t, "t-1", list[0].TemplateID)
	assert.Equal(t, "data:text/html;base64,AAAA", detail.FileURL)
}
