package dto

import (
	"bytes"

	"github.com/kingrain94/property-docs-api/internal/templating"
)

// PersistOption says whether a generated document is stored. Only an explicit
// JSON false opts out; a missing field, null or any other value means save.
type PersistOption int

const (
	PersistSave PersistOption = iota
	PersistSkip
)

func (p *PersistOption) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("false")) {
		*p = PersistSkip
	} else {
		*p = PersistSave
	}
	return nil
}

func (p PersistOption) MarshalJSON() ([]byte, error) {
	if p == PersistSkip {
		return []byte("false"), nil
	}
	return []byte("true"), nil
}

func (p PersistOption) ShouldSave() bool {
	return p != PersistSkip
}

type GenerateDocumentRequest struct {
	PropertyID      string                     `json:"propertyId" example:"9b2f6a51-3c4e-4d8a-9f0b-1c2d3e4f5a6b"`
	TenantID        string                     `json:"tenantId" example:"4c1d2e3f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"`
	Title           string                     `json:"title" example:"Late Rent Notice"`
	ShareWithTenant bool                       `json:"shareWithTenant" example:"false"`
	SaveToDocuments PersistOption              `json:"saveToDocuments" swaggertype:"boolean" example:"true"`
	CustomVariables templating.CustomVariables `json:"customVariables" swaggertype:"object,string" example:"leaseEndDate:December 31, 2027"`
}
