package service

import (
	"github.com/kingrain94/property-docs-api/internal/domain"
)

// AuthorizeCaller checks that someone is signed in and that they are a landlord.
func AuthorizeCaller(identity *domain.Identity) error {
	if identity == nil || identity.ID == "" {
		return ErrNotAuthenticated
	}
	if !identity.IsLandlord() {
		return ErrNotLandlord
	}
	return nil
}

// AuthorizeTemplate checks that the template is a system template or belongs to the caller.
func AuthorizeTemplate(identity *domain.Identity, tmpl *domain.Template) error {
	if !tmpl.IsUsableBy(identity.ID) {
		return ErrTemplateAccessDenied
	}
	return nil
}

// Authorize runs the caller and template checks in order and returns the first failure.
func Authorize(identity *domain.Identity, tmpl *domain.Template) error {
	if err := AuthorizeCaller(identity); err != nil {
		return err
	}
	return AuthorizeTemplate(identity, tmpl)
}
