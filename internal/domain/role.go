package domain

import "slices"

// UserType is the account kind carried in the caller's token.
type UserType string

const (
	// UserTypeLandlord owns properties and generates documents for them
	UserTypeLandlord UserType = "landlord"

	// UserTypeTenant can view documents shared with them
	UserTypeTenant UserType = "tenant"

	// UserTypeAdmin manages system templates
	UserTypeAdmin UserType = "admin"
)

// ValidUserTypes contains all valid user types in the system
var ValidUserTypes = []UserType{UserTypeLandlord, UserTypeTenant, UserTypeAdmin}

// IsValidUserType checks if a given user type is valid
func IsValidUserType(userType string) bool {
	return slices.Contains(ValidUserTypes, UserType(userType))
}
