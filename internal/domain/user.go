package domain

// Identity is the authenticated caller as supplied by the identity provider.
type Identity struct {
	ID       string   `json:"id"`
	UserType UserType `json:"user_type"`
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email"`
}

func (i *Identity) IsLandlord() bool {
	return i != nil && i.UserType == UserTypeLandlord
}
