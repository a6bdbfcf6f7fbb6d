package models

// Session is the authenticated identity as asserted by the identity
// provider. UID and Email are owned by the provider and never written here.
type Session struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// ProfileExtras is the locally owned, mutable part of a profile, persisted
// as a JSON blob in the key-value store. The default tags are the per-field
// fallback values applied when a field is absent or malformed.
type ProfileExtras struct {
	Name         string `json:"name"`
	Username     string `json:"username"`
	Address      string `json:"address" default:"Not provided"`
	Country      string `json:"country" default:"Nigeria"`
	Phone        string `json:"phone" default:"Not provided"`
	ProfileImage string `json:"profileImage,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ProfileView merges the provider-owned identity with the stored extras.
type ProfileView struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Address      string `json:"address"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profileImage,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	OrderCount   int    `json:"orderCount"`
}
