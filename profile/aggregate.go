// Package profile merges provider-owned identity with the locally persisted
// profile extras into the profile view.
package profile

import (
	"encoding/json"
	"strings"

	"github.com/creasty/defaults"

	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

// DecodeExtras parses the persisted extras blob. It is deliberately
// tolerant: a field that is absent or not a string is dropped and later
// filled by its fallback, instead of failing the whole profile. The bool
// reports whether the blob as a whole was usable.
func DecodeExtras(raw []byte) (models.ProfileExtras, bool) {
	var extras models.ProfileExtras
	if len(raw) == 0 {
		return extras, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.ProfileExtras{}, false
	}

	extras.Name = stringField(fields, "name")
	extras.Username = stringField(fields, "username")
	extras.Address = stringField(fields, "address")
	extras.Country = stringField(fields, "country")
	extras.Phone = stringField(fields, "phone")
	extras.ProfileImage = stringField(fields, "profileImage")
	extras.CreatedAt = stringField(fields, "createdAt")

	// A brace in the name means a serialized object leaked into the field.
	if strings.Contains(extras.Name, "{") {
		extras.Name = ""
	}
	return extras, true
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Aggregate builds the profile view for a signed-in session. A nil session
// fails with ErrAuthRequired; everything else degrades field by field. The
// provider display name backfills name and username only when the extras
// lack them.
func Aggregate(session *models.Session, rawExtras []byte, orderCount int) (models.ProfileView, error) {
	if session == nil {
		return models.ProfileView{}, models.ErrAuthRequired
	}

	extras, _ := DecodeExtras(rawExtras)
	if extras.Name == "" {
		extras.Name = session.DisplayName
	}
	if extras.Username == "" {
		extras.Username = session.DisplayName
	}
	// Fill remaining empty fields with their declared fallbacks.
	_ = defaults.Set(&extras)

	return models.ProfileView{
		UID:          session.UID,
		Email:        session.Email,
		Name:         extras.Name,
		Username:     extras.Username,
		Address:      extras.Address,
		Country:      extras.Country,
		Phone:        extras.Phone,
		ProfileImage: extras.ProfileImage,
		CreatedAt:    extras.CreatedAt,
		OrderCount:   orderCount,
	}, nil
}
