package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueSessionToken generates the storefront's own session JWT once the
// provider has asserted the identity.
func IssueSessionToken(secret []byte, u *UserRecord, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.UID,
		"email":   u.Email,
		"role":    role,
		"name":    u.DisplayName,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
