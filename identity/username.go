package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// GenerateUsername derives a display username from a full name, e.g.
// "Emmanuel Chinecherem" -> "emmachi042". The result is a first-name prefix
// plus a last-name prefix plus three random digits. Uniqueness is NOT
// guaranteed; callers must treat this as a display default, never as an
// identifier.
func GenerateUsername(fullName string) string {
	parts := strings.Fields(strings.TrimSpace(fullName))
	var first, last string
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		last = parts[1]
	}

	base := "user"
	if first != "" {
		base = strings.ToLower(prefix(first, 4) + prefix(last, 3))
	}

	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	digits := "000"
	if err == nil {
		digits = fmt.Sprintf("%03d", n.Int64())
	}

	return nonAlnum.ReplaceAllString(base, "") + digits
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
