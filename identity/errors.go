package identity

import (
	"strings"

	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

// Provider error codes, named after the hosted provider's own codes so log
// lines line up with its console.
const (
	CodeNetworkFailure      = "auth/network-request-failed"
	CodeEmailInUse          = "auth/email-already-in-use"
	CodeWeakPassword        = "auth/weak-password"
	CodeInvalidEmail        = "auth/invalid-email"
	CodePopupClosed         = "auth/popup-closed-by-user"
	CodePopupCancelled      = "auth/cancelled-popup-request"
	CodeDuplicateCredential = "auth/account-exists-with-different-credential"
	CodeUnknown             = "auth/unknown"
)

var friendlyMessages = map[string]string{
	CodeNetworkFailure:      "Check your network connection and try again.",
	CodeEmailInUse:          "This email is already in use. Please log in instead.",
	CodeWeakPassword:        "Password is too weak.",
	CodeInvalidEmail:        "Please enter a valid email address.",
	CodePopupClosed:         "Google sign-in was cancelled. Please try again.",
	CodePopupCancelled:      "Google sign-in popup was closed. Please try again.",
	CodeDuplicateCredential: "An account already exists with this email.",
}

const defaultFriendlyMessage = "An unexpected error occurred. Please try again later."

// FriendlyMessage maps a provider error code to the user-facing string.
func FriendlyMessage(code string) string {
	if msg, ok := friendlyMessages[code]; ok {
		return msg
	}
	return defaultFriendlyMessage
}

// providerError classifies a raw provider failure into an
// IdentityProviderError carrying the friendly message. The provider SDK does
// not expose typed errors for every case, so classification matches on the
// well-known code substrings it embeds in the message.
func providerError(err error) *models.IdentityProviderError {
	code := CodeUnknown
	msg := strings.ToUpper(err.Error())
	switch {
	case strings.Contains(msg, "EMAIL_EXISTS") || strings.Contains(msg, "EMAIL-ALREADY"):
		code = CodeEmailInUse
	case strings.Contains(msg, "WEAK_PASSWORD") || strings.Contains(msg, "PASSWORD MUST"):
		code = CodeWeakPassword
	case strings.Contains(msg, "INVALID_EMAIL") || strings.Contains(msg, "MALFORMED EMAIL"):
		code = CodeInvalidEmail
	case strings.Contains(msg, "CREDENTIAL_ALREADY") || strings.Contains(msg, "ALREADY EXISTS"):
		code = CodeDuplicateCredential
	case strings.Contains(msg, "NETWORK") || strings.Contains(msg, "CONNECTION REFUSED") ||
		strings.Contains(msg, "TIMEOUT") || strings.Contains(msg, "DEADLINE EXCEEDED"):
		code = CodeNetworkFailure
	}
	return &models.IdentityProviderError{Code: code, Message: FriendlyMessage(code), Err: err}
}
