package profile

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

// MaxAvatarBytes caps avatar uploads at 5 MiB.
const MaxAvatarBytes = 5 << 20

// ValidateAvatar sniffs the payload and rejects anything that is not an
// image or exceeds the size cap. The declared content type from the upload
// is not trusted.
func ValidateAvatar(data []byte) (contentType string, err error) {
	if len(data) == 0 {
		return "", &models.InvalidImageError{Reason: "Please upload a valid image file."}
	}
	if len(data) > MaxAvatarBytes {
		return "", &models.InvalidImageError{Reason: "Image size must be less than 5MB."}
	}
	contentType = http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", &models.InvalidImageError{Reason: "Please upload a valid image file."}
	}
	return contentType, nil
}

// EncodeAvatar renders the validated image as an inline data URI, the form
// it is stored in inside the extras blob.
func EncodeAvatar(contentType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}
