package tesseract

import "strings"

// Messages gosseract and leptonica produce when the payload never becomes
// an image. A nil pix after SetImageFromBytes surfaces from Text as
// "PixImage is not set".
var decodeFailureMessages = []string{
	"piximage is not set",
	"pixreadmem",
	"read image",
	"load image",
}

// isDecodeFailure reports whether err happened while loading the image,
// before any recognition ran.
func isDecodeFailure(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, m := range decodeFailureMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
