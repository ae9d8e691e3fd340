package redesign

import (
	"encoding/json"
	"errors"
	"net/http"

	"codeberg.org/roomrevive/server/internal/media"
)

// ceiling on the encoded data URL
const MaxImageBytes = 10 * 1024 * 1024

// request bodies may carry the image plus style and customizations
const MaxRequestBytes = MaxImageBytes + 1024*1024

const (
	msgInvalidImage  = "Invalid image data"
	msgImageTooLarge = "Image too large. Maximum 10MB allowed."
)

// checks presence, size and the embedded-image marker, in that order
func ValidateImage(image string) *Failure {
	if image == "" {
		return &Failure{Kind: KindInvalidImage, Message: msgInvalidImage}
	}

	if len(image) > MaxImageBytes {
		return &Failure{Kind: KindImageTooLarge, Message: msgImageTooLarge}
	}

	if !media.IsImageDataURL(image) {
		return &Failure{Kind: KindInvalidImage, Message: "Invalid image format. Please upload a valid image."}
	}

	return nil
}

// maps a request decoding error that concerns the image to a typed failure;
// nil means the error is an ordinary validation problem
func BindFailure(err error) *Failure {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &Failure{Kind: KindImageTooLarge, Message: msgImageTooLarge}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "image" {
		return &Failure{Kind: KindInvalidImage, Message: msgInvalidImage, Details: "image must be a string"}
	}

	return nil
}
