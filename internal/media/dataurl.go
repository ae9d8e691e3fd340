package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	dataURLScheme = "data:"
	imagePrefix   = "data:image/"
)

var ErrInvalidDataURL = errors.New("invalid data URL")

// decoded "data:<mime>;base64,<payload>" image
type Image struct {
	MIMEType string
	Data     []byte
}

func IsDataURL(s string) bool {
	return strings.HasPrefix(s, dataURLScheme)
}

// reports whether s carries the embedded-image marker
func IsImageDataURL(s string) bool {
	return strings.HasPrefix(s, imagePrefix)
}

func DecodeDataURL(s string) (*Image, error) {
	if !IsDataURL(s) {
		return nil, fmt.Errorf("%w: missing data scheme", ErrInvalidDataURL)
	}

	header, payload, ok := strings.Cut(s[len(dataURLScheme):], ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing payload separator", ErrInvalidDataURL)
	}

	mimeType, params, _ := strings.Cut(header, ";")
	if mimeType == "" {
		mimeType = "text/plain"
	}

	if !strings.Contains(params, "base64") {
		return &Image{MIMEType: mimeType, Data: []byte(payload)}, nil
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// some encoders drop the padding
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
		}
	}

	return &Image{MIMEType: mimeType, Data: data}, nil
}

func (i *Image) Reader() io.Reader {
	return bytes.NewReader(i.Data)
}

func (i *Image) Extension() string {
	switch i.MIMEType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}

func EncodeDataURL(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "image/png"
	}

	return dataURLScheme + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
