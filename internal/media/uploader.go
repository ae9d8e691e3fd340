package media

import (
	"context"
	"errors"
	"io"
)

// signals that no object store is configured
var ErrUploaderDisabled = errors.New("media uploader disabled")

type UploadInput struct {
	Filename    string
	ContentType string
	Body        io.Reader
	Size        int64
}

// canonical object key and the URL clients can read it from
type UploadResult struct {
	Key string
	URL string
}

type Uploader interface {
	Upload(ctx context.Context, input UploadInput) (UploadResult, error)
}

type disabledUploader struct{}

func (disabledUploader) Upload(_ context.Context, _ UploadInput) (UploadResult, error) {
	return UploadResult{}, ErrUploaderDisabled
}

// returns an uploader that always reports ErrUploaderDisabled
func Disabled() Uploader {
	return disabledUploader{}
}

// uploads a data URL and returns its public URL; anything that is not a
// data URL (already a link) is passed through untouched
func OffloadDataURL(ctx context.Context, u Uploader, name, value string) (string, error) {
	if !IsDataURL(value) {
		return value, nil
	}

	img, err := DecodeDataURL(value)
	if err != nil {
		return "", err
	}

	res, err := u.Upload(ctx, UploadInput{
		Filename:    name + img.Extension(),
		ContentType: img.MIMEType,
		Body:        img.Reader(),
		Size:        int64(len(img.Data)),
	})
	if err != nil {
		return "", err
	}

	return res.URL, nil
}
