package media

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPutter struct {
	inputs []*s3.PutObjectInput
	bodies []string
}

func (m *mockPutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, _ := io.ReadAll(params.Body) //nolint:errcheck // test code
	m.inputs = append(m.inputs, params)
	m.bodies = append(m.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func TestDecodeDataURL(t *testing.T) {
	img, err := DecodeDataURL("data:image/png;base64,aGVsbG8=")

	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, []byte("hello"), img.Data)
	assert.Equal(t, ".png", img.Extension())
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", EncodeDataURL(img.MIMEType, img.Data))
}

func TestDecodeDataURL_UnpaddedPayload(t *testing.T) {
	img, err := DecodeDataURL("data:image/jpeg;base64,aGVsbG8")

	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), img.Data)
}

func TestDecodeDataURL_Invalid(t *testing.T) {
	for _, in := range []string{
		"https://example.com/a.png",
		"data:image/png;base64",
		"data:image/png;base64,***",
	} {
		_, err := DecodeDataURL(in)
		assert.ErrorIs(t, err, ErrInvalidDataURL, in)
	}
}

func TestIsImageDataURL(t *testing.T) {
	assert.True(t, IsImageDataURL("data:image/webp;base64,AAAA"))
	assert.False(t, IsImageDataURL("data:text/plain;base64,AAAA"))
	assert.False(t, IsImageDataURL("image/png"))
}

func TestS3Uploader_Upload(t *testing.T) {
	putter := &mockPutter{}
	u := newS3Uploader(putter, Config{Bucket: "rooms", Region: "eu-north-1", KeyPrefix: "/history/"})

	res, err := u.Upload(context.Background(), UploadInput{
		Filename:    "original.png",
		ContentType: "image/png",
		Body:        strings.NewReader("pixels"),
		Size:        6,
	})

	require.NoError(t, err)
	require.Len(t, putter.inputs, 1)
	assert.True(t, strings.HasPrefix(res.Key, "history/original-"), res.Key)
	assert.True(t, strings.HasSuffix(res.Key, ".png"), res.Key)
	assert.Equal(t, "https://rooms.s3.eu-north-1.amazonaws.com/"+res.Key, res.URL)
	assert.Equal(t, "rooms", aws.ToString(putter.inputs[0].Bucket))
	assert.Equal(t, "image/png", aws.ToString(putter.inputs[0].ContentType))
	assert.Equal(t, "pixels", putter.bodies[0])
}

func TestS3Uploader_PathStylePublicURL(t *testing.T) {
	u := newS3Uploader(&mockPutter{}, Config{
		Bucket:         "rooms",
		Region:         "us-east-1",
		Endpoint:       "http://localhost:9000/",
		ForcePathStyle: true,
	})

	assert.Equal(t, "http://localhost:9000/rooms/k.png", u.objectURL("k.png"))
}

func TestS3Uploader_RequiresBody(t *testing.T) {
	u := newS3Uploader(&mockPutter{}, Config{Bucket: "b", Region: "r"})

	_, err := u.Upload(context.Background(), UploadInput{Filename: "x.png"})
	assert.Error(t, err)
}

func TestNewUploader_DisabledWithoutBucket(t *testing.T) {
	u, err := NewUploader(context.Background(), Config{})
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), UploadInput{Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, ErrUploaderDisabled)
}

func TestOffloadDataURL(t *testing.T) {
	putter := &mockPutter{}
	u := newS3Uploader(putter, Config{Bucket: "rooms", Region: "us-east-1", PublicURL: "https://cdn.example.com"})

	url, err := OffloadDataURL(context.Background(), u, "redesigned", "data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/redesigned-"), url)
	assert.Equal(t, "hello", putter.bodies[0])

	// links pass straight through
	url, err = OffloadDataURL(context.Background(), u, "original", "https://cdn.example.com/a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", url)
	assert.Len(t, putter.inputs, 1)
}
