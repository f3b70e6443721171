package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"mediamind_portal/internal/config"
	"mediamind_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	if in.Body != nil {
		b, _ := io.ReadAll(in.Body)
		f.body = string(b)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func testAssetsConfig() config.AssetsConfig {
	return config.AssetsConfig{Bucket: "proofs", PublicBaseURL: "https://cdn.example.com/", MaxUploadBytes: 5 << 20}
}

func TestS3AssetHost_PutSuccess(t *testing.T) {
	fake := &fakeS3{}
	host := NewS3AssetHost(fake, testAssetsConfig(), zap.NewNop())

	url, err := host.Put(context.Background(), interfaces.Asset{
		Key:         "payment-proofs/abc.png",
		ContentType: "image/png",
		Size:        3,
		Body:        strings.NewReader("png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/payment-proofs/abc.png", url)
	assert.Equal(t, "proofs", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "payment-proofs/abc.png", aws.ToString(fake.input.Key))
	assert.Equal(t, "image/png", aws.ToString(fake.input.ContentType))
	assert.Equal(t, int64(3), aws.ToInt64(fake.input.ContentLength))
	assert.Equal(t, "png", fake.body)
}

func TestS3AssetHost_APIErrorIsRejection(t *testing.T) {
	fake := &fakeS3{err: &smithy.GenericAPIError{Code: "AccessDenied", Message: "bucket policy denies", Fault: smithy.FaultClient}}
	host := NewS3AssetHost(fake, testAssetsConfig(), zap.NewNop())

	_, err := host.Put(context.Background(), interfaces.Asset{Key: "k", ContentType: "image/png", Body: strings.NewReader("x"), Size: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, interfaces.ErrAssetHostRejected))
	assert.NotContains(t, err.Error(), "bucket policy")
}

func TestS3AssetHost_TransportError(t *testing.T) {
	transport := errors.New("dial tcp: connection refused")
	host := NewS3AssetHost(&fakeS3{err: transport}, testAssetsConfig(), zap.NewNop())

	_, err := host.Put(context.Background(), interfaces.Asset{Key: "k", ContentType: "image/png", Body: strings.NewReader("x"), Size: 1})
	require.Error(t, err)
	assert.False(t, errors.Is(err, interfaces.ErrAssetHostRejected))
	assert.True(t, errors.Is(err, transport))
}

func TestS3AssetHost_ServerFaultIsNotRejection(t *testing.T) {
	for _, code := range []string{"SlowDown", "InternalError"} {
		t.Run(code, func(t *testing.T) {
			apiErr := &smithy.GenericAPIError{Code: code, Message: "try again", Fault: smithy.FaultServer}
			host := NewS3AssetHost(&fakeS3{err: apiErr}, testAssetsConfig(), zap.NewNop())

			_, err := host.Put(context.Background(), interfaces.Asset{Key: "k", ContentType: "image/png", Body: strings.NewReader("x"), Size: 1})
			require.Error(t, err)
			assert.False(t, errors.Is(err, interfaces.ErrAssetHostRejected))
			assert.True(t, errors.Is(err, apiErr))
		})
	}
}

func TestS3AssetHost_UnknownFaultWith4xxStatusIsRejection(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}
	wrapped := &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: http.StatusForbidden}},
			Err:      apiErr,
		},
	}
	host := NewS3AssetHost(&fakeS3{err: wrapped}, testAssetsConfig(), zap.NewNop())

	_, err := host.Put(context.Background(), interfaces.Asset{Key: "k", ContentType: "image/png", Body: strings.NewReader("x"), Size: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, interfaces.ErrAssetHostRejected))
}
