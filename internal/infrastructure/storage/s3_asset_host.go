package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mediamind_portal/internal/config"
	"mediamind_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3AssetHost stores payment proof images in an S3-compatible bucket and
// returns their public URL.
type S3AssetHost struct {
	client        s3API
	bucket        string
	publicBaseURL string
	logger        *zap.Logger
}

var _ interfaces.IAssetHost = (*S3AssetHost)(nil)

// NewS3Client builds an S3 client; Endpoint/UsePathStyle serve MinIO or LocalStack.
func NewS3Client(awsCfg aws.Config, cfg config.AssetsConfig) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.Region = cfg.Region
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

func NewS3AssetHost(client s3API, cfg config.AssetsConfig, logger *zap.Logger) *S3AssetHost {
	return &S3AssetHost{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}
}

func (h *S3AssetHost) Put(ctx context.Context, asset interfaces.Asset) (string, error) {
	h.logger.Debug("[asset][s3] put start", zap.String("key", asset.Key), zap.Int64("size", asset.Size))

	_, err := h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(h.bucket),
		Key:           aws.String(asset.Key),
		Body:          asset.Body,
		ContentType:   aws.String(asset.ContentType),
		ContentLength: aws.Int64(asset.Size),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && isClientFault(err, apiErr) {
			h.logger.Warn("[asset][s3] put rejected", zap.String("key", asset.Key), zap.String("code", apiErr.ErrorCode()), zap.String("message", apiErr.ErrorMessage()))
			return "", fmt.Errorf("%w: %s", interfaces.ErrAssetHostRejected, apiErr.ErrorCode())
		}
		h.logger.Warn("[asset][s3] put failed", zap.String("key", asset.Key), zap.Error(err))
		return "", err
	}

	url := h.publicBaseURL + "/" + asset.Key
	h.logger.Debug("[asset][s3] put success", zap.String("url", url))
	return url, nil
}

// isClientFault reports whether S3 refused the request itself (4xx) rather
// than failing to serve it (throttling, 5xx).
func isClientFault(err error, apiErr smithy.APIError) bool {
	if apiErr.ErrorFault() == smithy.FaultClient {
		return true
	}
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		code := respErr.HTTPStatusCode()
		return code >= 400 && code < 500 && code != 429
	}
	return false
}
