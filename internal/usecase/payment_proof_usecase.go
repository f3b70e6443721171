package usecase

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"mediamind_portal/internal/domain/entities"
	"mediamind_portal/internal/usecase/interfaces"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// DefaultMaxProofBytes is the upload ceiling when none is configured (5 MiB).
const DefaultMaxProofBytes int64 = 5 * 1024 * 1024

var (
	ErrMissingTransactionID = errors.New("transaction id is required")
	ErrNotAnImage           = errors.New("only image files are allowed")
	ErrFileTooLarge         = errors.New("file size must be less than 5MB")
	ErrEmptyFile            = errors.New("no file provided")
)

const (
	upstreamRejectedMessage    = "asset host rejected the upload"
	upstreamUnavailableMessage = "asset host unavailable"
)

// UpstreamError reports an asset host failure. Message is safe to show to clients.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ImageUpload is a file as received from the client. Size and ContentType are
// the declared values; both are checked again against the actual bytes.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type PaymentProofInput struct {
	Image         ImageUpload
	PaymentMethod string
	TransactionID string
}

// IPaymentProofUseCase runs the two-phase proof flow: upload the image to the
// asset host, then attach its URL with the payment method and transaction id.
//
// A failed upload never touches the inquiry. A failed attach leaves the uploaded
// asset in place.

type IPaymentProofUseCase interface {
	Upload(ctx context.Context, img ImageUpload) (string, error)
	Attach(ctx context.Context, clientID, id string, in PaymentProofInput) (entities.Inquiry, error)
}

type PaymentProofUseCase struct {
	repo      interfaces.IInquiryRepository
	assets    interfaces.IAssetHost
	keyPrefix string
	maxBytes  int64
	logger    *zap.Logger
	now       func() time.Time
}

var _ IPaymentProofUseCase = (*PaymentProofUseCase)(nil)

func NewPaymentProofUseCase(
	repo interfaces.IInquiryRepository,
	assets interfaces.IAssetHost,
	keyPrefix string,
	maxBytes int64,
	logger *zap.Logger,
) *PaymentProofUseCase {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxProofBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentProofUseCase{
		repo:      repo,
		assets:    assets,
		keyPrefix: strings.Trim(keyPrefix, "/"),
		maxBytes:  maxBytes,
		logger:    logger,
		now:       time.Now,
	}
}

func (u *PaymentProofUseCase) Upload(ctx context.Context, img ImageUpload) (string, error) {
	asset, err := u.prepare(img)
	if err != nil {
		return "", err
	}
	return u.put(ctx, asset)
}

func (u *PaymentProofUseCase) Attach(ctx context.Context, clientID, id string, in PaymentProofInput) (entities.Inquiry, error) {
	method := strings.TrimSpace(in.PaymentMethod)
	if !entities.PaymentMethod(method).IsValid() {
		return entities.Inquiry{}, ErrInvalidPaymentMethod
	}
	txID := strings.TrimSpace(in.TransactionID)
	if txID == "" {
		return entities.Inquiry{}, ErrMissingTransactionID
	}
	asset, err := u.prepare(in.Image)
	if err != nil {
		return entities.Inquiry{}, err
	}

	current, err := authorizedFetch(ctx, u.repo, clientID, id)
	if err != nil {
		return entities.Inquiry{}, err
	}

	url, err := u.put(ctx, asset)
	if err != nil {
		return entities.Inquiry{}, err
	}

	patch := entities.InquiryPatch{
		PaymentScreenshot: &url,
		PaymentMethod:     &method,
		TransactionID:     &txID,
	}
	updated, err := u.repo.UpdateOwned(ctx, current.ID, clientID, patch, u.now().UTC())
	if err != nil {
		u.logger.Warn("[payment-proof][usecase] attach failed, asset left in place",
			zap.String("inquiry_id", current.ID), zap.String("asset_key", asset.Key), zap.Error(err))
		return entities.Inquiry{}, err
	}
	if updated.ID == "" {
		u.logger.Warn("[payment-proof][usecase] inquiry vanished before attach, asset left in place",
			zap.String("inquiry_id", current.ID), zap.String("asset_key", asset.Key))
		return entities.Inquiry{}, ErrInquiryNotFound
	}

	u.logger.Info("[payment-proof][usecase] proof attached",
		zap.String("inquiry_id", updated.ID),
		zap.String("payment_method", method),
	)
	return updated, nil
}

// prepare validates the image and buffers it. Nothing here touches the network.
func (u *PaymentProofUseCase) prepare(img ImageUpload) (interfaces.Asset, error) {
	if img.Body == nil {
		return interfaces.Asset{}, ErrEmptyFile
	}
	if !isImageType(img.ContentType) {
		return interfaces.Asset{}, ErrNotAnImage
	}
	if img.Size > u.maxBytes {
		return interfaces.Asset{}, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(img.Body, u.maxBytes+1))
	if err != nil {
		return interfaces.Asset{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return interfaces.Asset{}, ErrEmptyFile
	}
	if int64(len(data)) > u.maxBytes {
		return interfaces.Asset{}, ErrFileTooLarge
	}

	detected := mimetype.Detect(data)
	if !isImageType(detected.String()) {
		return interfaces.Asset{}, ErrNotAnImage
	}

	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:]) + detected.Extension()
	if u.keyPrefix != "" {
		key = u.keyPrefix + "/" + key
	}

	return interfaces.Asset{
		Key:         key,
		ContentType: mediaType(detected.String()),
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	}, nil
}

func (u *PaymentProofUseCase) put(ctx context.Context, asset interfaces.Asset) (string, error) {
	url, err := u.assets.Put(ctx, asset)
	if err != nil {
		msg := upstreamUnavailableMessage
		if errors.Is(err, interfaces.ErrAssetHostRejected) {
			msg = upstreamRejectedMessage
		}
		u.logger.Error("[payment-proof][usecase] asset upload failed", zap.String("asset_key", asset.Key), zap.Error(err))
		return "", &UpstreamError{Message: msg, Err: err}
	}
	return url, nil
}

func isImageType(contentType string) bool {
	return strings.HasPrefix(mediaType(contentType), "image/")
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}
