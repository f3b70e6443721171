package interfaces

import (
	"context"
	"errors"
	"io"
)

// ErrAssetHostRejected marks an upload the asset host refused (as opposed to
// a transport failure).
var ErrAssetHostRejected = errors.New("asset host rejected the upload")

// Asset is a validated image ready to be stored.
type Asset struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// IAssetHost abstracts the external image host used for payment proofs.
//
// Keys are content-addressed, so putting the same bytes twice is harmless.
type IAssetHost interface {
	Put(ctx context.Context, asset Asset) (url string, err error)
}
