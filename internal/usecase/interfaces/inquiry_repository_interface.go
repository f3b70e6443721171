package interfaces

import (
	"context"
	"time"

	"mediamind_portal/internal/domain/entities"
)

// IInquiryRepository abstracts DynamoDB persistence for Inquiry.
//
// Every read and write carries the (id, clientID) ownership filter inside the
// store query itself. A zero-value Inquiry (ID == "") with a nil error means
// "no item matched the filter": absent and not-owned are indistinguishable.

type IInquiryRepository interface {
	Create(ctx context.Context, inq entities.Inquiry) (entities.Inquiry, error)
	GetOwned(ctx context.Context, id, clientID string) (entities.Inquiry, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Inquiry, error)
	// UpdateOwned applies the non-nil patch fields and updatedAt in one atomic write.
	UpdateOwned(ctx context.Context, id, clientID string, patch entities.InquiryPatch, updatedAt time.Time) (entities.Inquiry, error)
	// AppendStatusOwned sets status to entry.Status and appends entry, provided the
	// owner matches, the current status is not terminal and the history still has
	// expectedHistoryLen entries.
	AppendStatusOwned(ctx context.Context, id, clientID string, entry entities.StatusChange, expectedHistoryLen int) (entities.Inquiry, error)
}
