package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mediamind_portal/internal/domain/entities"
	"mediamind_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrInvalidTransition    = errors.New("cannot cancel completed or already cancelled inquiry")
	ErrConcurrentUpdate     = errors.New("inquiry was modified concurrently")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidInquiryInput  = errors.New("invalid inquiry input")
)

const (
	cancelledBy   = "Client"
	cancelledNote = "Cancelled by client"
)

// SubmitInquiryInput is what a client sends to open a new inquiry.
type SubmitInquiryInput struct {
	ServiceID   string
	PackageName string
	Message     string
}

// IInquiryUseCase exposes the client-side inquiry lifecycle.
//
// Every operation is scoped to the calling client. An inquiry owned by someone
// else is reported exactly like a missing one (ErrInquiryNotFound).

type IInquiryUseCase interface {
	List(ctx context.Context, clientID string) ([]entities.Inquiry, error)
	Submit(ctx context.Context, clientID string, in SubmitInquiryInput) (entities.Inquiry, error)
	Get(ctx context.Context, clientID, id string) (entities.Inquiry, error)
	Update(ctx context.Context, clientID, id string, patch entities.InquiryPatch) (entities.Inquiry, error)
	Cancel(ctx context.Context, clientID, id string) (entities.Inquiry, error)
}

type InquiryUseCase struct {
	repo    interfaces.IInquiryRepository
	catalog interfaces.ICatalogRepository
	logger  *zap.Logger
	now     func() time.Time
}

var _ IInquiryUseCase = (*InquiryUseCase)(nil)

func NewInquiryUseCase(repo interfaces.IInquiryRepository, catalog interfaces.ICatalogRepository, logger *zap.Logger) *InquiryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InquiryUseCase{repo: repo, catalog: catalog, logger: logger, now: time.Now}
}

func (u *InquiryUseCase) List(ctx context.Context, clientID string) ([]entities.Inquiry, error) {
	items, err := u.repo.ListByClientID(ctx, clientID)
	if err != nil {
		u.logger.Error("[inquiry][usecase] list failed", zap.String("client_id", clientID), zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (u *InquiryUseCase) Submit(ctx context.Context, clientID string, in SubmitInquiryInput) (entities.Inquiry, error) {
	serviceID := strings.TrimSpace(in.ServiceID)
	message := strings.TrimSpace(in.Message)
	if serviceID == "" || message == "" {
		return entities.Inquiry{}, ErrInvalidInquiryInput
	}

	svc, ok := u.catalog.Get(serviceID)
	if !ok {
		return entities.Inquiry{}, ErrServiceNotFound
	}

	now := u.now().UTC()
	inq := entities.Inquiry{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		ServiceName:   svc.Title,
		Message:       message,
		TotalAmount:   svc.Pricing,
		InvoiceNumber: newInvoiceNumber(now),
		Status:        entities.InquiryStatusPending,
		PaymentStatus: entities.PaymentStatusUnpaid,
		StatusHistory: []entities.StatusChange{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if name := strings.TrimSpace(in.PackageName); name != "" {
		pkg, found := svc.FindPackage(name)
		if !found {
			return entities.Inquiry{}, fmt.Errorf("%w: unknown package %q", ErrInvalidInquiryInput, name)
		}
		inq.PackageName = pkg.Name
		inq.PackagePrice = pkg.Price
		inq.TotalAmount = pkg.Price
	}

	created, err := u.repo.Create(ctx, inq)
	if err != nil {
		u.logger.Error("[inquiry][usecase] create failed", zap.String("client_id", clientID), zap.Error(err))
		return entities.Inquiry{}, err
	}
	u.logger.Info("[inquiry][usecase] submitted",
		zap.String("inquiry_id", created.ID),
		zap.String("invoice_number", created.InvoiceNumber),
		zap.String("service_id", serviceID),
	)
	return created, nil
}

func (u *InquiryUseCase) Get(ctx context.Context, clientID, id string) (entities.Inquiry, error) {
	return authorizedFetch(ctx, u.repo, clientID, id)
}

func (u *InquiryUseCase) Update(ctx context.Context, clientID, id string, patch entities.InquiryPatch) (entities.Inquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}
	if patch.PaymentMethod != nil {
		// Ownership first: a non-owner gets NotFound whatever the value.
		if _, err := authorizedFetch(ctx, u.repo, clientID, id); err != nil {
			return entities.Inquiry{}, err
		}
		method := strings.TrimSpace(*patch.PaymentMethod)
		if method != "" && !entities.PaymentMethod(method).IsValid() {
			return entities.Inquiry{}, ErrInvalidPaymentMethod
		}
		patch.PaymentMethod = &method
	}

	updated, err := u.repo.UpdateOwned(ctx, id, clientID, patch, u.now().UTC())
	if err != nil {
		u.logger.Error("[inquiry][usecase] update failed", zap.String("inquiry_id", id), zap.Error(err))
		return entities.Inquiry{}, err
	}
	if updated.ID == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}
	return updated, nil
}

// Cancel moves a non-terminal inquiry to cancelled and appends one history entry.
// The write is conditioned on the history length observed by the fetch, so a
// concurrent status change surfaces as ErrConcurrentUpdate instead of being lost.
func (u *InquiryUseCase) Cancel(ctx context.Context, clientID, id string) (entities.Inquiry, error) {
	current, err := authorizedFetch(ctx, u.repo, clientID, id)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if current.Status.IsTerminal() {
		return entities.Inquiry{}, ErrInvalidTransition
	}

	changedAt := u.now().UTC()
	if last, ok := current.LastStatusChange(); ok && last.ChangedAt.After(changedAt) {
		changedAt = last.ChangedAt
	}
	entry := entities.StatusChange{
		Status:    entities.InquiryStatusCancelled,
		ChangedBy: cancelledBy,
		ChangedAt: changedAt,
		Note:      cancelledNote,
	}

	updated, err := u.repo.AppendStatusOwned(ctx, current.ID, clientID, entry, len(current.StatusHistory))
	if err != nil {
		u.logger.Error("[inquiry][usecase] cancel failed", zap.String("inquiry_id", current.ID), zap.Error(err))
		return entities.Inquiry{}, err
	}
	if updated.ID != "" {
		u.logger.Info("[inquiry][usecase] cancelled", zap.String("inquiry_id", updated.ID), zap.String("previous_status", string(current.Status)))
		return updated, nil
	}

	// The conditional write lost. Work out why.
	latest, err := authorizedFetch(ctx, u.repo, clientID, current.ID)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if latest.Status.IsTerminal() {
		return entities.Inquiry{}, ErrInvalidTransition
	}
	u.logger.Warn("[inquiry][usecase] cancel raced with another change",
		zap.String("inquiry_id", current.ID),
		zap.Int("seen_history_len", len(current.StatusHistory)),
		zap.Int("current_history_len", len(latest.StatusHistory)),
	)
	return entities.Inquiry{}, ErrConcurrentUpdate
}

// authorizedFetch is the single ownership check every operation composes with.
func authorizedFetch(ctx context.Context, repo interfaces.IInquiryRepository, clientID, id string) (entities.Inquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" || clientID == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}
	inq, err := repo.GetOwned(ctx, id, clientID)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if inq.ID == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}
	return inq, nil
}

func newInvoiceNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "INV-" + now.Format("20060102") + "-" + suffix
}
