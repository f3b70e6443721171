package usecase

import (
	"bytes"
	"context"
	"fmt"

	"mediamind_portal/internal/domain/invoice"
	"mediamind_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// InvoiceFile is a rendered invoice ready to be sent as an attachment.
type InvoiceFile struct {
	FileName string
	Content  []byte
}

// IInvoiceUseCase renders the caller's inquiry as a PDF invoice.

type IInvoiceUseCase interface {
	Generate(ctx context.Context, clientID, id string) (InvoiceFile, error)
}

type InvoiceUseCase struct {
	repo     interfaces.IInquiryRepository
	renderer *invoice.Renderer
	writer   interfaces.IInvoiceWriter
	logger   *zap.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInquiryRepository, renderer *invoice.Renderer, writer interfaces.IInvoiceWriter, logger *zap.Logger) *InvoiceUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceUseCase{repo: repo, renderer: renderer, writer: writer, logger: logger}
}

func (u *InvoiceUseCase) Generate(ctx context.Context, clientID, id string) (InvoiceFile, error) {
	inq, err := authorizedFetch(ctx, u.repo, clientID, id)
	if err != nil {
		return InvoiceFile{}, err
	}

	doc := u.renderer.Render(inq)
	var buf bytes.Buffer
	if err := u.writer.Write(&buf, doc); err != nil {
		u.logger.Error("[invoice][usecase] pdf write failed", zap.String("inquiry_id", inq.ID), zap.Error(err))
		return InvoiceFile{}, fmt.Errorf("write invoice: %w", err)
	}
	return InvoiceFile{FileName: doc.FileName, Content: buf.Bytes()}, nil
}
