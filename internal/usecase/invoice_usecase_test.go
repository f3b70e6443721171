package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"mediamind_portal/internal/domain/entities"
	"mediamind_portal/internal/domain/invoice"
	mock_interfaces "mediamind_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_Generate(t *testing.T) {
	renderer := invoice.NewRenderer(invoice.Branding{BrandName: "MEDIAMIND"})

	t.Run("renders owned inquiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		writer := mock_interfaces.NewMockIInvoiceWriter(ctrl)
		uc := NewInvoiceUseCase(repo, renderer, writer, nil)

		inq := pendingInquiry()
		inq.InvoiceNumber = "INV-20240301-ABCDEF12"
		repo.EXPECT().GetOwned(gomock.Any(), "A1", "C1").Return(inq, nil)
		writer.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(
			func(w io.Writer, doc invoice.Document) error {
				if len(doc.Pages) == 0 {
					t.Fatalf("expected at least one page")
				}
				_, err := w.Write([]byte("%PDF-1.3"))
				return err
			},
		)

		file, err := uc.Generate(context.Background(), "C1", "A1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(file.Content) != "%PDF-1.3" {
			t.Fatalf("unexpected content %q", file.Content)
		}
		if file.FileName != invoice.FileName(inq) {
			t.Fatalf("unexpected file name %q", file.FileName)
		}
	})

	t.Run("not owned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		writer := mock_interfaces.NewMockIInvoiceWriter(ctrl)
		uc := NewInvoiceUseCase(repo, renderer, writer, nil)

		repo.EXPECT().GetOwned(gomock.Any(), "A1", "C2").Return(entities.Inquiry{}, nil)

		_, err := uc.Generate(context.Background(), "C2", "A1")
		if !errors.Is(err, ErrInquiryNotFound) {
			t.Fatalf("expected ErrInquiryNotFound, got %v", err)
		}
	})

	t.Run("writer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		writer := mock_interfaces.NewMockIInvoiceWriter(ctrl)
		uc := NewInvoiceUseCase(repo, renderer, writer, nil)

		repo.EXPECT().GetOwned(gomock.Any(), "A1", "C1").Return(pendingInquiry(), nil)
		writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("font"))

		_, err := uc.Generate(context.Background(), "C1", "A1")
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}
