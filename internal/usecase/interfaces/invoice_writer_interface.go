package interfaces

import (
	"io"
	"mediamind_portal/internal/domain/invoice"
)

// IInvoiceWriter turns a rendered invoice document into bytes (PDF).
type IInvoiceWriter interface {
	Write(w io.Writer, doc invoice.Document) error
}
