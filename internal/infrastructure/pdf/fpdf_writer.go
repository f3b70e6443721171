package pdf

import (
	"io"

	"mediamind_portal/internal/domain/invoice"
	"mediamind_portal/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Helvetica"
	producer   = "mediamind-portal"
)

// FPDFWriter draws invoice documents with go-pdf/fpdf core fonts.
// Text is translated to cp1252; glyphs outside it (e.g. the taka sign) degrade
// to a placeholder instead of failing.
type FPDFWriter struct{}

var _ interfaces.IInvoiceWriter = (*FPDFWriter)(nil)

func NewFPDFWriter() *FPDFWriter {
	return &FPDFWriter{}
}

func (w *FPDFWriter) Write(out io.Writer, doc invoice.Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(doc.CreatedAt)
	pdf.SetModificationDate(doc.CreatedAt)
	pdf.SetCreator(producer, true)
	pdf.SetTitle(doc.Title, true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			switch op.Kind {
			case invoice.OpText:
				pdf.SetFont(fontFamily, string(op.Style), op.FontSize)
				pdf.SetTextColor(op.Color.R, op.Color.G, op.Color.B)
				txt := tr(op.Text)
				x := op.X
				if op.Align == invoice.AlignCenter {
					x -= pdf.GetStringWidth(txt) / 2
				}
				pdf.Text(x, op.Y, txt)
			case invoice.OpLine:
				pdf.SetDrawColor(op.Color.R, op.Color.G, op.Color.B)
				pdf.SetLineWidth(op.LineWidth)
				pdf.Line(op.X, op.Y, op.X2, op.Y2)
			case invoice.OpRect:
				pdf.SetFillColor(op.Color.R, op.Color.G, op.Color.B)
				pdf.Rect(op.X, op.Y, op.W, op.H, "F")
			}
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(out)
}
