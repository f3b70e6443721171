package invoice

import (
	"fmt"
	"strings"

	"mediamind_portal/internal/domain/entities"
)

const (
	headerDate  = "Jan 2, 2006"
	historyDate = "Jan 2, 2006 3:04 PM"

	bodyLine    = 6.0
	historyLine = 5.0
)

// Branding is the static text printed on every invoice.
type Branding struct {
	BrandName   string
	ThankYou    string
	ContactLine string
}

type Renderer struct {
	brand Branding
}

func NewRenderer(brand Branding) *Renderer {
	return &Renderer{brand: brand}
}

// Render lays out inq. Absent optional fields (package, admin notes, empty
// history) drop their lines or sections; rendering never fails.
func (r *Renderer) Render(inq entities.Inquiry) Document {
	l := &layout{}
	l.newPage()

	l.add(Op{Kind: OpText, X: PageWidth / 2, Y: l.y, Text: r.brand.BrandName, FontSize: 24, Style: FontBold, Align: AlignCenter, Color: colorPrimary})
	l.y += 10
	l.add(Op{Kind: OpText, X: PageWidth / 2, Y: l.y, Text: "INVOICE", FontSize: 16, Style: FontBold, Align: AlignCenter, Color: colorPrimary})
	l.y += 5
	l.add(Op{Kind: OpLine, X: marginLeft, Y: l.y, X2: marginRight, Y2: l.y, LineWidth: 0.5, Color: colorPrimary})
	l.y += 10

	l.pair(fmt.Sprintf("Invoice Number: %s", inq.InvoiceNumber), fmt.Sprintf("Date: %s", inq.CreatedAt.UTC().Format(headerDate)))
	l.pair(fmt.Sprintf("Status: %s", upper(string(inq.Status))), fmt.Sprintf("Payment: %s", paymentStatusLabel(inq.PaymentStatus)))
	l.y += 6

	l.section("SERVICE DETAILS")
	l.text(contentLeft, fmt.Sprintf("Service: %s", inq.ServiceName), 10, FontRegular, colorDark, bodyLine)
	if inq.PackageName != "" {
		l.text(contentLeft, fmt.Sprintf("Package: %s", inq.PackageName), 10, FontRegular, colorDark, bodyLine)
	}
	if inq.PackagePrice != "" {
		l.text(contentLeft, fmt.Sprintf("Package Price: %s", inq.PackagePrice), 10, FontRegular, colorDark, bodyLine)
	}
	l.y += 6

	if lines := Wrap(inq.Message, wrapColumns); len(lines) > 0 {
		l.section("PROJECT DETAILS")
		for _, line := range lines {
			l.text(contentLeft, line, 10, FontRegular, colorDark, 5)
		}
		l.y += 7
	}

	l.section("AMOUNT")
	l.text(contentLeft, fmt.Sprintf("Total Amount: %s", inq.TotalAmount), 14, FontBold, colorDark, 7)
	l.text(contentLeft, fmt.Sprintf("Payment Status: %s", paymentStatusLabel(inq.PaymentStatus)), 10, FontRegular, colorDark, bodyLine)
	if inq.PaymentMethod != "" {
		l.text(contentLeft, fmt.Sprintf("Payment Method: %s", upper(string(inq.PaymentMethod))), 10, FontRegular, colorDark, bodyLine)
	}
	if inq.TransactionID != "" {
		l.text(contentLeft, fmt.Sprintf("Transaction ID: %s", inq.TransactionID), 10, FontRegular, colorDark, bodyLine)
	}
	l.y += 6

	if lines := Wrap(inq.AdminNotes, wrapColumns); len(lines) > 0 {
		l.section("ADMIN NOTES")
		for _, line := range lines {
			l.text(contentLeft, line, 10, FontRegular, colorDark, 5)
		}
		l.y += 7
	}

	if len(inq.StatusHistory) > 0 && l.y < historyBudget {
		l.section("STATUS HISTORY")
		for _, h := range inq.StatusHistory {
			if l.y >= historyBudget {
				break
			}
			l.text(contentLeft, fmt.Sprintf("%s - %s", h.ChangedAt.UTC().Format(historyDate), upper(string(h.Status))), 9, FontRegular, colorDark, historyLine)
			l.text(contentLeft+5, fmt.Sprintf("By: %s", h.ChangedBy), 9, FontRegular, colorGray, historyLine)
			if h.Note != "" {
				l.text(contentLeft+5, fmt.Sprintf("Note: %s", h.Note), 9, FontRegular, colorGray, historyLine)
			}
			l.y += 2
		}
	}

	for i := range l.pages {
		l.pages[i].Ops = append(l.pages[i].Ops, r.footer()...)
	}

	return Document{
		Title:     fmt.Sprintf("Invoice %s", inq.InvoiceNumber),
		FileName:  FileName(inq),
		CreatedAt: inq.CreatedAt.UTC(),
		Pages:     l.pages,
	}
}

func (r *Renderer) footer() []Op {
	return []Op{
		{Kind: OpLine, X: marginLeft, Y: footerRule, X2: marginRight, Y2: footerRule, LineWidth: 0.5, Color: colorPrimary},
		{Kind: OpText, X: PageWidth / 2, Y: footerLine1, Text: r.brand.ThankYou, FontSize: 9, Align: AlignCenter, Color: colorGray},
		{Kind: OpText, X: PageWidth / 2, Y: footerLine2, Text: r.brand.ContactLine, FontSize: 9, Align: AlignCenter, Color: colorGray},
	}
}

// FileName is the download name for an inquiry's invoice.
func FileName(inq entities.Inquiry) string {
	if inq.InvoiceNumber != "" {
		return inq.InvoiceNumber + ".pdf"
	}
	return "invoice-" + inq.ID + ".pdf"
}

func paymentStatusLabel(s entities.PaymentStatus) string {
	if s == "" {
		return upper(string(entities.PaymentStatusUnpaid))
	}
	return upper(string(s))
}

func upper(s string) string { return strings.ToUpper(s) }

// layout is a top-down cursor over pages.
type layout struct {
	pages []Page
	y     float64
}

func (l *layout) newPage() {
	l.pages = append(l.pages, Page{})
	l.y = topMargin
}

func (l *layout) ensure(h float64) {
	if l.y+h > bodyBottom {
		l.newPage()
	}
}

func (l *layout) add(op Op) {
	p := &l.pages[len(l.pages)-1]
	p.Ops = append(p.Ops, op)
}

func (l *layout) pair(left, right string) {
	l.ensure(bodyLine)
	l.add(Op{Kind: OpText, X: marginLeft, Y: l.y, Text: left, FontSize: 10, Align: AlignLeft, Color: colorDark})
	l.add(Op{Kind: OpText, X: 140, Y: l.y, Text: right, FontSize: 10, Align: AlignLeft, Color: colorDark})
	l.y += bodyLine
}

func (l *layout) section(title string) {
	// keep the header with at least one body line
	l.ensure(8 + bodyLine)
	l.add(Op{Kind: OpRect, X: marginLeft, Y: l.y - 5, W: marginRight - marginLeft, H: 7, Color: colorPrimary})
	l.add(Op{Kind: OpText, X: contentLeft, Y: l.y, Text: title, FontSize: 12, Style: FontBold, Align: AlignLeft, Color: colorWhite})
	l.y += 8
}

func (l *layout) text(x float64, s string, size float64, style FontStyle, c RGB, advance float64) {
	l.ensure(advance)
	l.add(Op{Kind: OpText, X: x, Y: l.y, Text: s, FontSize: size, Style: style, Align: AlignLeft, Color: c})
	l.y += advance
}
