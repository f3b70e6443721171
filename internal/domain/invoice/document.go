// Package invoice lays out an inquiry receipt as a list of draw operations.
//
// Layout is pure: the same Inquiry always yields the same Document. Turning a
// Document into PDF bytes is the job of an external writer.
package invoice

import "time"

// Page geometry in millimetres (A4 portrait).
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	marginLeft  = 20.0
	marginRight = 190.0
	contentLeft = 22.0
	topMargin   = 20.0
	bodyBottom  = 270.0

	// Status history entries are only drawn while the cursor is above this line.
	historyBudget = 230.0

	footerRule  = 280.0
	footerLine1 = 286.0
	footerLine2 = 291.0
)

type OpKind string

const (
	OpText OpKind = "text"
	OpLine OpKind = "line"
	OpRect OpKind = "rect"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

type FontStyle string

const (
	FontRegular FontStyle = ""
	FontBold    FontStyle = "B"
)

type RGB struct{ R, G, B int }

var (
	colorPrimary = RGB{99, 102, 241}
	colorDark    = RGB{31, 41, 55}
	colorGray    = RGB{107, 114, 128}
	colorWhite   = RGB{255, 255, 255}
)

// Op is a single draw call. Only the fields relevant to Kind are set.
type Op struct {
	Kind OpKind

	// text
	X, Y     float64
	Text     string
	FontSize float64
	Style    FontStyle
	Align    Align
	Color    RGB

	// line: X,Y -> X2,Y2; rect: X,Y with W,H (filled)
	X2, Y2    float64
	W, H      float64
	LineWidth float64
}

type Page struct {
	Ops []Op
}

// Document is a paginated invoice ready for a writer.
type Document struct {
	Title    string
	FileName string
	// CreatedAt is the inquiry's creation time; writers stamp it as the
	// document date so output stays reproducible.
	CreatedAt time.Time
	Pages     []Page
}

// Texts returns every text op content in draw order; handy for assertions and search.
func (d Document) Texts() []string {
	var out []string
	for _, p := range d.Pages {
		for _, op := range p.Ops {
			if op.Kind == OpText {
				out = append(out, op.Text)
			}
		}
	}
	return out
}
