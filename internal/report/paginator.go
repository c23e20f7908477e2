// Package report lays an ordered sequence of lens rows onto fixed-capacity
// pages with repeated column headers and a summary footer. The paginator knows
// nothing about the output format; renderers consume the Document it builds.
package report

import (
	"fmt"
	"time"

	"github.com/dcastano/optica-inventory/internal/apperr"
)

// ColumnHeaders is re-emitted at the top of every page, not just the first.
var ColumnHeaders = []string{
	"Model", "Brand", "Base price", "Discount", "Final price",
	"Quantity", "Status", "Identification code",
}

type Row struct {
	Model              string
	BrandName          string
	BasePrice          float64
	DiscountPercent    float64
	FinalPrice         float64
	QuantityOnHand     int
	Status             string
	IdentificationCode string
}

type Page struct {
	// Number is 1-based and stable during emission, for footers.
	Number  int
	Headers []string
	Rows    []Row
}

type Document struct {
	Title       string
	LotNumber   string
	GeneratedAt time.Time
	Pages       []Page
	// TotalCount is the input record count, counted once regardless of how
	// many pages it spans.
	TotalCount int
}

// Layout carries the fixed vertical geometry: each data row advances the
// running offset by RowHeight, and a page holds rows until the offset would
// exceed UsableHeight.
type Layout struct {
	RowHeight    float64
	UsableHeight float64
}

// DefaultLayout mirrors the geometry of the legacy printed report
// (20pt rows, 560pt of usable body per page).
func DefaultLayout() Layout {
	return Layout{RowHeight: 20, UsableHeight: 560}
}

// RowsPerPage is the page capacity implied by the layout.
func (l Layout) RowsPerPage() int {
	return int(l.UsableHeight / l.RowHeight)
}

// Build places rows in sequence onto numbered pages. An empty input produces
// no pages and fails with apperr.ErrEmptyReport.
func (l Layout) Build(lotNumber string, rows []Row, generatedAt time.Time) (*Document, error) {
	if l.RowHeight <= 0 || l.UsableHeight < l.RowHeight {
		return nil, fmt.Errorf("%w: report layout cannot fit a single row", apperr.ErrValidation)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: lot %s", apperr.ErrEmptyReport, lotNumber)
	}

	doc := &Document{
		Title:       fmt.Sprintf("Lens report - lot %s", lotNumber),
		LotNumber:   lotNumber,
		GeneratedAt: generatedAt,
		TotalCount:  len(rows),
	}

	page := Page{Number: 1, Headers: ColumnHeaders}
	offset := 0.0
	for _, row := range rows {
		if offset+l.RowHeight > l.UsableHeight {
			doc.Pages = append(doc.Pages, page)
			page = Page{Number: page.Number + 1, Headers: ColumnHeaders}
			offset = 0
		}
		page.Rows = append(page.Rows, row)
		offset += l.RowHeight
	}
	doc.Pages = append(doc.Pages, page)

	return doc, nil
}
