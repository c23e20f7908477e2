package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RenderXLSX writes the document as a spreadsheet, one worksheet per page.
// The title and generation timestamp appear on page 1 only; the record total
// closes the last page.
func RenderXLSX(doc *Document) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, page := range doc.Pages {
		sheet := fmt.Sprintf("Page %d", page.Number)
		if i == 0 {
			f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		row := 1
		if page.Number == 1 {
			if err := setRow(f, sheet, row, []interface{}{doc.Title}); err != nil {
				return nil, err
			}
			row++
			if err := setRow(f, sheet, row, []interface{}{"Generated", doc.GeneratedAt.Format("2006-01-02 15:04:05")}); err != nil {
				return nil, err
			}
			row += 2
		}

		header := make([]interface{}, len(page.Headers))
		for j, h := range page.Headers {
			header[j] = h
		}
		if err := setRow(f, sheet, row, header); err != nil {
			return nil, err
		}
		row++

		for _, r := range page.Rows {
			values := []interface{}{
				r.Model,
				r.BrandName,
				r.BasePrice,
				fmt.Sprintf("%g%%", r.DiscountPercent),
				r.FinalPrice,
				r.QuantityOnHand,
				r.Status,
				r.IdentificationCode,
			}
			if err := setRow(f, sheet, row, values); err != nil {
				return nil, err
			}
			row++
		}

		if i == len(doc.Pages)-1 {
			row++
			if err := setRow(f, sheet, row, []interface{}{fmt.Sprintf("Total records: %d", doc.TotalCount)}); err != nil {
				return nil, err
			}
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
