// Package xlsxio bridges tables to and from Excel worksheets via excelize.
package xlsxio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/celltab-go/pkg/celltab"
	"github.com/ukaji3/celltab-go/pkg/celltab/ref"
	"github.com/ukaji3/celltab-go/pkg/celltab/value"
)

// LoadOptions configures worksheet import. The zero value matches CSV import
// defaults: no header row, origin A1.
type LoadOptions struct {
	// HasHeaderRow discards the first sheet row.
	HasHeaderRow bool
	// OriginRow is the 1-based row the first kept sheet row lands on. Zero
	// means row 1.
	OriginRow int
	// OriginColumn is the column letters the first cell of each row lands
	// on. Empty means "A".
	OriginColumn string
}

// DefaultLoadOptions returns the default worksheet import options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{}
}

func (o LoadOptions) originRow() int {
	if o.OriginRow == 0 {
		return 1
	}
	return o.OriginRow
}

func (o LoadOptions) originColumn() string {
	if o.OriginColumn == "" {
		return "A"
	}
	return o.OriginColumn
}

// Load reads one worksheet of an xlsx file into a new table. Empty cells are
// skipped; non-empty cell text is coerced the same way CSV fields are, so
// numbers and booleans come back typed. Header and origin options follow the
// CSV import semantics. An empty sheet name means the workbook's first sheet.
func Load(path, sheetName string, opts LoadOptions) (*celltab.Table, error) {
	originRow := opts.originRow()
	if originRow < 1 {
		return nil, fmt.Errorf("origin row %d: %w", originRow, ref.ErrRange)
	}
	originCol, err := ref.ColumnNumber(opts.originColumn())
	if err != nil {
		return nil, fmt.Errorf("origin column: %w", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	if opts.HasHeaderRow && len(rows) > 0 {
		rows = rows[1:]
	}

	t := celltab.New()
	for rowIdx, row := range rows {
		for colIdx, cellText := range row {
			v := value.Coerce(cellText)
			if v.IsAbsent() {
				continue
			}
			reference, err := ref.Encode(originRow+rowIdx, originCol+colIdx)
			if err != nil {
				return nil, err
			}
			if err := t.Set(reference, v); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// Save writes the table's occupied cells to a worksheet and saves the
// workbook at path. Values keep their native types in the sheet. An empty
// sheet name means the default sheet.
func Save(t *celltab.Table, path, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	} else if sheetName != f.GetSheetName(0) {
		if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
			return err
		}
	}

	for _, p := range t.CompactPairs() {
		if err := f.SetCellValue(sheetName, p.Ref, cellValue(p.Value)); err != nil {
			return fmt.Errorf("cell %s: %w", p.Ref, err)
		}
	}
	return f.SaveAs(path)
}

// cellValue unwraps a typed value into what excelize stores natively.
func cellValue(v value.Value) interface{} {
	switch v.Kind() {
	case value.KindNumber:
		return v.Num()
	case value.KindBool:
		return v.B()
	default:
		return v.Str()
	}
}
