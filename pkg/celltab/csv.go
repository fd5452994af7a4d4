package celltab

import (
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/celltab-go/pkg/celltab/csvio"
	"github.com/ukaji3/celltab-go/pkg/celltab/ref"
	"github.com/ukaji3/celltab-go/pkg/celltab/value"
)

// ToCSV serializes the table's bounding-box region. Missing cells become
// empty fields. An empty table yields the empty string, with no terminator
// and no header row.
func (t *Table) ToCSV(opts ExportOptions) string {
	box, ok := t.BoundingBox()
	if !ok {
		return ""
	}
	sep := opts.separator()
	startCol := box.MinCol
	if opts.shouldAnchorAtColumnA() {
		startCol = 1
	}

	var lines []string
	if opts.IncludeHeaders {
		headers := make([]string, 0, box.MaxCol-startCol+1)
		for col := startCol; col <= box.MaxCol; col++ {
			letters, _ := ref.ColumnLetters(col)
			headers = append(headers, letters)
		}
		lines = append(lines, csvio.JoinLine(headers, sep))
	}

	for row := box.MinRow; row <= box.MaxRow; row++ {
		fields := make([]string, 0, box.MaxCol-startCol+1)
		for col := startCol; col <= box.MaxCol; col++ {
			reference, _ := ref.Encode(row, col)
			fields = append(fields, t.cells[reference].Render())
		}
		lines = append(lines, csvio.JoinLine(fields, sep))
	}

	return strings.Join(lines, opts.lineTerminator())
}

// LoadCSV replaces the table's contents with the parsed text. Each field is
// coerced to a typed value and stored at the reference derived from the
// origin plus the field's position; empty fields are skipped entirely, so
// they never appear as keys. Existing contents are cleared once the options
// validate.
func (t *Table) LoadCSV(text string, opts ImportOptions) error {
	originRow := opts.originRow()
	if originRow < 1 {
		return fmt.Errorf("origin row %d: %w", originRow, ref.ErrRange)
	}
	originCol, err := ref.ColumnNumber(opts.originColumn())
	if err != nil {
		return fmt.Errorf("origin column: %w", err)
	}

	rows := csvio.Parse(text, opts.separator())
	if opts.HasHeaderRow && len(rows) > 0 {
		rows = rows[1:]
	}

	// The whole destination range must be addressable before any existing
	// contents are dropped, so a failed load never leaves a half-cleared
	// table.
	maxWidth := 0
	for _, row := range rows {
		if len(row) > maxWidth {
			maxWidth = len(row)
		}
	}
	if len(rows) > 0 {
		if originRow > math.MaxInt-(len(rows)-1) || originCol > math.MaxInt-(maxWidth-1) {
			return fmt.Errorf("origin %s%d, %d rows x %d columns: %w",
				opts.originColumn(), originRow, len(rows), maxWidth, ref.ErrRange)
		}
	}

	t.Clear()
	for i, row := range rows {
		for j, field := range row {
			v := value.Coerce(field)
			if v.IsAbsent() {
				continue
			}
			reference, _ := ref.Encode(originRow+i, originCol+j)
			t.store(reference, v)
		}
	}
	return nil
}
