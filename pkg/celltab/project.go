package celltab

import (
	"sort"

	"github.com/ukaji3/celltab-go/pkg/celltab/ref"
	"github.com/ukaji3/celltab-go/pkg/celltab/value"
)

// Box is the minimal rectangle of rows and columns spanning all occupied
// cells.
type Box struct {
	MinRow int `json:"min_row"`
	MaxRow int `json:"max_row"`
	MinCol int `json:"min_col"`
	MaxCol int `json:"max_col"`
}

// RowCell is one occupied cell inside a row group.
type RowCell struct {
	// Col is the column letters, e.g. "C".
	Col string `json:"col"`
	// Value is the cell content.
	Value value.Value `json:"v"`
}

// RowGroup is the occupied cells of a single row, sorted by column.
type RowGroup struct {
	// Row is the 1-based row index.
	Row int `json:"r"`
	// Cells holds the row's occupied cells in ascending column order.
	Cells []RowCell `json:"cells"`
}

// BoundingBox scans the occupied cells and returns their bounding rectangle.
// The second return is false when the table is empty.
func (t *Table) BoundingBox() (Box, bool) {
	if len(t.cells) == 0 {
		return Box{}, false
	}
	var box Box
	first := true
	for reference := range t.cells {
		c, err := ref.Decode(reference)
		if err != nil {
			// Unreachable while the key invariant holds.
			continue
		}
		if first {
			box = Box{MinRow: c.Row, MaxRow: c.Row, MinCol: c.Col, MaxCol: c.Col}
			first = false
			continue
		}
		if c.Row < box.MinRow {
			box.MinRow = c.Row
		}
		if c.Row > box.MaxRow {
			box.MaxRow = c.Row
		}
		if c.Col < box.MinCol {
			box.MinCol = c.Col
		}
		if c.Col > box.MaxCol {
			box.MaxCol = c.Col
		}
	}
	return box, true
}

// Grid materializes a dense rectangular array over the bounding box. Rows
// run from the first occupied row to the last; columns start at column A
// when anchored, or at the first occupied column otherwise. Unoccupied
// positions hold the absent marker. An empty table yields no rows.
//
// The result is dense, so a table with one cell at row 1 and one at row
// 10000 materializes 10000 rows.
func (t *Table) Grid(anchorAtColumnA bool) [][]value.Value {
	box, ok := t.BoundingBox()
	if !ok {
		return nil
	}
	startCol := box.MinCol
	if anchorAtColumnA {
		startCol = 1
	}

	grid := make([][]value.Value, 0, box.MaxRow-box.MinRow+1)
	for row := box.MinRow; row <= box.MaxRow; row++ {
		line := make([]value.Value, 0, box.MaxCol-startCol+1)
		for col := startCol; col <= box.MaxCol; col++ {
			reference, _ := ref.Encode(row, col)
			line = append(line, t.cells[reference])
		}
		grid = append(grid, line)
	}
	return grid
}

// CompactPairs returns every occupied cell as a (reference, value) pair in
// insertion order.
func (t *Table) CompactPairs() []Pair {
	pairs := make([]Pair, 0, len(t.order))
	for _, reference := range t.order {
		pairs = append(pairs, Pair{Ref: reference, Value: t.cells[reference]})
	}
	return pairs
}

// RowGroups returns one group per row that has at least one occupied cell,
// in ascending row order; rows with no cells are omitted. Cells within a
// group are sorted by column.
func (t *Table) RowGroups() []RowGroup {
	type cell struct {
		col     int
		letters string
		v       value.Value
	}
	byRow := make(map[int][]cell)
	for reference, v := range t.cells {
		c, err := ref.Decode(reference)
		if err != nil {
			continue
		}
		letters, _ := ref.ColumnLetters(c.Col)
		byRow[c.Row] = append(byRow[c.Row], cell{col: c.Col, letters: letters, v: v})
	}

	rows := make([]int, 0, len(byRow))
	for row := range byRow {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	groups := make([]RowGroup, 0, len(rows))
	for _, row := range rows {
		cells := byRow[row]
		sort.Slice(cells, func(i, j int) bool { return cells[i].col < cells[j].col })
		group := RowGroup{Row: row, Cells: make([]RowCell, 0, len(cells))}
		for _, c := range cells {
			group.Cells = append(group.Cells, RowCell{Col: c.letters, Value: c.v})
		}
		groups = append(groups, group)
	}
	return groups
}
