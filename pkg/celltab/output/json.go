// Package output serializes table projections to JSON for the CLI.
package output

import (
	"encoding/json"

	"github.com/ukaji3/celltab-go/pkg/celltab"
	"github.com/ukaji3/celltab-go/pkg/celltab/value"
)

// Document bundles the table's projections for JSON output.
type Document struct {
	// Box is the bounding box, absent for an empty table.
	Box *celltab.Box `json:"box,omitempty"`
	// Pairs lists occupied cells in insertion order.
	Pairs []celltab.Pair `json:"pairs"`
	// Rows groups occupied cells by row.
	Rows []celltab.RowGroup `json:"rows"`
	// Grid is the dense materialization over the bounding box.
	Grid [][]value.Value `json:"grid"`
}

// FromTable builds a Document from a table. anchorAtColumnA controls whether
// the grid projection starts at column A or at the first occupied column.
func FromTable(t *celltab.Table, anchorAtColumnA bool) *Document {
	doc := &Document{
		Pairs: t.CompactPairs(),
		Rows:  t.RowGroups(),
		Grid:  t.Grid(anchorAtColumnA),
	}
	if box, ok := t.BoundingBox(); ok {
		doc.Box = &box
	}
	return doc
}

// ToJSON serializes a document, optionally pretty-printed.
func ToJSON(doc *Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
