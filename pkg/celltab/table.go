// Package celltab provides an in-memory sparse table addressed by
// spreadsheet-style cell references, with lossless CSV import and export.
package celltab

import (
	"sort"

	"github.com/ukaji3/celltab-go/pkg/celltab/ref"
	"github.com/ukaji3/celltab-go/pkg/celltab/value"
)

// Pair is an occupied cell: a reference and its value.
type Pair struct {
	// Ref is the cell reference, e.g. "B12".
	Ref string `json:"ref"`
	// Value is the cell content.
	Value value.Value `json:"v"`
}

// Snapshot is a plain copy of a table's contents, used both as a
// construction input and as the safe read accessor.
type Snapshot struct {
	// Data maps cell reference to value.
	Data map[string]value.Value `json:"data"`
}

// Table is a sparse mapping from cell reference to value. Every key is a
// valid reference; that invariant is enforced on every mutation path.
// Iteration-order operations report cells in insertion order. A Table is not
// safe for concurrent use; callers that share one must serialize access.
type Table struct {
	cells map[string]value.Value
	order []string
}

// New returns an empty table.
func New() *Table {
	return &Table{cells: make(map[string]value.Value)}
}

// NewFromPairs builds a table holding the given cells in the given order.
// Every reference is validated before any cell is stored; one bad reference
// fails the whole construction.
func NewFromPairs(pairs []Pair) (*Table, error) {
	for _, p := range pairs {
		if _, err := ref.Decode(p.Ref); err != nil {
			return nil, err
		}
	}
	t := New()
	for _, p := range pairs {
		t.store(p.Ref, p.Value)
	}
	return t, nil
}

// NewFromMap builds a table from a flat reference-to-value mapping. Go maps
// carry no insertion order, so cells are stored in ascending (row, column)
// order. Validation is all-or-nothing.
func NewFromMap(data map[string]value.Value) (*Table, error) {
	pairs, err := sortedPairs(data)
	if err != nil {
		return nil, err
	}
	return NewFromPairs(pairs)
}

// NewFromSnapshot builds a table from the wrapper form {Data: mapping}.
func NewFromSnapshot(s Snapshot) (*Table, error) {
	return NewFromMap(s.Data)
}

// Set stores a value at a reference, validating the reference first. Storing
// an absent value removes the cell instead of persisting a null marker.
func (t *Table) Set(reference string, v value.Value) error {
	if _, err := ref.Decode(reference); err != nil {
		return err
	}
	t.store(reference, v)
	return nil
}

// SetMany stores every entry of the mapping. All references are validated
// before any write happens, so a single bad key leaves the table untouched.
// Entries apply in ascending (row, column) order.
func (t *Table) SetMany(data map[string]value.Value) error {
	pairs, err := sortedPairs(data)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		t.store(p.Ref, p.Value)
	}
	return nil
}

// Get returns the value at a reference. Missing cells yield the absent
// marker, never an error; only an invalid reference errors.
func (t *Table) Get(reference string) (value.Value, error) {
	if _, err := ref.Decode(reference); err != nil {
		return value.Absent(), err
	}
	return t.cells[reference], nil
}

// GetMany returns the values at the given references in order. All
// references are validated before any read.
func (t *Table) GetMany(references ...string) ([]value.Value, error) {
	for _, r := range references {
		if _, err := ref.Decode(r); err != nil {
			return nil, err
		}
	}
	values := make([]value.Value, len(references))
	for i, r := range references {
		values[i] = t.cells[r]
	}
	return values, nil
}

// Remove deletes the cell at a reference. Removing an absent cell is not an
// error; an invalid reference is.
func (t *Table) Remove(reference string) error {
	if _, err := ref.Decode(reference); err != nil {
		return err
	}
	t.delete(reference)
	return nil
}

// Clear drops every cell.
func (t *Table) Clear() {
	t.cells = make(map[string]value.Value)
	t.order = nil
}

// Size returns the number of occupied cells.
func (t *Table) Size() int { return len(t.cells) }

// IsEmpty reports whether the table has no occupied cells.
func (t *Table) IsEmpty() bool { return len(t.cells) == 0 }

// ListReferences returns the occupied cell references in insertion order.
func (t *Table) ListReferences() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Cells exposes the live internal mapping without copying. Mutating it
// bypasses reference validation and can break the table's invariants; prefer
// SnapshotData unless the copy cost matters.
func (t *Table) Cells() map[string]value.Value {
	return t.cells
}

// SnapshotData returns a copy of the table's contents.
func (t *Table) SnapshotData() Snapshot {
	data := make(map[string]value.Value, len(t.cells))
	for k, v := range t.cells {
		data[k] = v
	}
	return Snapshot{Data: data}
}

// store writes a pre-validated reference. Updates keep their original
// insertion position; absent values remove instead.
func (t *Table) store(reference string, v value.Value) {
	if v.IsAbsent() {
		t.delete(reference)
		return
	}
	if _, ok := t.cells[reference]; !ok {
		t.order = append(t.order, reference)
	}
	t.cells[reference] = v
}

// delete removes a pre-validated reference from both the map and the
// insertion-order list.
func (t *Table) delete(reference string) {
	if _, ok := t.cells[reference]; !ok {
		return
	}
	delete(t.cells, reference)
	for i, r := range t.order {
		if r == reference {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// sortedPairs validates every key of a mapping and returns its entries in
// ascending (row, column) order. It returns the first validation error
// without partial results.
func sortedPairs(data map[string]value.Value) ([]Pair, error) {
	type entry struct {
		pair  Pair
		coord ref.Coord
	}
	entries := make([]entry, 0, len(data))
	for k, v := range data {
		c, err := ref.Decode(k)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{pair: Pair{Ref: k, Value: v}, coord: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].coord.Row != entries[j].coord.Row {
			return entries[i].coord.Row < entries[j].coord.Row
		}
		return entries[i].coord.Col < entries[j].coord.Col
	})
	pairs := make([]Pair, len(entries))
	for i, e := range entries {
		pairs[i] = e.pair
	}
	return pairs, nil
}
