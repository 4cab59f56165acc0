// Package tuple provides the fixed-shape record and in-memory table used
// by the executor pipeline.
package tuple

// Tuple is the fixed-shape row seen by every executor: an integer id,
// an integer val1 (the sole predicate/aggregation target), and a string
// val2. Tuple is a plain value type: copying a Tuple copies its fields
// independently.
type Tuple struct {
	ID   int
	Val1 int
	Val2 string
}

// New builds a Tuple from its three fields.
func New(id, val1 int, val2 string) Tuple {
	return Tuple{ID: id, Val1: val1, Val2: val2}
}

// Table is an ordered, append-only, in-memory bag of tuples. Iteration
// order is insertion order. Table has no notion of a primary key and no
// lookup by id; callers that need point lookup build a BPlusTree
// alongside it.
type Table struct {
	rows []Tuple
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Insert appends t to the table.
func (tb *Table) Insert(t Tuple) {
	tb.rows = append(tb.rows, t)
}

// InsertValues is a convenience wrapper around Insert for callers that
// don't want to build a Tuple by hand.
func (tb *Table) InsertValues(id, val1 int, val2 string) {
	tb.Insert(New(id, val1, val2))
}

// Begin returns the cursor position of the first row. Equal to End when
// the table is empty.
func (tb *Table) Begin() int {
	return 0
}

// End returns the cursor position one past the last row.
func (tb *Table) End() int {
	return len(tb.rows)
}

// At returns the tuple at cursor position i. i must be in [Begin, End).
func (tb *Table) At(i int) Tuple {
	return tb.rows[i]
}

// Len returns the number of rows currently in the table.
func (tb *Table) Len() int {
	return len(tb.rows)
}
