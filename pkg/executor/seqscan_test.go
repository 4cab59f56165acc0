package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmadamsetty/dbcore/pkg/tuple"
)

func buildTable(rows ...tuple.Tuple) *tuple.Table {
	tb := tuple.NewTable()
	for _, r := range rows {
		tb.Insert(r)
	}
	return tb
}

func drain(t *testing.T, ex AbstractExecutor) []tuple.Tuple {
	t.Helper()
	ex.Init()
	var out []tuple.Tuple
	var tup tuple.Tuple
	for ex.Next(&tup) {
		out = append(out, tup)
	}
	require.False(t, ex.Next(&tup), "Next must keep returning false once exhausted")
	return out
}

func TestSeqScan_EmptyTable(t *testing.T) {
	tb := tuple.NewTable()
	scan := NewSeqScan(tb)
	require.Empty(t, drain(t, scan))
}

func TestSeqScan_InsertionOrder(t *testing.T) {
	tb := buildTable(
		tuple.New(1, 10, "a"),
		tuple.New(2, 20, "b"),
		tuple.New(3, 30, "c"),
	)
	scan := NewSeqScan(tb)
	require.Equal(t, []tuple.Tuple{
		{ID: 1, Val1: 10, Val2: "a"},
		{ID: 2, Val1: 20, Val2: "b"},
		{ID: 3, Val1: 30, Val2: "c"},
	}, drain(t, scan))
}

func TestSeqScan_ReInitIsIdempotent(t *testing.T) {
	tb := buildTable(tuple.New(1, 10, "a"), tuple.New(2, 20, "b"))
	scan := NewSeqScan(tb)
	first := drain(t, scan)
	second := drain(t, scan)
	require.Equal(t, first, second)
}

func TestSeqScan_NextBeforeInitPanics(t *testing.T) {
	scan := NewSeqScan(tuple.NewTable())
	var out tuple.Tuple
	require.Panics(t, func() { scan.Next(&out) })
}

func TestFilterSeqScan_GreaterThan(t *testing.T) {
	tb := buildTable(
		tuple.New(1, 1, ""),
		tuple.New(2, 2, ""),
		tuple.New(3, 3, ""),
		tuple.New(4, 4, ""),
		tuple.New(5, 5, ""),
	)
	f := NewFilterSeqScan(tb, FilterPredicate{Value: 3, Op: OpGreater})

	var gotVal1 []int
	for _, tup := range drain(t, f) {
		gotVal1 = append(gotVal1, tup.Val1)
	}
	require.Equal(t, []int{4, 5}, gotVal1)
}

func TestFilterSeqScan_LessAndEqual(t *testing.T) {
	tb := buildTable(tuple.New(1, 1, ""), tuple.New(2, 2, ""), tuple.New(3, 3, ""))

	less := NewFilterSeqScan(tb, FilterPredicate{Value: 2, Op: OpLess})
	var lessVals []int
	for _, tup := range drain(t, less) {
		lessVals = append(lessVals, tup.Val1)
	}
	require.Equal(t, []int{1}, lessVals)

	eq := NewFilterSeqScan(tb, FilterPredicate{Value: 2, Op: OpEqual})
	var eqVals []int
	for _, tup := range drain(t, eq) {
		eqVals = append(eqVals, tup.Val1)
	}
	require.Equal(t, []int{2}, eqVals)
}
