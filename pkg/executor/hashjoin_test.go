package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmadamsetty/dbcore/pkg/tuple"
)

func TestHashJoin_MatchesOnSharedAttribute(t *testing.T) {
	left := buildTable(
		tuple.New(1, 10, "a"),
		tuple.New(2, 20, "b"),
		tuple.New(3, 10, "c"),
	)
	right := buildTable(
		tuple.New(9, 10, "z"),
		tuple.New(8, 20, "y"),
	)

	hashFn, err := NewSimpleHashFunction("val1")
	require.NoError(t, err)

	join := NewHashJoin(NewSeqScan(left), NewSeqScan(right), hashFn)
	got := drain(t, join)

	var ids []int
	for _, tup := range got {
		ids = append(ids, tup.ID)
	}
	require.ElementsMatch(t, []int{1, 3, 2}, ids)
}

func TestHashJoin_NoMatchOnRightExhaustsCleanly(t *testing.T) {
	left := buildTable(tuple.New(1, 10, "a"))
	right := buildTable(tuple.New(9, 99, "z"))

	hashFn, err := NewSimpleHashFunction("val1")
	require.NoError(t, err)

	join := NewHashJoin(NewSeqScan(left), NewSeqScan(right), hashFn)
	require.Empty(t, drain(t, join))
}

func TestHashJoin_EmitsEveryLeftTupleInProbeBucket(t *testing.T) {
	// Both left tuples share val1 with the probe tuple (id/val2 differ),
	// so they land in the probe's bucket and both are emitted, one per
	// Next call. mixInt is a bijection, so distinct integer keys never
	// share a bucket; this test does not produce a collision between
	// non-equal keys.
	left := buildTable(tuple.New(1, 5, "left-a"), tuple.New(2, 5, "left-b"))
	right := buildTable(tuple.New(9, 5, "right-z"))

	hashFn, err := NewSimpleHashFunction("val1")
	require.NoError(t, err)

	join := NewHashJoin(NewSeqScan(left), NewSeqScan(right), hashFn)
	got := drain(t, join)
	require.Len(t, got, 2, "both left tuples sharing the bucket must be emitted")
}

func TestNewSimpleHashFunction_RejectsUnknownAttribute(t *testing.T) {
	_, err := NewSimpleHashFunction("bogus")
	require.Error(t, err)
}
