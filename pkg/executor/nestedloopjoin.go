package executor

import (
	"github.com/pmadamsetty/dbcore/pkg/metrics"
	"github.com/pmadamsetty/dbcore/pkg/tuple"
)

// NestedLoopJoinExecutor scans left once per right tuple, emitting
// every left tuple whose named attribute equals the current right
// tuple's. It holds only the current right tuple and whether it is
// still valid — no other cross-call state — and re-derives "left
// exhausted for this right tuple" from left.Next itself rather than
// caching a stale flag.
type NestedLoopJoinExecutor struct {
	left, right AbstractExecutor
	attr        string

	rightTuple tuple.Tuple
	rightValid bool
	inited     bool

	metrics *metrics.Executors
}

// NewNestedLoopJoin builds a nested-loop join over left and right on
// attr, which must be one of "id", "val1", "val2".
func NewNestedLoopJoin(left, right AbstractExecutor, attr string) (*NestedLoopJoinExecutor, error) {
	if err := validateAttribute(attr); err != nil {
		return nil, err
	}
	return &NestedLoopJoinExecutor{left: left, right: right, attr: attr}, nil
}

// SetMetrics attaches an optional tuple-throughput counter.
func (n *NestedLoopJoinExecutor) SetMetrics(m *metrics.Executors) {
	n.metrics = m
}

func (n *NestedLoopJoinExecutor) Init() {
	n.left.Init()
	n.right.Init()
	n.rightValid = n.right.Next(&n.rightTuple)
	n.inited = true
}

func (n *NestedLoopJoinExecutor) Next(out *tuple.Tuple) bool {
	if !n.inited {
		panic(ErrNotInitialized)
	}

	for n.rightValid {
		var lt tuple.Tuple
		for n.left.Next(&lt) {
			if extractAttr(lt, n.attr) == extractAttr(n.rightTuple, n.attr) {
				*out = lt
				n.metrics.IncProduced(metrics.KindNestedLoop)
				return true
			}
		}

		// left exhausted for this right tuple: restart it and advance right.
		n.left.Init()
		n.rightValid = n.right.Next(&n.rightTuple)
	}
	return false
}
