package executor

import (
	"github.com/pmadamsetty/dbcore/pkg/metrics"
	"github.com/pmadamsetty/dbcore/pkg/tuple"
)

// FilterOp is the comparison a FilterPredicate applies to val1.
type FilterOp int

const (
	OpGreater FilterOp = iota
	OpLess
	OpEqual
)

// FilterPredicate compares a tuple's Val1 against Value.
type FilterPredicate struct {
	Value int
	Op    FilterOp
}

func (p FilterPredicate) matches(val1 int) bool {
	switch p.Op {
	case OpGreater:
		return val1 > p.Value
	case OpLess:
		return val1 < p.Value
	case OpEqual:
		return val1 == p.Value
	default:
		return false
	}
}

// FilterSeqScanExecutor is a SeqScanExecutor that additionally skips
// tuples not matching pred.
type FilterSeqScanExecutor struct {
	scan    *SeqScanExecutor
	pred    FilterPredicate
	metrics *metrics.Executors
}

// NewFilterSeqScan builds a filtering scan over table.
func NewFilterSeqScan(table *tuple.Table, pred FilterPredicate) *FilterSeqScanExecutor {
	return &FilterSeqScanExecutor{scan: NewSeqScan(table), pred: pred}
}

// SetMetrics attaches an optional tuple-throughput counter.
func (f *FilterSeqScanExecutor) SetMetrics(m *metrics.Executors) {
	f.metrics = m
}

func (f *FilterSeqScanExecutor) Init() {
	f.scan.Init()
}

func (f *FilterSeqScanExecutor) Next(out *tuple.Tuple) bool {
	var t tuple.Tuple
	for f.scan.Next(&t) {
		if f.pred.matches(t.Val1) {
			*out = t
			f.metrics.IncProduced(metrics.KindFilter)
			return true
		}
	}
	return false
}
