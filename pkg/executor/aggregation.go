package executor

import (
	"github.com/pmadamsetty/dbcore/pkg/metrics"
	"github.com/pmadamsetty/dbcore/pkg/tuple"
)

// AggregationType selects which statistic AggregationExecutor computes
// over its child's Val1 stream.
type AggregationType int

const (
	AggCount AggregationType = iota
	AggSum
	AggMin
	AggMax
)

// AggregationExecutor is a pipeline breaker: on its first Next it
// drains child completely, computing COUNT/SUM/MIN/MAX over Val1 in a
// single pass, then emits exactly one tuple carrying the requested
// statistic. Subsequent Next calls return false. A child that produces
// zero tuples yields no aggregate tuple at all, including for COUNT.
type AggregationExecutor struct {
	child AbstractExecutor
	kind  AggregationType

	inited   bool
	computed bool
	hasValue bool
	emitted  bool
	result   tuple.Tuple

	metrics *metrics.Executors
}

// NewAggregation builds an aggregation over child's Val1 values.
func NewAggregation(child AbstractExecutor, kind AggregationType) *AggregationExecutor {
	return &AggregationExecutor{child: child, kind: kind}
}

// SetMetrics attaches an optional tuple-throughput counter.
func (a *AggregationExecutor) SetMetrics(m *metrics.Executors) {
	a.metrics = m
}

func (a *AggregationExecutor) Init() {
	a.child.Init()
	a.inited = true
	a.computed = false
	a.hasValue = false
	a.emitted = false
}

func (a *AggregationExecutor) Next(out *tuple.Tuple) bool {
	if !a.inited {
		panic(ErrNotInitialized)
	}

	if !a.computed {
		a.computed = true
		a.drain()
	}

	if a.hasValue && !a.emitted {
		a.emitted = true
		*out = a.result
		a.metrics.IncProduced(metrics.KindAggregate)
		return true
	}
	return false
}

func (a *AggregationExecutor) drain() {
	var t tuple.Tuple
	count, sum, min, max := 0, 0, 0, 0
	seen := false

	for a.child.Next(&t) {
		v := t.Val1
		if !seen {
			min, max = v, v
			seen = true
		} else {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		sum += v
		count++
	}

	if !seen {
		return
	}

	var val int
	switch a.kind {
	case AggCount:
		val = count
	case AggSum:
		val = sum
	case AggMin:
		val = min
	case AggMax:
		val = max
	}

	a.result = tuple.New(0, val, "")
	a.hasValue = true
}
