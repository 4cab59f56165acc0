package executor

import (
	"github.com/pmadamsetty/dbcore/pkg/metrics"
	"github.com/pmadamsetty/dbcore/pkg/tuple"
)

// HashJoinExecutor probes a hash table built from left against right,
// one right tuple at a time. Output tuples are left-side tuples only;
// no combined row format exists. Hash collisions between non-equal
// keys are not filtered at this layer: every left tuple sharing a
// bucket with the probe tuple is emitted, not only those whose join
// attribute truly matches.
type HashJoinExecutor struct {
	left, right AbstractExecutor
	hashFn      SimpleHashFunction

	buckets     map[uint64][]tuple.Tuple
	probeBucket []tuple.Tuple
	probeIdx    int
	inited      bool

	metrics *metrics.Executors
}

// NewHashJoin builds a hash join over left and right keyed by hashFn.
func NewHashJoin(left, right AbstractExecutor, hashFn SimpleHashFunction) *HashJoinExecutor {
	return &HashJoinExecutor{left: left, right: right, hashFn: hashFn}
}

// SetMetrics attaches an optional tuple-throughput counter.
func (h *HashJoinExecutor) SetMetrics(m *metrics.Executors) {
	h.metrics = m
}

func (h *HashJoinExecutor) Init() {
	h.buckets = make(map[uint64][]tuple.Tuple)
	h.left.Init()

	var t tuple.Tuple
	for h.left.Next(&t) {
		k := h.hashFn.Hash(t)
		h.buckets[k] = append(h.buckets[k], t)
	}

	h.right.Init()
	h.probeBucket = nil
	h.probeIdx = 0
	h.inited = true
}

func (h *HashJoinExecutor) Next(out *tuple.Tuple) bool {
	if !h.inited {
		panic(ErrNotInitialized)
	}

	for {
		if h.probeIdx < len(h.probeBucket) {
			*out = h.probeBucket[h.probeIdx]
			h.probeIdx++
			h.metrics.IncProduced(metrics.KindHashJoin)
			return true
		}

		var rt tuple.Tuple
		if !h.right.Next(&rt) {
			return false
		}

		if bucket, ok := h.buckets[h.hashFn.Hash(rt)]; ok && len(bucket) > 0 {
			h.probeBucket = bucket
			h.probeIdx = 0
		}
	}
}
