// Package metrics provides optional Prometheus instrumentation for the
// B+ tree and executor pipeline. Attaching a metrics collector never
// changes behavior; it is a pure observer over structural mutations and
// tuple throughput.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tree-mutation operation labels.
const (
	OpSplit    = "split"
	OpMerge    = "merge"
	OpBorrow   = "borrow"
	OpCollapse = "collapse"
)

// Executor kind labels.
const (
	KindSeqScan    = "seqscan"
	KindFilter     = "filter"
	KindHashJoin   = "hashjoin"
	KindNestedLoop = "nestedloop"
	KindAggregate  = "aggregate"
)

// Tree holds counters for B+ tree structural mutations: splits, merges,
// borrows, and root collapses, each broken down by node kind (leaf or
// internal).
type Tree struct {
	mutations *prometheus.CounterVec
}

// NewTree creates and registers the B+ tree mutation counters against
// reg. Pass prometheus.NewRegistry() in tests to avoid polluting the
// default global registry.
func NewTree(reg prometheus.Registerer) *Tree {
	t := &Tree{
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dbcore_bptree_mutations_total",
				Help: "Total number of B+ tree structural mutations, by operation and node kind.",
			},
			[]string{"op", "node_kind"},
		),
	}
	reg.MustRegister(t.mutations)
	return t
}

// NewTreeAuto is like NewTree but registers against the default global
// registry via promauto.
func NewTreeAuto() *Tree {
	return &Tree{
		mutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dbcore_bptree_mutations_total",
				Help: "Total number of B+ tree structural mutations, by operation and node kind.",
			},
			[]string{"op", "node_kind"},
		),
	}
}

// Inc records one occurrence of op (OpSplit, OpMerge, OpBorrow, or
// OpCollapse) on a node of the given kind ("leaf" or "internal"). Inc is
// nil-receiver safe: calling it on a nil *Tree is a no-op, so the
// B+ tree doesn't need to nil-check before every mutation.
func (t *Tree) Inc(op, nodeKind string) {
	if t == nil {
		return
	}
	t.mutations.WithLabelValues(op, nodeKind).Inc()
}

// Executors holds a counter for tuples produced by each executor kind.
type Executors struct {
	tuplesProduced *prometheus.CounterVec
}

// NewExecutors creates and registers the executor throughput counter
// against reg.
func NewExecutors(reg prometheus.Registerer) *Executors {
	e := &Executors{
		tuplesProduced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dbcore_executor_tuples_produced_total",
				Help: "Total number of tuples produced by Next(), by executor kind.",
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(e.tuplesProduced)
	return e
}

// NewExecutorsAuto is like NewExecutors but registers against the
// default global registry via promauto.
func NewExecutorsAuto() *Executors {
	return &Executors{
		tuplesProduced: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dbcore_executor_tuples_produced_total",
				Help: "Total number of tuples produced by Next(), by executor kind.",
			},
			[]string{"kind"},
		),
	}
}

// IncProduced records one tuple produced by an executor of the given
// kind. Nil-receiver safe, like Tree.Inc.
func (e *Executors) IncProduced(kind string) {
	if e == nil {
		return
	}
	e.tuplesProduced.WithLabelValues(kind).Inc()
}
