package executor

import (
	"github.com/pmadamsetty/dbcore/pkg/metrics"
	"github.com/pmadamsetty/dbcore/pkg/tuple"
)

// SeqScanExecutor walks a Table from Begin to End in insertion order.
type SeqScanExecutor struct {
	table   *tuple.Table
	cursor  int
	inited  bool
	metrics *metrics.Executors
}

// NewSeqScan builds a scan over table. table is borrowed, not owned.
func NewSeqScan(table *tuple.Table) *SeqScanExecutor {
	return &SeqScanExecutor{table: table}
}

// SetMetrics attaches an optional tuple-throughput counter.
func (s *SeqScanExecutor) SetMetrics(m *metrics.Executors) {
	s.metrics = m
}

func (s *SeqScanExecutor) Init() {
	s.cursor = s.table.Begin()
	s.inited = true
}

func (s *SeqScanExecutor) Next(out *tuple.Tuple) bool {
	if !s.inited {
		panic(ErrNotInitialized)
	}
	if s.cursor >= s.table.End() {
		return false
	}
	*out = s.table.At(s.cursor)
	s.cursor++
	s.metrics.IncProduced(metrics.KindSeqScan)
	return true
}
