package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one search: its configuration and what it cost.
type SearchMetric struct {
	Workers  int
	Depth    int
	Boards   int64
	Duration time.Duration
}

// MoveMetric ties a search to the turn it played. Value is from Max's point
// of view.
type MoveMetric struct {
	Step   int
	Player string
	Value  int
	SearchMetric
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector accumulates the cost of one search at a time. Implementations
// must be safe for concurrent use: parallel root workers report their board
// counts as they finish.
type Collector interface {
	Start(workers, depth int)
	AddBoards(count int64)
	Complete() SearchMetric
}

type collector struct {
	workers   int
	depth     int
	startTime time.Time
	boards    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(workers, depth int) {
	m.workers = workers
	m.depth = depth
	m.startTime = time.Now()
	m.boards.Store(0)
}

func (m *collector) AddBoards(count int64) {
	m.boards.Add(count)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Workers:  m.workers,
		Depth:    m.depth,
		Boards:   m.boards.Load(),
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that discards everything.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(workers, depth int) {}
func (m *dummyCollector) AddBoards(count int64)    {}
func (m *dummyCollector) Complete() SearchMetric   { return SearchMetric{} }
