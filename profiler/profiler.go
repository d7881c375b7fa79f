// Package profiler times the stages of a pipeline run.
package profiler

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TimeTracker tracks operation timing statistics.
type TimeTracker struct {
	Name      string
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
	Count     int64
	first     int
}

// Average returns the mean duration of the tracked operation.
func (t TimeTracker) Average() time.Duration {
	if t.Count == 0 {
		return 0
	}
	return t.TotalTime / time.Duration(t.Count)
}

// StageProfiler records how long each named operation takes.
//
// It is safe for concurrent use.
type StageProfiler struct {
	mu             sync.Mutex
	startTime      time.Time
	now            func() time.Time
	operationTimes map[string]*TimeTracker
}

// NewStageProfiler creates an empty profiler.
func NewStageProfiler() *StageProfiler {
	return &StageProfiler{
		startTime:      time.Now(),
		now:            time.Now,
		operationTimes: make(map[string]*TimeTracker),
	}
}

// StartOperation begins timing an operation.
//
// Arguments:
// - name: The name of the operation to track
//
// Returns:
// - A function to call when the operation completes
func (sp *StageProfiler) StartOperation(name string) func() {
	start := sp.now()
	return func() {
		sp.recordOperationTime(name, sp.now().Sub(start))
	}
}

// recordOperationTime records the completion time of an operation.
func (sp *StageProfiler) recordOperationTime(name string, duration time.Duration) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	tracker, exists := sp.operationTimes[name]
	if !exists {
		tracker = &TimeTracker{
			Name:    name,
			MinTime: duration,
			MaxTime: duration,
			first:   len(sp.operationTimes),
		}
		sp.operationTimes[name] = tracker
	}

	tracker.TotalTime += duration
	tracker.Count++

	if duration < tracker.MinTime {
		tracker.MinTime = duration
	}
	if duration > tracker.MaxTime {
		tracker.MaxTime = duration
	}
}

// Stats returns a snapshot of every tracked operation in the order each was
// first recorded.
func (sp *StageProfiler) Stats() []TimeTracker {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	stats := make([]TimeTracker, 0, len(sp.operationTimes))
	for _, t := range sp.operationTimes {
		stats = append(stats, *t)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].first < stats[j].first })
	return stats
}

// Report logs one debug line per operation and an info summary.
func (sp *StageProfiler) Report(logger *zap.Logger) {
	var total time.Duration
	for _, s := range sp.Stats() {
		total += s.TotalTime
		logger.Debug("stage timing",
			zap.String("stage", s.Name),
			zap.Duration("duration", s.TotalTime),
			zap.Int64("count", s.Count),
		)
	}

	logger.Info("run finished",
		zap.Duration("stages", total),
		zap.Duration("wall", sp.now().Sub(sp.startTime)),
	)
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
