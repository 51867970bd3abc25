package chain

import (
	"sync/atomic"

	"github.com/18thday/logchain/core"
)

// Stats tracks dispatch statistics
type Stats struct {
	// Separate atomic counters per classification
	HandledWarning uint64
	HandledError   uint64
	HandledFatal   uint64
	HandledUnknown uint64
	// DroppedTotal counts messages that matched no handler
	DroppedTotal uint64
	// WriteFailuresTotal counts file writes that failed locally
	WriteFailuresTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementHandled atomically increments the handled counter for a classification
func (s *Stats) IncrementHandled(c core.Classification) {
	switch c {
	case core.Warning:
		atomic.AddUint64(&s.HandledWarning, 1)
	case core.Error:
		atomic.AddUint64(&s.HandledError, 1)
	case core.FatalError:
		atomic.AddUint64(&s.HandledFatal, 1)
	case core.Unknown:
		atomic.AddUint64(&s.HandledUnknown, 1)
	}
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.DroppedTotal, 1)
}

// IncrementWriteFailures atomically increments the write-failure counter
func (s *Stats) IncrementWriteFailures() {
	atomic.AddUint64(&s.WriteFailuresTotal, 1)
}

// GetHandled returns the handled count for a classification
func (s *Stats) GetHandled(c core.Classification) uint64 {
	switch c {
	case core.Warning:
		return atomic.LoadUint64(&s.HandledWarning)
	case core.Error:
		return atomic.LoadUint64(&s.HandledError)
	case core.FatalError:
		return atomic.LoadUint64(&s.HandledFatal)
	case core.Unknown:
		return atomic.LoadUint64(&s.HandledUnknown)
	default:
		return 0
	}
}

// GetDropped returns the dropped count
func (s *Stats) GetDropped() uint64 {
	return atomic.LoadUint64(&s.DroppedTotal)
}

// GetWriteFailures returns the write-failure count
func (s *Stats) GetWriteFailures() uint64 {
	return atomic.LoadUint64(&s.WriteFailuresTotal)
}

// GetTotalHandled returns the total handled across all classifications
func (s *Stats) GetTotalHandled() uint64 {
	return atomic.LoadUint64(&s.HandledWarning) +
		atomic.LoadUint64(&s.HandledError) +
		atomic.LoadUint64(&s.HandledFatal) +
		atomic.LoadUint64(&s.HandledUnknown)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.HandledWarning, 0)
	atomic.StoreUint64(&s.HandledError, 0)
	atomic.StoreUint64(&s.HandledFatal, 0)
	atomic.StoreUint64(&s.HandledUnknown, 0)
	atomic.StoreUint64(&s.DroppedTotal, 0)
	atomic.StoreUint64(&s.WriteFailuresTotal, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	HandledTotal       map[core.Classification]uint64
	DroppedTotal       uint64
	WriteFailuresTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		HandledTotal: map[core.Classification]uint64{
			core.Warning:    s.GetHandled(core.Warning),
			core.Error:      s.GetHandled(core.Error),
			core.FatalError: s.GetHandled(core.FatalError),
			core.Unknown:    s.GetHandled(core.Unknown),
		},
		DroppedTotal:       s.GetDropped(),
		WriteFailuresTotal: s.GetWriteFailures(),
	}
}
