package chain

import (
	"testing"

	"github.com/18thday/logchain/core"
)

func TestStatsCounters(t *testing.T) {
	s := NewStats()

	s.IncrementHandled(core.Warning)
	s.IncrementHandled(core.Warning)
	s.IncrementHandled(core.Error)
	s.IncrementHandled(core.FatalError)
	s.IncrementHandled(core.Unknown)
	s.IncrementDropped()
	s.IncrementWriteFailures()

	if got := s.GetHandled(core.Warning); got != 2 {
		t.Errorf("GetHandled(Warning) = %d, want 2", got)
	}
	if got := s.GetTotalHandled(); got != 5 {
		t.Errorf("GetTotalHandled() = %d, want 5", got)
	}
	if got := s.GetDropped(); got != 1 {
		t.Errorf("GetDropped() = %d, want 1", got)
	}
	if got := s.GetWriteFailures(); got != 1 {
		t.Errorf("GetWriteFailures() = %d, want 1", got)
	}
}

func TestStatsOutOfRangeClassification(t *testing.T) {
	s := NewStats()

	// Counters ignore classifications outside the enumerated set.
	s.IncrementHandled(core.Classification(42))
	if got := s.GetTotalHandled(); got != 0 {
		t.Errorf("GetTotalHandled() = %d, want 0", got)
	}
	if got := s.GetHandled(core.Classification(42)); got != 0 {
		t.Errorf("GetHandled(out-of-range) = %d, want 0", got)
	}
}

func TestStatsReset(t *testing.T) {
	s := NewStats()
	s.IncrementHandled(core.Error)
	s.IncrementDropped()
	s.IncrementWriteFailures()

	s.Reset()

	snap := s.GetSnapshot()
	for c, n := range snap.HandledTotal {
		if n != 0 {
			t.Errorf("HandledTotal[%v] = %d after Reset, want 0", c, n)
		}
	}
	if snap.DroppedTotal != 0 {
		t.Errorf("DroppedTotal = %d after Reset, want 0", snap.DroppedTotal)
	}
	if snap.WriteFailuresTotal != 0 {
		t.Errorf("WriteFailuresTotal = %d after Reset, want 0", snap.WriteFailuresTotal)
	}
}

func TestStatsSnapshot(t *testing.T) {
	s := NewStats()
	s.IncrementHandled(core.Warning)
	s.IncrementHandled(core.Error)

	snap := s.GetSnapshot()
	if snap.HandledTotal[core.Warning] != 1 || snap.HandledTotal[core.Error] != 1 {
		t.Errorf("snapshot = %+v, want one warning and one error", snap.HandledTotal)
	}
	if snap.HandledTotal[core.FatalError] != 0 || snap.HandledTotal[core.Unknown] != 0 {
		t.Errorf("snapshot = %+v, want zero fatals and unknowns", snap.HandledTotal)
	}
}
