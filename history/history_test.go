// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/history_test.go
// Summary: Exercises the navigation history round-trip.

package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLastIndexEmpty(t *testing.T) {
	l := openTestLog(t)
	_, ok, err := l.LastIndex("deck.json")
	if err != nil {
		t.Fatalf("last index: %v", err)
	}
	if ok {
		t.Fatalf("fresh log should have no last index")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	l := openTestLog(t)
	for _, slide := range []int{0, 1, 2, 1} {
		if err := l.Record("deck.json", slide); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	l.Record("other.json", 7)

	got, ok, err := l.LastIndex("deck.json")
	if err != nil {
		t.Fatalf("last index: %v", err)
	}
	if !ok || got != 1 {
		t.Fatalf("expected last index 1, got %d (ok=%v)", got, ok)
	}
}

func TestDwellStats(t *testing.T) {
	l := openTestLog(t)

	// Deterministic clock: one second between events.
	base := time.Unix(1000, 0)
	step := 0
	l.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	// 0 (1s) -> 1 (1s) -> 0 (1s) -> 2 (open-ended)
	for _, slide := range []int{0, 1, 0, 2} {
		if err := l.Record("deck.json", slide); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	stats, err := l.DwellStats("deck.json")
	if err != nil {
		t.Fatalf("dwell stats: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected stats for 3 slides, got %d", len(stats))
	}

	if stats[0].Slide != 0 || stats[0].Visits != 2 || stats[0].Total != 2*time.Second {
		t.Fatalf("slide 0: %+v", stats[0])
	}
	if stats[1].Visits != 1 || stats[1].Total != time.Second {
		t.Fatalf("slide 1: %+v", stats[1])
	}
	if stats[2].Visits != 1 || stats[2].Total != 0 {
		t.Fatalf("open-ended final visit should add no time: %+v", stats[2])
	}

	var total time.Duration
	for _, d := range stats {
		total += d.Total
	}
	if total != 3*time.Second {
		t.Fatalf("dwell should sum to recorded span, got %v", total)
	}
}

func TestDwellStatsSeparatesRuns(t *testing.T) {
	l := openTestLog(t)

	record := func(base time.Time, slides ...int) {
		step := 0
		l.now = func() time.Time {
			step++
			return base.Add(time.Duration(step) * time.Second)
		}
		for _, slide := range slides {
			if err := l.Record("deck.json", slide); err != nil {
				t.Fatalf("record: %v", err)
			}
		}
	}

	// Two rehearsals hours apart. The gap between the first run's final
	// event and the second run's first event is off-the-clock, not dwell
	// time on slide 1.
	record(time.Unix(1000, 0), 0, 1)
	l.run++
	record(time.Unix(1000, 0).Add(5*time.Hour), 0, 1)

	stats, err := l.DwellStats("deck.json")
	if err != nil {
		t.Fatalf("dwell stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected stats for 2 slides, got %d", len(stats))
	}
	if stats[0].Visits != 2 || stats[0].Total != 2*time.Second {
		t.Fatalf("slide 0 should hold one second per run: %+v", stats[0])
	}
	if stats[1].Visits != 2 || stats[1].Total != 0 {
		t.Fatalf("run-final visits must contribute no time: %+v", stats[1])
	}
}
