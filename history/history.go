// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/history.go
// Summary: SQLite log of navigation transitions.
//
// Backs two features:
//   - Resume: reopen a deck at the last viewed slide
//   - Rehearsal stats: per-slide dwell time across practice runs

// Package history persists which slide was shown when. It is strictly
// best-effort: the presentation keeps running if the log is unavailable.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS slide_events (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	deck  TEXT    NOT NULL,
	slide INTEGER NOT NULL,
	run   INTEGER NOT NULL,
	at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_slide_events_deck_run_at ON slide_events(deck, run, at);
`

// Log is an open history database. Every Log gets its own run id, so
// events from separate rehearsal sessions never blur together in the
// dwell aggregation.
type Log struct {
	db     *sql.DB
	insert *sql.Stmt
	now    func() time.Time
	run    int64
}

// Open creates or opens the history database at path.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	insert, err := db.Prepare(`INSERT INTO slide_events (deck, slide, run, at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare history insert: %w", err)
	}
	return &Log{db: db, insert: insert, now: time.Now, run: time.Now().UnixNano()}, nil
}

// Record logs that a slide became current.
func (l *Log) Record(deckPath string, slide int) error {
	_, err := l.insert.Exec(deckPath, slide, l.run, l.now().UnixNano())
	if err != nil {
		return fmt.Errorf("record slide event: %w", err)
	}
	return nil
}

// LastIndex returns the most recently shown slide for a deck. The second
// return is false when the deck has no history.
func (l *Log) LastIndex(deckPath string) (int, bool, error) {
	row := l.db.QueryRow(
		`SELECT slide FROM slide_events WHERE deck = ? ORDER BY at DESC, id DESC LIMIT 1`,
		deckPath)
	var slide int
	switch err := row.Scan(&slide); err {
	case nil:
		return slide, true, nil
	case sql.ErrNoRows:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("query last index: %w", err)
	}
}

// Dwell is accumulated display time for one slide.
type Dwell struct {
	Slide  int
	Total  time.Duration
	Visits int
}

// DwellStats sums how long each slide was on screen across all recorded
// runs of a deck. Within a run, the gap between consecutive events is
// attributed to the earlier event's slide; the final event of each run is
// open-ended and contributes a visit but no time. Time between runs is
// off-the-clock and never attributed to anything.
func (l *Log) DwellStats(deckPath string) ([]Dwell, error) {
	rows, err := l.db.Query(
		`SELECT slide, run, at FROM slide_events WHERE deck = ? ORDER BY run, at, id`,
		deckPath)
	if err != nil {
		return nil, fmt.Errorf("query dwell stats: %w", err)
	}
	defer rows.Close()

	totals := map[int]*Dwell{}
	maxSlide := -1
	prevSlide, prevRun, prevAt := -1, int64(0), int64(0)

	for rows.Next() {
		var slide int
		var run, at int64
		if err := rows.Scan(&slide, &run, &at); err != nil {
			return nil, fmt.Errorf("scan dwell row: %w", err)
		}
		if _, ok := totals[slide]; !ok {
			totals[slide] = &Dwell{Slide: slide}
		}
		totals[slide].Visits++
		if slide > maxSlide {
			maxSlide = slide
		}
		if prevSlide >= 0 && run == prevRun {
			totals[prevSlide].Total += time.Duration(at - prevAt)
		}
		prevSlide, prevRun, prevAt = slide, run, at
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dwell rows: %w", err)
	}

	out := make([]Dwell, 0, len(totals))
	for s := 0; s <= maxSlide; s++ {
		if d, ok := totals[s]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

// Close releases the database.
func (l *Log) Close() error {
	l.insert.Close()
	return l.db.Close()
}
