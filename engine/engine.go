// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/engine.go
// Summary: Navigation state machine over a loaded deck.

// Package engine owns the presentation state: the loaded deck, the current
// slide index, and the per-slide resource cache. It is single-owner and
// single-threaded: one input event is handled to completion, then one draw
// pass runs. Nothing here is safe for concurrent use and nothing needs
// to be.
package engine

import (
	"fmt"

	"github.com/framegrace/texelslides/deck"
	"github.com/framegrace/texelslides/render"
)

// Engine holds navigation state for one presentation session. The machine
// is cyclic: Next from the last slide wraps to the first, Previous from the
// first wraps to the last, for the lifetime of the session.
type Engine struct {
	deck  *deck.Deck
	index int
	cache resourceCache
	theme render.Theme

	// cacheOK is false after a failed rebuild: the index points at a slide
	// whose resources were never prepared, and no draw pass may run until a
	// rebuild succeeds.
	cacheOK bool
}

// New loads the deck at path and positions the engine on slide zero with
// its resources prepared. The loader has already rejected empty decks, so
// every constructed engine is navigable.
func New(path string, theme render.Theme) (*Engine, error) {
	d, err := deck.Load(path)
	if err != nil {
		return nil, err
	}
	e := &Engine{deck: d, theme: theme}
	if err := e.rebuildCurrent(); err != nil {
		return nil, fmt.Errorf("prepare first slide: %w", err)
	}
	return e, nil
}

// Index returns the current slide index.
func (e *Engine) Index() int {
	return e.index
}

// Count returns the slide count.
func (e *Engine) Count() int {
	return e.deck.Len()
}

// Deck returns the loaded deck for read-only use during a draw pass.
func (e *Engine) Deck() *deck.Deck {
	return e.deck
}

// Next advances to the following slide, wrapping past the end, and
// rebuilds the resource cache for it.
func (e *Engine) Next() error {
	e.ensureNavigable()
	e.index = (e.index + 1) % e.deck.Len()
	return e.rebuildCurrent()
}

// Previous steps back one slide, wrapping from the first to the last, and
// rebuilds the resource cache for it.
func (e *Engine) Previous() error {
	e.ensureNavigable()
	if e.index == 0 {
		e.index = e.deck.Len() - 1
	} else {
		e.index--
	}
	return e.rebuildCurrent()
}

// Jump moves to the given index, clamped into range. The cache is rebuilt
// when the index changes, and also when it does not but the last rebuild
// failed: a failed transition parks the index on an unprepared slide, and
// jumping onto it must retry the rebuild instead of reporting success.
func (e *Engine) Jump(index int) error {
	e.ensureNavigable()
	if index < 0 {
		index = 0
	}
	if index >= e.deck.Len() {
		index = e.deck.Len() - 1
	}
	if index == e.index && e.cacheOK {
		return nil
	}
	e.index = index
	return e.rebuildCurrent()
}

// Reload re-reads the deck from its original source. On load failure the
// old deck stays current and the error is returned for display. On success
// the index is clamped into the new range (a deck that shrank below the
// current position lands on its new last slide) and the cache is rebuilt
// unconditionally, since slide content may have changed even if the index
// did not.
func (e *Engine) Reload() error {
	d, err := deck.Load(e.deck.Path())
	if err != nil {
		return err
	}
	e.deck = d
	if e.index >= d.Len() {
		e.index = d.Len() - 1
	}
	return e.rebuildCurrent()
}

func (e *Engine) rebuildCurrent() error {
	err := e.cache.rebuild(e.deck.Slide(e.index), e.deck, e.theme)
	e.cacheOK = err == nil
	return err
}

// ensureNavigable guards the wrap arithmetic. The loader rejects empty
// decks, so hitting this means the surrounding driver broke the state
// machine, not that the user did anything wrong.
func (e *Engine) ensureNavigable() {
	if e.deck.Len() == 0 {
		panic("engine: navigation on an empty deck")
	}
}
