// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/session.go
// Summary: Terminal event loop driving the engine.

package engine

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelslides/render"
)

// Recorder receives navigation transitions, e.g. the history log. A nil
// recorder is fine; recording failures are logged and never interrupt the
// presentation.
type Recorder interface {
	Record(deckPath string, slide int) error
}

// Session runs one presentation: it owns the surface, feeds input events
// into the engine, and draws a pass after every state change. Strictly
// sequential: a transition (including its cache rebuild) completes before
// the draw pass that depends on it begins.
type Session struct {
	surface *render.Surface
	eng     *Engine
	rec     Recorder

	// lastErr holds a failed transition's error until the next successful
	// one; while set, draws show the error instead of a broken slide.
	lastErr error
}

// NewSession wires an engine to a surface.
func NewSession(surface *render.Surface, eng *Engine, rec Recorder) *Session {
	return &Session{surface: surface, eng: eng, rec: rec}
}

// Run blocks until the user quits.
func (s *Session) Run() error {
	s.record()
	s.draw()

	for {
		ev := s.surface.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.surface.Sync()
			s.draw()
		case *tcell.EventKey:
			if s.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey applies one input. Returns true on quit.
func (s *Session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRight:
		s.transition(s.eng.Next)
	case tcell.KeyLeft:
		s.transition(s.eng.Previous)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return true
		case 'l', ' ':
			s.transition(s.eng.Next)
		case 'h':
			s.transition(s.eng.Previous)
		case 'r':
			s.transition(s.eng.Reload)
		case 'g':
			s.transition(func() error { return s.eng.Jump(0) })
		case 'G':
			s.transition(func() error { return s.eng.Jump(s.eng.Count() - 1) })
		default:
			if r >= '1' && r <= '9' {
				s.transition(func() error { return s.eng.Jump(int(r-'1')) })
			}
		}
	}
	return false
}

// transition applies a state change and draws the result. Errors (a failed
// reload, an unresolvable image) are kept visible until a transition
// succeeds again.
func (s *Session) transition(fn func() error) {
	s.lastErr = fn()
	if s.lastErr == nil {
		s.record()
	} else {
		log.Printf("session: transition failed: %v", s.lastErr)
	}
	s.draw()
}

func (s *Session) record() {
	if s.rec == nil {
		return
	}
	if err := s.rec.Record(s.eng.Deck().Path(), s.eng.Index()); err != nil {
		log.Printf("session: history record failed: %v", err)
	}
}

func (s *Session) draw() {
	s.surface.Clear()
	if s.lastErr != nil {
		s.drawError()
	} else {
		s.eng.Compose(s.surface.Viewport(), s.surface)
	}
	s.surface.Show()
}

// drawError paints the failed transition's message so the user can fix the
// deck and hit reload, instead of presenting a desynchronized slide.
func (s *Session) drawError() {
	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Background(s.surface.DefaultBg)
	w, _ := s.surface.Size()
	buf := render.TextBlock(w, 2, "error: "+s.lastErr.Error()+"\npress r to reload, q to quit", style)
	s.surface.DrawCells(s.surface.Viewport(), buf)
}
