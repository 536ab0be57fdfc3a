// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/surface.go
// Summary: tcell-backed drawing surface for the presentation session.

package render

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/texelslides/imgterm"
	"github.com/framegrace/texelslides/layout"
)

// Surface owns the tcell screen. Cell buffers are painted into tcell's back
// buffer; image draws are queued and emitted as kitty graphics sequences
// right after Show, so the text plane is complete before images overlay it.
type Surface struct {
	screen tcell.Screen

	DefaultFg tcell.Color
	DefaultBg tcell.Color

	pending []pendingImage
}

type pendingImage struct {
	rect   layout.Rect
	handle *imgterm.Handle
}

// NewSurface initializes the terminal. The default-color probe runs before
// tcell takes over the tty; afterwards its input loop would eat the reply.
func NewSurface() (*Surface, error) {
	fg, bg, _ := queryDefaultColors()

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newSurface(screen, fg, bg)
}

// newSurface finishes setup on a created screen. The probed colors become
// the screen's default style, so cleared regions and default-colored text
// match the terminal's real palette instead of assuming white on black.
func newSurface(screen tcell.Screen, fg, bg tcell.Color) (*Surface, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Foreground(fg).Background(bg))
	screen.HideCursor()

	return &Surface{screen: screen, DefaultFg: fg, DefaultBg: bg}, nil
}

// Size returns the terminal dimensions in cells.
func (s *Surface) Size() (int, int) {
	return s.screen.Size()
}

// Viewport returns the full terminal as a rect.
func (s *Surface) Viewport() layout.Rect {
	w, h := s.screen.Size()
	return layout.NewRect(0, 0, w, h)
}

// Clear wipes the back buffer and drops any queued image draws.
func (s *Surface) Clear() {
	s.screen.Clear()
	s.pending = s.pending[:0]
}

// DrawCells paints a cell buffer at the rect's origin. Transparent cells
// are skipped so layered buffers compose. The buffer's own dimensions win
// over the rect's declared size; cells outside the screen are dropped by
// tcell.
func (s *Surface) DrawCells(r layout.Rect, buf [][]Cell) {
	for y, row := range buf {
		for x, c := range row {
			if c.Transparent() {
				continue
			}
			s.screen.SetContent(r.X+x, r.Y+y, c.Ch, nil, c.Style)
		}
	}
}

// DrawImage queues a prepared image for the rect. Emitted on Show.
func (s *Surface) DrawImage(r layout.Rect, h *imgterm.Handle) {
	s.pending = append(s.pending, pendingImage{rect: r, handle: h})
}

// Show flushes the text plane, then overlays queued images.
func (s *Surface) Show() {
	s.screen.Show()
	for _, p := range s.pending {
		emitAt(p.handle.SequenceFor(p.rect.Width, p.rect.Height), p.rect.X, p.rect.Y)
	}
	s.pending = s.pending[:0]
}

// PollEvent blocks until the next terminal event.
func (s *Surface) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Sync forces a full repaint, e.g. after a resize.
func (s *Surface) Sync() {
	s.screen.Sync()
}

// Fini restores the terminal.
func (s *Surface) Fini() {
	s.screen.Fini()
}

// emitAt writes a raw escape sequence at a cell position, preserving the
// cursor. Kitty placements address the cursor position, not coordinates.
func emitAt(seq string, x, y int) {
	if seq == "" {
		return
	}
	fmt.Print("\x1b[s")
	fmt.Printf("\x1b[%d;%dH", y+1, x+1)
	os.Stdout.WriteString(seq)
	fmt.Print("\x1b[u")
	os.Stdout.Sync()
}

var oscColorReply = regexp.MustCompile(`rgb:([0-9A-Fa-f]{4})/([0-9A-Fa-f]{4})/([0-9A-Fa-f]{4})`)

// queryDefaultColors asks the terminal for its default foreground and
// background via OSC 10/11. Terminals that never answer get white on black.
func queryDefaultColors() (tcell.Color, tcell.Color, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return tcell.ColorWhite, tcell.ColorBlack, fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()

	oldState, err := term.MakeRaw(int(tty.Fd()))
	if err != nil {
		return tcell.ColorWhite, tcell.ColorBlack, fmt.Errorf("MakeRaw: %w", err)
	}
	defer term.Restore(int(tty.Fd()), oldState)

	query := func(code int) (tcell.Color, error) {
		if _, err := fmt.Fprintf(tty, "\x1b]%d;?\a", code); err != nil {
			return tcell.ColorDefault, err
		}
		if err := tty.SetReadDeadline(time.Now().Add(500 * time.Millisecond)); err != nil {
			return tcell.ColorDefault, err
		}
		resp := make([]byte, 0, 64)
		buf := make([]byte, 1)
		for {
			n, err := tty.Read(buf)
			if err != nil {
				return tcell.ColorDefault, fmt.Errorf("read reply: %w", err)
			}
			resp = append(resp, buf[:n]...)
			if buf[0] == '\a' {
				break
			}
		}
		m := oscColorReply.FindStringSubmatch(string(resp))
		if len(m) != 4 {
			return tcell.ColorDefault, fmt.Errorf("unexpected reply: %q", resp)
		}
		channel := func(s string) int32 {
			v, _ := strconv.ParseInt(s, 16, 32)
			return int32(v >> 8)
		}
		return tcell.NewRGBColor(channel(m[1]), channel(m[2]), channel(m[3])), nil
	}

	fg, err := query(10)
	if err != nil {
		fg = tcell.ColorWhite
	}
	bg, err := query(11)
	if err != nil {
		bg = tcell.ColorBlack
	}
	return fg, bg, nil
}
