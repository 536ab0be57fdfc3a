// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/compose_test.go
// Summary: Exercises the draw pass against a recording painter.

package engine

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/framegrace/texelslides/imgterm"
	"github.com/framegrace/texelslides/layout"
	"github.com/framegrace/texelslides/render"
)

type cellOp struct {
	rect layout.Rect
	buf  [][]render.Cell
}

type imageOp struct {
	rect   layout.Rect
	handle *imgterm.Handle
}

// recordingPainter captures draw calls in order for assertions.
type recordingPainter struct {
	cells  []cellOp
	images []imageOp
}

func (p *recordingPainter) DrawCells(r layout.Rect, buf [][]render.Cell) {
	p.cells = append(p.cells, cellOp{rect: r, buf: buf})
}

func (p *recordingPainter) DrawImage(r layout.Rect, h *imgterm.Handle) {
	p.images = append(p.images, imageOp{rect: r, handle: h})
}

func (p *recordingPainter) allText() string {
	var sb strings.Builder
	for _, op := range p.cells {
		for _, row := range op.buf {
			for _, c := range row {
				if c.Ch != 0 {
					sb.WriteRune(c.Ch)
				}
			}
		}
	}
	return sb.String()
}

const lineDeck = `{
  "box_size": {"percent_width": 80, "percent_height": 80},
  "slides": [{"title": "Intro", "content": [{"type": "Line", "content": "hi", "rect": null}]}]
}`

func TestComposeLineDeckEndToEnd(t *testing.T) {
	e, _ := newTestEngine(t, lineDeck)

	// Next then Previous on a one-slide deck ends where it started.
	e.Next()
	e.Previous()
	if e.Index() != 0 {
		t.Fatalf("expected index 0, got %d", e.Index())
	}

	p := &recordingPainter{}
	viewport := layout.NewRect(0, 0, 100, 50)
	e.Compose(viewport, p)

	if len(p.cells) == 0 {
		t.Fatalf("expected draw calls")
	}

	// First draw is the frame at the resolved content box.
	box := layout.ResolveBox(viewport, 80, 80)
	if p.cells[0].rect != box {
		t.Fatalf("frame rect %+v, want %+v", p.cells[0].rect, box)
	}

	// The page indicator sits on the frame's bottom row.
	frame := p.cells[0].buf
	bottom := ""
	for _, c := range frame[len(frame)-1] {
		if c.Ch != 0 {
			bottom += string(c.Ch)
		}
	}
	if !strings.Contains(bottom, "|1/1|") {
		t.Fatalf("bottom border should carry the page indicator, got %q", bottom)
	}

	// The line fills the content box and carries its text.
	last := p.cells[len(p.cells)-1]
	if last.rect != box {
		t.Fatalf("rect-less item should fill the content box, got %+v", last.rect)
	}
	if got := cellRowText(last.buf[0]); !strings.HasPrefix(got, "hi") {
		t.Fatalf("expected line text %q to start with \"hi\"", got)
	}
}

func TestComposeDrawsTitleBand(t *testing.T) {
	e, _ := newTestEngine(t, lineDeck)
	p := &recordingPainter{}
	e.Compose(layout.NewRect(0, 0, 120, 50), p)

	// Second draw is the banner title, two rows inside the box.
	box := layout.ResolveBox(layout.NewRect(0, 0, 120, 50), 80, 80)
	titleOp := p.cells[1]
	if titleOp.rect.Y != box.Y+2 {
		t.Fatalf("title band should start at box top + 2, got y=%d", titleOp.rect.Y)
	}
	if len(titleOp.buf) != render.BigTextHeight {
		t.Fatalf("title should be banner height, got %d rows", len(titleOp.buf))
	}
	if titleOp.rect.Width != render.BigTextWidth("Intro") {
		t.Fatalf("title width should match the banner width")
	}
}

func TestComposePlaceholderTitle(t *testing.T) {
	e, _ := newTestEngine(t, `{
		"box_size": {"percent_width": 80, "percent_height": 80},
		"slides": [{"title": null, "content": []}]
	}`)
	p := &recordingPainter{}
	e.Compose(layout.NewRect(0, 0, 200, 50), p)

	if p.cells[1].rect.Width != render.BigTextWidth("__title__") {
		t.Fatalf("missing title should render the placeholder banner")
	}
}

func TestComposeImageUsesCacheOrdinals(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "a.png"))
	path := filepath.Join(dir, "deck.json")
	writeFile(t, path, `{
		"box_size": {"percent_width": 100, "percent_height": 100},
		"slides": [{"title": "pic", "content": [
			{"type": "Image", "content": "a.png", "rect": {"x": 2, "y": 10, "width": 20, "height": 10}}
		]}]}`)

	e, err := New(path, render.DefaultTheme())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	p := &recordingPainter{}
	e.Compose(layout.NewRect(0, 0, 80, 40), p)

	if len(p.images) != 1 {
		t.Fatalf("expected one image draw, got %d", len(p.images))
	}
	if p.images[0].handle != e.cache.image(0) {
		t.Fatalf("draw should use the cached prepared handle")
	}

	// The letterbox backing frame is one cell larger than the item rect
	// and drawn before the image.
	itemRect := layout.NewRect(2, 10, 20, 10)
	backing := p.cells[len(p.cells)-1]
	if backing.rect != itemRect.Outset(1) {
		t.Fatalf("backing frame rect %+v, want %+v", backing.rect, itemRect.Outset(1))
	}

	// The image rect stays inside the declared item rect.
	ir := p.images[0].rect
	if ir.X < itemRect.X || ir.Y < itemRect.Y ||
		ir.X+ir.Width > itemRect.X+itemRect.Width ||
		ir.Y+ir.Height > itemRect.Y+itemRect.Height {
		t.Fatalf("image rect %+v should fit inside %+v", ir, itemRect)
	}
}

func TestComposeSparklineWithoutData(t *testing.T) {
	e, _ := newTestEngine(t, `{
		"box_size": {"percent_width": 80, "percent_height": 80},
		"slides": [{"title": "s", "content": [
			{"type": "Sparkline", "rect": {"x": 0, "y": 10, "width": 10, "height": 2}}
		]}]}`)
	p := &recordingPainter{}
	e.Compose(layout.NewRect(0, 0, 100, 50), p)

	spark := p.cells[len(p.cells)-1]
	for _, row := range spark.buf {
		for _, c := range row {
			if !c.Transparent() {
				t.Fatalf("absent data should render an empty series")
			}
		}
	}
}

func TestComposeCodeHighlight(t *testing.T) {
	e, _ := newTestEngine(t, `{
		"box_size": {"percent_width": 80, "percent_height": 80},
		"slides": [{"title": "code", "content": [
			{"type": "CodeHighlight", "content": "package main\nfunc main() {}", "rect": {"x": 0, "y": 8, "width": 40, "height": 5}}
		]}]}`)
	p := &recordingPainter{}
	e.Compose(layout.NewRect(0, 0, 100, 50), p)

	code := p.cells[len(p.cells)-1]
	if got := cellRowText(code.buf[0]); !strings.HasPrefix(got, "package main") {
		t.Fatalf("first code row should carry the source text, got %q", got)
	}
	if got := cellRowText(code.buf[1]); !strings.HasPrefix(got, "func main()") {
		t.Fatalf("line breaks should be preserved, got %q", got)
	}
}

func cellRowText(row []render.Cell) string {
	var sb strings.Builder
	for _, c := range row {
		if c.Ch != 0 {
			sb.WriteRune(c.Ch)
		}
	}
	return sb.String()
}
