// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/compose.go
// Summary: Composes the current slide into ordered draw calls.

package engine

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelslides/deck"
	"github.com/framegrace/texelslides/highlight"
	"github.com/framegrace/texelslides/imgterm"
	"github.com/framegrace/texelslides/layout"
	"github.com/framegrace/texelslides/render"
)

// Painter is the terminal-drawing capability the engine composes onto. The
// engine never touches the terminal itself; it emits positioned draws in
// paint order and the painter makes them visible.
type Painter interface {
	DrawCells(r layout.Rect, buf [][]render.Cell)
	DrawImage(r layout.Rect, h *imgterm.Handle)
}

// Compose renders the current slide into the viewport: frame with page
// indicator, title band, then every content item in declaration order.
// Rectangles are re-derived from the viewport on every call, so a resize
// is correct on the next frame without any invalidation step.
//
// Precondition: the resource cache matches the current slide (every
// transition rebuilds it before the next draw pass starts). The running
// image ordinal below mirrors the cache's ordering exactly because both
// walk the same filtered subsequence of the slide's content.
func (e *Engine) Compose(viewport layout.Rect, p Painter) {
	box := layout.ResolveBox(viewport, e.deck.BoxSize.PercentWidth, e.deck.BoxSize.PercentHeight)
	if box.Empty() {
		return
	}
	slide := e.deck.Slide(e.index)

	frame := render.Border(box.Width, box.Height, tcell.StyleDefault.Foreground(e.theme.Border))
	render.SetBottomRight(frame, e.pageIndicator())
	p.DrawCells(box, frame)

	e.composeTitle(slide, box, p)

	imageOrdinal := 0
	for _, item := range slide.Content {
		rect := layout.ResolveItemRect(box, item.Rect)

		if item.Type == deck.KindImage {
			// Images draw from the prepared cache; decoding again here
			// would defeat the cache's whole purpose.
			e.composeImage(rect, imageOrdinal, p)
			imageOrdinal++
			continue
		}

		v, err := makeVisual(item, e.deck, e.theme)
		if err != nil {
			// Only image items can fail, and those never reach here.
			panic(fmt.Sprintf("engine: visual mapping failed for %q: %v", item.Type, err))
		}

		switch v := v.(type) {
		case TextBlock:
			p.DrawCells(rect, render.TextBlock(rect.Width, rect.Height, v.Text, v.Style))
		case SingleLine:
			p.DrawCells(rect, render.Line(rect.Width, v.Text, v.Style))
		case BigTitleText:
			p.DrawCells(rect, render.BigText(v.Text, v.Style))
		case FramedBlock:
			p.DrawCells(rect, render.Border(rect.Width, rect.Height, v.Style))
		case SparklineSeries:
			data := item.Data
			if data == nil {
				data = []uint64{}
			}
			p.DrawCells(rect, render.Sparkline(rect.Width, rect.Height, data, v.Style))
		case SourceText:
			lines := highlight.Lines(v.Source, v.Language, e.theme.CodeStyle)
			p.DrawCells(rect, render.StyledBlock(rect.Width, rect.Height, lines))
		default:
			panic(fmt.Sprintf("engine: unhandled visual element %T", v))
		}
	}
}

// composeTitle draws the slide title (or the placeholder) as centered
// banner text just inside the top of the content box.
func (e *Engine) composeTitle(slide deck.Slide, box layout.Rect, p Painter) {
	title := slide.Title
	if title == "" {
		title = e.theme.PlaceholderTitle
	}
	band := layout.TitleRect(box)
	width := render.BigTextWidth(title)
	rect := layout.NewRect(band.X+(band.Width-width)/2, band.Y, width, render.BigTextHeight)
	p.DrawCells(rect, render.BigText(title, tcell.StyleDefault.Foreground(e.theme.Title)))
}

// composeImage letterboxes one prepared image: a one-cell-larger dim frame
// on a black background first, then the image itself, aspect-fit.
func (e *Engine) composeImage(rect layout.Rect, ordinal int, p Painter) {
	frameStyle := tcell.StyleDefault.Foreground(e.theme.ImageFrame())
	fillStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	backing := rect.Outset(1)
	p.DrawCells(backing, render.FilledBorder(backing.Width, backing.Height, frameStyle, fillStyle))

	h := e.cache.image(ordinal)
	p.DrawImage(h.FitRect(rect), h)
}

// pageIndicator builds the |current/total| run for the frame's bottom
// right corner, 1-based.
func (e *Engine) pageIndicator() []render.Cell {
	mark := tcell.StyleDefault.Foreground(e.theme.IndicatorMark)
	num := tcell.StyleDefault.Foreground(e.theme.IndicatorText)

	var cells []render.Cell
	cells = append(cells, render.Text("|", mark)...)
	cells = append(cells, render.Text(strconv.Itoa(e.index+1), num)...)
	cells = append(cells, render.Text("/", mark)...)
	cells = append(cells, render.Text(strconv.Itoa(e.deck.Len()), num)...)
	cells = append(cells, render.Text("|", mark)...)
	return cells
}
