// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/border.go
// Summary: Rounded frame borders for the slide box and block items.

package render

import "github.com/gdamore/tcell/v2"

// Rounded border glyphs, matching the slide frame style.
const (
	borderHorizontal  = '─'
	borderVertical    = '│'
	borderTopLeft     = '╭'
	borderTopRight    = '╮'
	borderBottomLeft  = '╰'
	borderBottomRight = '╯'
)

// Border renders a rounded frame around the edge of a cols x rows buffer.
// The interior stays transparent so earlier draws show through.
func Border(cols, rows int, style tcell.Style) [][]Cell {
	buf := NewBuffer(cols, rows)
	drawBorder(buf, style)
	return buf
}

// FilledBorder renders a rounded frame with the interior filled by spaces in
// fill style. Used as the letterbox backing behind images.
func FilledBorder(cols, rows int, style, fill tcell.Style) [][]Cell {
	buf := NewBuffer(cols, rows)
	Fill(buf, ' ', fill)
	drawBorder(buf, style)
	return buf
}

func drawBorder(buf [][]Cell, style tcell.Style) {
	rows := len(buf)
	if rows == 0 {
		return
	}
	cols := len(buf[0])
	if cols == 0 {
		return
	}

	for x := 0; x < cols; x++ {
		buf[0][x] = Cell{Ch: borderHorizontal, Style: style}
		buf[rows-1][x] = Cell{Ch: borderHorizontal, Style: style}
	}
	for y := 0; y < rows; y++ {
		buf[y][0] = Cell{Ch: borderVertical, Style: style}
		buf[y][cols-1] = Cell{Ch: borderVertical, Style: style}
	}
	buf[0][0] = Cell{Ch: borderTopLeft, Style: style}
	buf[0][cols-1] = Cell{Ch: borderTopRight, Style: style}
	buf[rows-1][0] = Cell{Ch: borderBottomLeft, Style: style}
	buf[rows-1][cols-1] = Cell{Ch: borderBottomRight, Style: style}
}

// SetBottomRight overlays a cell run onto the bottom border, right-aligned
// and kept off the corner glyph. The slide frame uses this for its
// current/total page indicator.
func SetBottomRight(buf [][]Cell, cells []Cell) {
	rows := len(buf)
	if rows == 0 {
		return
	}
	cols := len(buf[rows-1])
	x := cols - 1 - len(cells)
	if x < 1 {
		x = 1
	}
	PutCells(buf, x, rows-1, cells)
}
