// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/cell.go
// Summary: Cell buffers shared by every drawing primitive.

// Package render turns visual elements into cell buffers and paints them
// onto a tcell screen. The composition driver hands it (buffer, rectangle)
// pairs; nothing here knows about slides.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell. The zero value is transparent: painting a
// buffer skips zero cells so borders and backgrounds below stay visible.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Transparent reports whether the cell should be skipped when painting.
func (c Cell) Transparent() bool {
	return c.Ch == 0
}

// NewBuffer allocates a rows x cols cell buffer of transparent cells.
func NewBuffer(cols, rows int) [][]Cell {
	buf := make([][]Cell, rows)
	for i := range buf {
		buf[i] = make([]Cell, cols)
	}
	return buf
}

// Text converts a string into a cell run with one style. Wide runes occupy
// their display width: the following cell is left transparent so the
// terminal can render the full glyph.
func Text(s string, style tcell.Style) []Cell {
	var cells []Cell
	for _, ch := range s {
		cells = append(cells, Cell{Ch: ch, Style: style})
		for i := 1; i < runewidth.RuneWidth(ch); i++ {
			cells = append(cells, Cell{})
		}
	}
	return cells
}

// PutText writes a string into the buffer at (x, y), clipping at the buffer
// edge. Returns the column after the last written cell.
func PutText(buf [][]Cell, x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= len(buf) {
		return x
	}
	row := buf[y]
	for _, c := range Text(s, style) {
		if x >= len(row) {
			break
		}
		if x >= 0 {
			row[x] = c
		}
		x++
	}
	return x
}

// PutCells writes a prebuilt cell run into the buffer at (x, y), clipping
// at the buffer edge.
func PutCells(buf [][]Cell, x, y int, cells []Cell) int {
	if y < 0 || y >= len(buf) {
		return x
	}
	row := buf[y]
	for _, c := range cells {
		if x >= len(row) {
			break
		}
		if x >= 0 {
			row[x] = c
		}
		x++
	}
	return x
}

// Fill sets every cell in the buffer to ch with the given style.
func Fill(buf [][]Cell, ch rune, style tcell.Style) {
	for y := range buf {
		for x := range buf[y] {
			buf[y][x] = Cell{Ch: ch, Style: style}
		}
	}
}

// TextWidth returns the display width of a string in cells.
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}
