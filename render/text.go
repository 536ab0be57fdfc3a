// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/text.go
// Summary: Plain and pre-styled multi-line text blocks.

package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TextBlock renders lines of text into a cols x rows buffer, one input line
// per row, clipped at the buffer edges. No wrapping: a slide declares where
// its text goes, the renderer does not reflow it.
func TextBlock(cols, rows int, text string, style tcell.Style) [][]Cell {
	buf := NewBuffer(cols, rows)
	for y, line := range strings.Split(text, "\n") {
		if y >= rows {
			break
		}
		PutText(buf, 0, y, line, style)
	}
	return buf
}

// StyledBlock renders pre-styled cell lines (e.g. highlighted source) into a
// cols x rows buffer, clipped at the buffer edges.
func StyledBlock(cols, rows int, lines [][]Cell) [][]Cell {
	buf := NewBuffer(cols, rows)
	for y, line := range lines {
		if y >= rows {
			break
		}
		PutCells(buf, 0, y, line)
	}
	return buf
}

// Line renders a single line of text into a cols x 1 buffer.
func Line(cols int, text string, style tcell.Style) [][]Cell {
	buf := NewBuffer(cols, 1)
	PutText(buf, 0, 0, text, style)
	return buf
}
