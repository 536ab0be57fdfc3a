// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/sparkline.go
// Summary: Bar-glyph sparkline rendering for numeric slide data.

package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Eighth-block ramp, lowest bar first. A column's total height in eighths
// is distributed bottom-up: full blocks first, then one partial glyph.
var sparkRamp = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders one data point per column, scaled against the maximum
// value, into a cols x rows buffer. Data longer than the width keeps the
// tail (newest points win); an empty series renders an empty buffer.
func Sparkline(cols, rows int, data []uint64, style tcell.Style) [][]Cell {
	buf := NewBuffer(cols, rows)
	if cols <= 0 || rows <= 0 || len(data) == 0 {
		return buf
	}

	if len(data) > cols {
		data = data[len(data)-cols:]
	}

	var max uint64
	for _, v := range data {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return buf
	}

	for x, v := range data {
		eighths := columnEighths(v, max, rows)
		for y := 0; y < rows && eighths > 0; y++ {
			row := rows - 1 - y
			if eighths >= 8 {
				buf[row][x] = Cell{Ch: sparkRamp[7], Style: style}
				eighths -= 8
			} else {
				buf[row][x] = Cell{Ch: sparkRamp[eighths-1], Style: style}
				eighths = 0
			}
		}
	}
	return buf
}

// columnEighths scales a value against the series maximum into the column's
// total bar height in eighth-blocks. `v * span` overflows uint64 for large
// data, so when max is big the division happens first; the precision lost
// there is far below one eighth of a cell.
func columnEighths(v, max uint64, rows int) int {
	span := uint64(rows) * 8
	if max <= math.MaxUint64/span {
		return int(v * span / max)
	}
	eighths := v / (max / span)
	if eighths > span {
		eighths = span
	}
	return int(eighths)
}
