// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/bigtext.go
// Summary: Banner-glyph rendering for slide titles and BigText items.

package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Banner glyphs are 3 cells wide and 5 rows tall, encoded as five
// slash-separated rows with 'X' marking a filled cell. Lowercase input is
// rendered with the uppercase glyph; anything without a glyph renders as a
// solid block.
const (
	bigGlyphWidth  = 3
	bigGlyphGap    = 1
	BigTextHeight  = 5
	bigUnknownRune = "XXX/XXX/XXX/XXX/XXX"
)

var bigFont = map[rune]string{
	'A': " X /X X/XXX/X X/X X",
	'B': "XX /X X/XX /X X/XX ",
	'C': "XXX/X  /X  /X  /XXX",
	'D': "XX /X X/X X/X X/XX ",
	'E': "XXX/X  /XX /X  /XXX",
	'F': "XXX/X  /XX /X  /X  ",
	'G': "XXX/X  /X X/X X/XXX",
	'H': "X X/X X/XXX/X X/X X",
	'I': "XXX/ X / X / X /XXX",
	'J': "XXX/  X/  X/X X/XXX",
	'K': "X X/X X/XX /X X/X X",
	'L': "X  /X  /X  /X  /XXX",
	'M': "X X/XXX/XXX/X X/X X",
	'N': "XX /X X/X X/X X/X X",
	'O': "XXX/X X/X X/X X/XXX",
	'P': "XXX/X X/XXX/X  /X  ",
	'Q': "XXX/X X/X X/XXX/  X",
	'R': "XXX/X X/XX /X X/X X",
	'S': "XXX/X  /XXX/  X/XXX",
	'T': "XXX/ X / X / X / X ",
	'U': "X X/X X/X X/X X/XXX",
	'V': "X X/X X/X X/X X/ X ",
	'W': "X X/X X/XXX/XXX/X X",
	'X': "X X/X X/ X /X X/X X",
	'Y': "X X/X X/ X / X / X ",
	'Z': "XXX/  X/ X /X  /XXX",
	'0': "XXX/X X/X X/X X/XXX",
	'1': " X /XX / X / X /XXX",
	'2': "XXX/  X/XXX/X  /XXX",
	'3': "XXX/  X/XXX/  X/XXX",
	'4': "X X/X X/XXX/  X/  X",
	'5': "XXX/X  /XXX/  X/XXX",
	'6': "XXX/X  /XXX/X X/XXX",
	'7': "XXX/  X/  X/  X/  X",
	'8': "XXX/X X/XXX/X X/XXX",
	'9': "XXX/X X/XXX/  X/XXX",
	' ': "   /   /   /   /   ",
	'-': "   /   /XXX/   /   ",
	'_': "   /   /   /   /XXX",
	'.': "   /   /   /   / X ",
	':': "   / X /   / X /   ",
	'!': " X / X / X /   / X ",
	'?': "XXX/  X/ XX/   / X ",
	'\'': " X / X /   /   /   ",
	',': "   /   /   / X /X  ",
	'/': "  X/  X/ X /X  /X  ",
}

// BigTextWidth returns the cell width of a string rendered as banner text.
func BigTextWidth(s string) int {
	n := len([]rune(s))
	if n == 0 {
		return 0
	}
	return n*bigGlyphWidth + (n-1)*bigGlyphGap
}

// BigText renders a string as BigTextHeight rows of block glyphs.
func BigText(s string, style tcell.Style) [][]Cell {
	buf := NewBuffer(BigTextWidth(s), BigTextHeight)
	x := 0
	for _, ch := range s {
		glyph, ok := bigFont[ch]
		if !ok {
			if up, upOK := bigFont[toUpper(ch)]; upOK {
				glyph = up
			} else {
				glyph = bigUnknownRune
			}
		}
		for y, row := range strings.SplitN(glyph, "/", BigTextHeight) {
			for i, c := range row {
				if c == 'X' {
					buf[y][x+i] = Cell{Ch: '█', Style: style}
				}
			}
		}
		x += bigGlyphWidth + bigGlyphGap
	}
	return buf
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
