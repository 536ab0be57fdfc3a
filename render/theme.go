// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/theme.go
// Summary: Presentation colors and the fallback rules for declared colors.

package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme holds the colors the composition driver draws with. Values come
// from the config store; zero-config runs use DefaultTheme.
type Theme struct {
	// Border is the slide frame color.
	Border tcell.Color
	// Block is the default color for Block items without a declared color.
	Block tcell.Color
	// Title is the banner title color.
	Title tcell.Color
	// IndicatorText colors the page numbers, IndicatorMark the separators.
	IndicatorText tcell.Color
	IndicatorMark tcell.Color
	// PlaceholderTitle is shown when a slide declares no title.
	PlaceholderTitle string
	// CodeStyle is the chroma style for CodeHighlight items.
	CodeStyle string
	// CodeLexer names the lexer for CodeHighlight items; empty means
	// detect from the code itself.
	CodeLexer string
}

// DefaultTheme mirrors the original presentation defaults.
func DefaultTheme() Theme {
	return Theme{
		Border:           tcell.GetColor("#ffdddd"),
		Block:            tcell.GetColor("#ffdddd"),
		Title:            tcell.ColorGreen,
		IndicatorText:    tcell.ColorGreen,
		IndicatorMark:    tcell.ColorYellow,
		PlaceholderTitle: "__title__",
		CodeStyle:        "catppuccin-mocha",
	}
}

// ImageFrame is the dimmed border color drawn behind images, derived from
// the theme border so custom themes keep a matching letterbox.
func (t Theme) ImageFrame() tcell.Color {
	return dim(t.Border, 0.65)
}

// ParseColor resolves a declared color (hex or W3C name) with a fallback.
// An unparseable color falls back rather than erroring: a bad color in one
// item should not take down the slide.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// dim blends a color toward black in Lab space. amount 0 keeps the color,
// 1 is black.
func dim(c tcell.Color, amount float64) tcell.Color {
	r, g, b := c.TrueColor().RGB()
	src := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	out := src.BlendLab(colorful.Color{}, amount).Clamped()
	return tcell.NewRGBColor(int32(out.R*255), int32(out.G*255), int32(out.B*255))
}
