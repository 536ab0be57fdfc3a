// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/visual.go
// Summary: Maps declarative content items onto typed visual elements.

package engine

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelslides/deck"
	"github.com/framegrace/texelslides/imgterm"
	"github.com/framegrace/texelslides/render"
)

// Visual is the closed set of element kinds the draw driver paints. New
// kinds extend this set and the compose switch; there is no open registry.
// The kind set is fixed by the document schema, and an exhaustive switch
// keeps additions honest.
type Visual interface {
	isVisual()
}

// TextBlock is a multi-line paragraph drawn as-is, no reflow.
type TextBlock struct {
	Text  string
	Style tcell.Style
}

// BigTitleText is banner text rendered with the block glyph font.
type BigTitleText struct {
	Text  string
	Style tcell.Style
}

// SingleLine is one line of text.
type SingleLine struct {
	Text  string
	Style tcell.Style
}

// RawImage carries a decoded image. It is not yet displayable: preparing
// it for the terminal is the resource cache's job, not this mapping's.
type RawImage struct {
	Img image.Image
}

// FramedBlock is a standalone bordered region.
type FramedBlock struct {
	Style tcell.Style
}

// SparklineSeries renders the item's numeric data; the data itself is
// bound at draw time from the content item.
type SparklineSeries struct {
	Style tcell.Style
}

// SourceText is code to be syntax-highlighted on every draw pass.
type SourceText struct {
	Source   string
	Language string
}

func (TextBlock) isVisual()       {}
func (BigTitleText) isVisual()    {}
func (SingleLine) isVisual()      {}
func (RawImage) isVisual()        {}
func (FramedBlock) isVisual()     {}
func (SparklineSeries) isVisual() {}
func (SourceText) isVisual()      {}

// makeVisual turns one content item into its visual element. Only image
// items can fail, and only on decode; every other kind resolves its
// optional fields to documented defaults.
func makeVisual(item deck.ContentItem, d *deck.Deck, theme render.Theme) (Visual, error) {
	switch item.Type {
	case deck.KindParagraph:
		return TextBlock{Text: item.Content, Style: itemStyle(item, tcell.ColorDefault)}, nil
	case deck.KindBigText:
		return BigTitleText{Text: item.Content, Style: itemStyle(item, theme.Title)}, nil
	case deck.KindLine:
		return SingleLine{Text: item.Content, Style: itemStyle(item, tcell.ColorDefault)}, nil
	case deck.KindImage:
		img, err := imgterm.Decode(d.ResolvePath(item.Content))
		if err != nil {
			return nil, fmt.Errorf("image item %q: %w", item.Content, err)
		}
		return RawImage{Img: img}, nil
	case deck.KindBlock:
		return FramedBlock{Style: itemStyle(item, theme.Block)}, nil
	case deck.KindSparkline:
		return SparklineSeries{Style: itemStyle(item, tcell.ColorDefault)}, nil
	case deck.KindCodeHighlight:
		return SourceText{Source: item.Content, Language: theme.CodeLexer}, nil
	}
	panic(fmt.Sprintf("engine: unhandled content kind %q", item.Type))
}

// itemStyle resolves an item's declared color against a default. A color
// that fails to parse falls back silently; a bad color in one item must
// not take down the slide.
func itemStyle(item deck.ContentItem, fallback tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(render.ParseColor(item.Color, fallback))
}
