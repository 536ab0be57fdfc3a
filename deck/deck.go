// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: deck/deck.go
// Summary: Data model for a loaded slide deck.

// Package deck holds the immutable presentation model. A deck is loaded
// once from a JSON document (or again on explicit reload) and never
// mutated in between; everything downstream borrows read-only access.
package deck

import (
	"fmt"
	"path/filepath"

	"github.com/framegrace/texelslides/layout"
)

// Kind identifies what a content item renders as. The set is closed: it is
// fixed by the document schema, and the draw driver switches over it
// exhaustively.
type Kind string

const (
	KindParagraph     Kind = "Paragraph"
	KindBigText       Kind = "BigText"
	KindLine          Kind = "Line"
	KindImage         Kind = "Image"
	KindBlock         Kind = "Block"
	KindSparkline     Kind = "Sparkline"
	KindCodeHighlight Kind = "CodeHighlight"
)

func (k Kind) valid() bool {
	switch k {
	case KindParagraph, KindBigText, KindLine, KindImage, KindBlock,
		KindSparkline, KindCodeHighlight:
		return true
	}
	return false
}

// BoxSize declares the content box as percentages of the viewport.
type BoxSize struct {
	PercentWidth  int `json:"percent_width"`
	PercentHeight int `json:"percent_height"`
}

// ContentItem is one declarative entry on a slide. Content order is
// significant: it is the paint order, and for image items it is also the
// order of the per-slide image cache.
type ContentItem struct {
	Type    Kind         `json:"type"`
	Content string       `json:"content"`
	Rect    *layout.Rect `json:"rect"`
	Data    []uint64     `json:"data"`
	Color   string       `json:"color"`
}

// Slide is one screen of the presentation, identified only by its position
// in the deck.
type Slide struct {
	Title   string        `json:"title"`
	Content []ContentItem `json:"content"`
}

// Deck is the whole presentation. Immutable between loads.
type Deck struct {
	BoxSize BoxSize `json:"box_size"`
	Slides  []Slide `json:"slides"`

	path string
}

// Len returns the slide count. Always positive for a loaded deck; the
// loader rejects empty decks.
func (d *Deck) Len() int {
	return len(d.Slides)
}

// Slide returns the slide at index. Passing an out-of-range index is a
// contract violation by the caller (the navigation state machine keeps
// indices in range), so this panics rather than returning an error.
func (d *Deck) Slide(index int) Slide {
	if index < 0 || index >= len(d.Slides) {
		panic(fmt.Sprintf("deck: slide index %d out of range [0,%d)", index, len(d.Slides)))
	}
	return d.Slides[index]
}

// Path returns the deck document's own path.
func (d *Deck) Path() string {
	return d.path
}

// ResolvePath resolves a path from the document relative to the document's
// directory. Absolute paths pass through untouched. Image content fields
// use this so decks stay relocatable with their assets.
func (d *Deck) ResolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(d.path), p)
}
