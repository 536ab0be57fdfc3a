// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/cache.go
// Summary: Per-slide prepared image cache.

package engine

import (
	"fmt"

	"github.com/framegrace/texelslides/deck"
	"github.com/framegrace/texelslides/imgterm"
	"github.com/framegrace/texelslides/render"
)

// resourceCache holds the prepared images for the currently displayed
// slide, in content order. It is cleared and fully rebuilt on every
// navigation transition and reload, never partially updated and never
// shared across slides. Memory stays bounded by one slide's worth of images no
// matter how large the deck is; the cost is a re-decode when a slide is
// revisited, which is fine because decks are walked sequentially.
type resourceCache struct {
	images []*imgterm.Handle
}

// rebuild prepares a display handle for every image item on the slide, in
// the order the items appear. A decode failure aborts the rebuild with an
// empty cache rather than leaving a partial one: a partial cache would
// desynchronize the ordinals the draw pass walks.
func (c *resourceCache) rebuild(slide deck.Slide, d *deck.Deck, theme render.Theme) error {
	c.images = c.images[:0]

	for _, item := range slide.Content {
		if item.Type != deck.KindImage {
			continue
		}
		v, err := makeVisual(item, d, theme)
		if err != nil {
			c.images = c.images[:0]
			return err
		}
		raw, ok := v.(RawImage)
		if !ok {
			panic(fmt.Sprintf("engine: image item mapped to %T", v))
		}
		c.images = append(c.images, imgterm.NewHandle(raw.Img))
	}
	return nil
}

// image returns the prepared handle for the given ordinal: the position of
// the image among the current slide's image items, counted in paint order.
// An out-of-range ordinal means the cache was not rebuilt for this slide,
// which is a broken engine invariant, not a recoverable condition.
func (c *resourceCache) image(ordinal int) *imgterm.Handle {
	if ordinal < 0 || ordinal >= len(c.images) {
		panic(fmt.Sprintf("engine: image ordinal %d out of range, cache holds %d (cache not rebuilt for current slide?)", ordinal, len(c.images)))
	}
	return c.images[ordinal]
}

// count returns the number of prepared images.
func (c *resourceCache) count() int {
	return len(c.images)
}
