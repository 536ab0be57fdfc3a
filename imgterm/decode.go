// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: imgterm/decode.go
// Summary: Decodes slide image files into in-memory images.

// Package imgterm prepares decoded images for terminal display using the
// kitty graphics protocol. Preparation (scaling + encoding) is the
// expensive step in the render pipeline, so prepared handles cache their
// last encoding and only redo it when the target size changes.
package imgterm

import (
	"fmt"
	"image"
	"os"

	// Deck images are plain files; these cover the formats decks use.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Decode opens and decodes an image file. A failure here is an image
// resolution error for the slide that declared the path: it propagates up
// through the cache rebuild instead of being skipped, because skipping
// would desynchronize the image ordinals the draw pass relies on.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
