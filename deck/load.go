// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: deck/load.go
// Summary: Reads and validates a deck JSON document.

package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Load errors. Both are fatal for the presentation until the user fixes the
// document and reloads; nothing retries automatically.
var (
	// ErrUnreadable means the document could not be opened or read.
	ErrUnreadable = errors.New("deck unreadable")

	// ErrMalformed means the document was read but failed schema validation.
	ErrMalformed = errors.New("deck malformed")
)

// Load reads the JSON document at path into a Deck. The returned deck has
// passed validation: at least one slide, box percentages in (0,100], and
// only known content kinds. Image paths are not checked here; resolution
// failures surface when the image cache is built for the slide.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	d.path = path

	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return &d, nil
}

func (d *Deck) validate() error {
	if len(d.Slides) == 0 {
		return errors.New("deck has no slides")
	}
	if err := validPercent(d.BoxSize.PercentWidth); err != nil {
		return fmt.Errorf("box_size.percent_width: %v", err)
	}
	if err := validPercent(d.BoxSize.PercentHeight); err != nil {
		return fmt.Errorf("box_size.percent_height: %v", err)
	}
	for si, slide := range d.Slides {
		for ci, item := range slide.Content {
			if !item.Type.valid() {
				return fmt.Errorf("slide %d content %d: unknown type %q", si, ci, item.Type)
			}
			if item.Type == KindImage && item.Content == "" {
				return fmt.Errorf("slide %d content %d: image without a path", si, ci)
			}
		}
	}
	return nil
}

func validPercent(p int) error {
	if p < 1 || p > 100 {
		return fmt.Errorf("%d is outside (0,100]", p)
	}
	return nil
}
