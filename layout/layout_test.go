// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: layout/layout_test.go
// Summary: Exercises rectangle resolution to keep composition geometry stable.

package layout

import "testing"

func TestResolveItemRectIdentity(t *testing.T) {
	boxes := []Rect{
		NewRect(0, 0, 80, 24),
		NewRect(5, 3, 60, 18),
		NewRect(1, 1, 1, 1),
	}
	for _, box := range boxes {
		if got := ResolveItemRect(box, nil); got != box {
			t.Fatalf("nil item rect should return the box unchanged, got %+v want %+v", got, box)
		}
	}
}

func TestResolveItemRectOffset(t *testing.T) {
	box := NewRect(10, 5, 60, 20)
	item := NewRect(4, 2, 30, 6)
	got := ResolveItemRect(box, &item)

	if got.X != box.X+item.X || got.Y != box.Y+item.Y {
		t.Fatalf("origin should be box origin plus item origin, got (%d,%d)", got.X, got.Y)
	}
	if got.Width != item.Width || got.Height != item.Height {
		t.Fatalf("size should be the item's declared size, got %dx%d", got.Width, got.Height)
	}
}

func TestResolveItemRectNoClipping(t *testing.T) {
	box := NewRect(0, 0, 10, 10)
	item := NewRect(8, 8, 20, 20)
	got := ResolveItemRect(box, &item)
	if got.Width != 20 || got.Height != 20 {
		t.Fatalf("resolver must not clip oversized items, got %dx%d", got.Width, got.Height)
	}
}

func TestResolveBoxCentered(t *testing.T) {
	viewport := NewRect(0, 0, 100, 50)
	box := ResolveBox(viewport, 80, 80)

	if box.Width != 80 || box.Height != 40 {
		t.Fatalf("expected 80x40 box, got %dx%d", box.Width, box.Height)
	}
	if box.X != 10 || box.Y != 5 {
		t.Fatalf("box should be centered, got origin (%d,%d)", box.X, box.Y)
	}
}

func TestResolveBoxClampsPercent(t *testing.T) {
	viewport := NewRect(0, 0, 100, 50)

	box := ResolveBox(viewport, 150, 150)
	if box.Width != 100 || box.Height != 50 {
		t.Fatalf("oversized percentages should clamp to the viewport, got %dx%d", box.Width, box.Height)
	}

	box = ResolveBox(viewport, 0, -5)
	if box.Width != 1 || box.Height != 0 {
		// 1% of 50 rows truncates to 0; the important part is no negative size.
		t.Fatalf("undersized percentages should clamp to 1%%, got %dx%d", box.Width, box.Height)
	}
}

func TestResolveBoxOffsetViewport(t *testing.T) {
	viewport := NewRect(10, 10, 50, 30)
	box := ResolveBox(viewport, 100, 100)
	if box != viewport {
		t.Fatalf("full-size box should equal the viewport, got %+v", box)
	}
}

func TestTitleRect(t *testing.T) {
	box := NewRect(5, 3, 40, 20)
	tr := TitleRect(box)
	if tr.X != box.X || tr.Y != box.Y+2 || tr.Width != box.Width {
		t.Fatalf("title band should sit two rows inside the box top, got %+v", tr)
	}
}

func TestOutsetInset(t *testing.T) {
	r := NewRect(5, 5, 10, 4)
	out := r.Outset(1)
	if out.X != 4 || out.Y != 4 || out.Width != 12 || out.Height != 6 {
		t.Fatalf("unexpected outset rect: %+v", out)
	}
	if back := out.Inset(1); back != r {
		t.Fatalf("inset should invert outset, got %+v", back)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(2)
	if !tiny.Empty() {
		t.Fatalf("inset past zero should clamp to empty, got %+v", tiny)
	}
}
