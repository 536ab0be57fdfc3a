// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: layout/layout.go
// Summary: Viewport-relative rectangle math for slide composition.

// Package layout computes the rectangles slide content is drawn into.
// Rectangles are transient: every draw pass re-derives them from the live
// viewport, so a terminal resize is picked up on the next frame for free.
package layout

// Rect is a cell-addressed rectangle on the terminal screen.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect builds a Rect from origin and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Empty reports whether the rect has no drawable area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Outset grows the rect by n cells on every side.
func (r Rect) Outset(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// Inset shrinks the rect by n cells on every side, bottoming out at zero size.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// ResolveBox returns the slide content box: a centered sub-rectangle of
// viewport sized as the given percentages of the viewport's dimensions.
// Percentages are clamped so the box never exceeds the viewport.
func ResolveBox(viewport Rect, percentWidth, percentHeight int) Rect {
	w := viewport.Width * clampPercent(percentWidth) / 100
	h := viewport.Height * clampPercent(percentHeight) / 100
	return Rect{
		X:      viewport.X + (viewport.Width-w)/2,
		Y:      viewport.Y + (viewport.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// ResolveItemRect places a content item inside its content box. A nil item
// rect means the item fills the box. A present rect is an absolute offset
// plus size within the box; no scaling and no clipping happen here. An item
// declared beyond the box edge is the display's concern, not ours.
func ResolveItemRect(box Rect, item *Rect) Rect {
	if item == nil {
		return box
	}
	return Rect{
		X:      box.X + item.X,
		Y:      box.Y + item.Y,
		Width:  item.Width,
		Height: item.Height,
	}
}

// TitleRect returns the band just inside the top of the content box where
// the slide title is drawn.
func TitleRect(box Rect) Rect {
	return Rect{X: box.X, Y: box.Y + 2, Width: box.Width, Height: box.Height}
}

func clampPercent(p int) int {
	if p < 1 {
		return 1
	}
	if p > 100 {
		return 100
	}
	return p
}
