// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: imgterm/handle.go
// Summary: Stateful, resizable kitty-protocol image handles.

package imgterm

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/image/draw"

	"github.com/framegrace/texelslides/layout"
)

// Terminal cell geometry in pixels. Most terminals are close enough to
// 8x16 that aspect-fit math lands right; exact pixel metrics would need a
// terminal query and buy very little.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Kitty caps escape payloads at 4096 bytes; larger images are streamed in
// m=1 continuation chunks.
const kittyChunkSize = 4096

var handleID atomic.Uint32

func init() {
	handleID.Store(uint32(time.Now().UnixNano()))
}

// Handle is a prepared image: decoded once, scaled and encoded on demand
// for a target cell rectangle. The last encoding is cached so a draw pass
// at an unchanged size costs nothing.
type Handle struct {
	src image.Image
	id  uint32

	cols, rows int
	seq        string
}

// NewHandle wraps a decoded image in a display handle.
func NewHandle(img image.Image) *Handle {
	return &Handle{src: img, id: handleID.Add(1)}
}

// ID returns the kitty image id used for placement and deletion.
func (h *Handle) ID() uint32 {
	return h.id
}

// SourceSize returns the decoded image dimensions in pixels.
func (h *Handle) SourceSize() (int, int) {
	b := h.src.Bounds()
	return b.Dx(), b.Dy()
}

// SequenceFor returns the kitty escape sequence displaying the image
// scaled aspect-fit into a cols x rows cell box. Re-encodes only when the
// target size changed since the last call.
func (h *Handle) SequenceFor(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	if cols == h.cols && rows == h.rows && h.seq != "" {
		return h.seq
	}

	scaled := h.scaleTo(cols*CellWidth, rows*CellHeight)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		log.Printf("imgterm: png encode failed: %v", err)
		return ""
	}
	payload := base64.StdEncoding.EncodeToString(buf.Bytes())

	h.cols, h.rows = cols, rows
	h.seq = h.encodeSequence(payload)
	return h.seq
}

// DeleteSequence returns the escape sequence removing this image's
// placements from the terminal.
func (h *Handle) DeleteSequence() string {
	return fmt.Sprintf("\x1b_Ga=d,i=%d\x1b\\", h.id)
}

// FitRect returns the centered sub-rectangle of r matching the image's
// aspect ratio, in cells. The image letterboxes inside r instead of
// stretching.
func (h *Handle) FitRect(r layout.Rect) layout.Rect {
	iw, ih := h.SourceSize()
	if iw <= 0 || ih <= 0 || r.Empty() {
		return r
	}

	boxW := r.Width * CellWidth
	boxH := r.Height * CellHeight

	w := boxW
	hpx := w * ih / iw
	if hpx > boxH {
		hpx = boxH
		w = hpx * iw / ih
	}

	cols := (w + CellWidth - 1) / CellWidth
	rows := (hpx + CellHeight - 1) / CellHeight
	if cols > r.Width {
		cols = r.Width
	}
	if rows > r.Height {
		rows = r.Height
	}

	return layout.Rect{
		X:      r.X + (r.Width-cols)/2,
		Y:      r.Y + (r.Height-rows)/2,
		Width:  cols,
		Height: rows,
	}
}

func (h *Handle) scaleTo(boxW, boxH int) image.Image {
	b := h.src.Bounds()
	iw, ih := b.Dx(), b.Dy()
	if iw <= 0 || ih <= 0 {
		return h.src
	}

	w := boxW
	hpx := w * ih / iw
	if hpx > boxH {
		hpx = boxH
		w = hpx * iw / ih
	}
	if w < 1 {
		w = 1
	}
	if hpx < 1 {
		hpx = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, hpx))
	draw.CatmullRom.Scale(dst, dst.Bounds(), h.src, b, draw.Over, nil)
	return dst
}

// encodeSequence builds the placement sequence, chunked when the payload
// exceeds the kitty escape size limit.
func (h *Handle) encodeSequence(payload string) string {
	if len(payload) <= kittyChunkSize {
		return fmt.Sprintf("\x1b_Gi=%d,f=100,a=T,q=2;%s\x1b\\", h.id, payload)
	}

	var sb strings.Builder
	first := true
	for len(payload) > 0 {
		n := kittyChunkSize
		if n > len(payload) {
			n = len(payload)
		}
		chunk := payload[:n]
		payload = payload[n:]

		more := 0
		if len(payload) > 0 {
			more = 1
		}
		if first {
			fmt.Fprintf(&sb, "\x1b_Gi=%d,f=100,a=T,q=2,m=%d;%s\x1b\\", h.id, more, chunk)
			first = false
		} else {
			fmt.Fprintf(&sb, "\x1b_Gm=%d;%s\x1b\\", more, chunk)
		}
	}
	return sb.String()
}
