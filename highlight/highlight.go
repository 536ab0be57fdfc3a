// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/highlight.go
// Summary: Chroma-based syntax highlighting for CodeHighlight items.

// Package highlight tokenizes source text into styled cell lines. It runs
// on every draw pass for code items: the input is in-memory text, so
// recomputing is cheap enough that caching would only buy coherence bugs.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	enry "github.com/go-enry/go-enry/v2"

	"github.com/framegrace/texelslides/render"
)

const defaultStyleName = "catppuccin-mocha"

// Lines tokenizes source into one styled cell line per input line,
// preserving line breaks. language may be empty: the lexer is then picked
// by content analysis. An unknown styleName falls back to the default
// style rather than failing the draw.
func Lines(source, language, styleName string) [][]render.Cell {
	style := styleFor(styleName)
	lexer := chroma.Coalesce(lexerFor(language, source))

	tokens, err := chroma.Tokenise(lexer, nil, source)
	if err != nil {
		// Lexing failed: present the code unstyled rather than dropping it.
		return plainLines(source)
	}

	lines := [][]render.Cell{nil}
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st := cellStyle(style.Get(tok.Type))
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				lines = append(lines, nil)
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], render.Text(part, st)...)
		}
	}

	// Tokenisers append a trailing newline; drop the phantom empty line so
	// the output line count matches the input.
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 && !strings.HasSuffix(source, "\n") {
		lines = lines[:n-1]
	}
	return lines
}

// styleFor resolves a chroma style name, falling back to the default.
func styleFor(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}

// lexerFor returns a lexer by declared language, by enry content
// detection, or by chroma's own analysis, in that order.
func lexerFor(language, source string) chroma.Lexer {
	if language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
	}
	if detected, _ := enry.GetLanguageByClassifier([]byte(source), nil); detected != "" {
		if l := lexers.Get(strings.ToLower(detected)); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(source); l != nil {
		return l
	}
	return lexers.Fallback
}

func cellStyle(entry chroma.StyleEntry) tcell.Style {
	st := tcell.StyleDefault
	if entry.Colour.IsSet() {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

func plainLines(source string) [][]render.Cell {
	var lines [][]render.Cell
	for _, line := range strings.Split(source, "\n") {
		lines = append(lines, render.Text(line, tcell.StyleDefault))
	}
	return lines
}
