// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/theme.go
// Summary: Builds the presentation theme from the config store.

package config

import "github.com/framegrace/texelslides/render"

// Theme returns the presentation theme: built-in defaults overridden by
// the "theme" config section. Unparseable colors keep their defaults.
func Theme() render.Theme {
	return themeFrom(System())
}

func themeFrom(cfg Config) render.Theme {
	t := render.DefaultTheme()
	s := cfg.Section("theme")
	if s == nil {
		return t
	}
	t.Border = render.ParseColor(s.String("border", ""), t.Border)
	t.Block = render.ParseColor(s.String("block", ""), t.Block)
	t.Title = render.ParseColor(s.String("title", ""), t.Title)
	t.IndicatorText = render.ParseColor(s.String("indicator_text", ""), t.IndicatorText)
	t.IndicatorMark = render.ParseColor(s.String("indicator_mark", ""), t.IndicatorMark)
	t.PlaceholderTitle = s.String("placeholder_title", t.PlaceholderTitle)
	t.CodeStyle = s.String("code_style", t.CodeStyle)
	t.CodeLexer = s.String("code_lexer", t.CodeLexer)
	return t
}
