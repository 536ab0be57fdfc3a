// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config_test.go
// Summary: Exercises config parsing and theme overrides.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelslides/render"
)

func TestReadConfigMissingFile(t *testing.T) {
	cfg, err := readConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing config should not error, got %v", err)
	}
	if cfg == nil {
		t.Fatalf("missing config should yield an empty config")
	}
}

func TestReadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := readConfig(path)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if cfg == nil {
		t.Fatalf("parse failure should still yield usable defaults")
	}
}

func TestSectionAccess(t *testing.T) {
	cfg := Config{"theme": map[string]interface{}{"border": "#123456", "size": 4.0}}

	s := cfg.Section("theme")
	if s == nil {
		t.Fatalf("expected theme section")
	}
	if got := s.String("border", "x"); got != "#123456" {
		t.Fatalf("unexpected border: %q", got)
	}
	if got := s.String("size", "fallback"); got != "fallback" {
		t.Fatalf("non-string value should fall back, got %q", got)
	}
	if cfg.Section("missing") != nil {
		t.Fatalf("missing section should be nil")
	}
	if got := cfg.Section("missing").String("k", "d"); got != "d" {
		t.Fatalf("nil section lookups should fall back, got %q", got)
	}
}

func TestThemeOverrides(t *testing.T) {
	cfg := Config{"theme": map[string]interface{}{
		"title":             "red",
		"placeholder_title": "untitled",
		"code_style":        "dracula",
	}}
	th := themeFrom(cfg)

	if th.Title != tcell.GetColor("red") {
		t.Fatalf("title color override not applied")
	}
	if th.PlaceholderTitle != "untitled" || th.CodeStyle != "dracula" {
		t.Fatalf("string overrides not applied: %+v", th)
	}
	if th.Border != render.DefaultTheme().Border {
		t.Fatalf("untouched colors should keep defaults")
	}
}

func TestThemeBadColorKeepsDefault(t *testing.T) {
	cfg := Config{"theme": map[string]interface{}{"border": "not-a-color"}}
	if themeFrom(cfg).Border != render.DefaultTheme().Border {
		t.Fatalf("unparseable color should keep the default")
	}
}
