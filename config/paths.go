// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelslides configuration and state.

package config

import (
	"os"
	"path/filepath"
)

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelslides"), nil
}

func systemConfigPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

// HistoryPath returns the navigation history database path, creating the
// config directory if needed.
func HistoryPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", err
	}
	return filepath.Join(root, "history.db"), nil
}

// LogPath returns the default session log file path, creating the config
// directory if needed.
func LogPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", err
	}
	return filepath.Join(root, "texelslides.log"), nil
}
