// Copyright © 2025 Texelslides contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration store for texelslides.

// Package config loads user configuration once per process from
// os.UserConfigDir()/texelslides/texelslides.json. A missing file is not
// an error: every consumer falls back to built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

const systemConfigName = "texelslides.json"

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for one configuration section.
type Section map[string]interface{}

var (
	mu      sync.RWMutex
	once    sync.Once
	system  Config
	loadErr error
)

func initStore() {
	path, err := systemConfigPath()
	if err != nil {
		system, loadErr = Config{}, err
		return
	}
	system, loadErr = readConfig(path)
}

// readConfig parses a config file. Absent files yield an empty config;
// unparseable files yield an empty config plus the error so the caller can
// report it without losing defaults.
func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// System returns the loaded configuration.
func System() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return system
}

// Err returns the config load error, if any.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// Section returns a named section, or nil when absent.
func (c Config) Section(name string) Section {
	raw, ok := c[name]
	if !ok {
		return nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	return Section(m)
}

// String returns a string value, or def when absent or not a string.
func (s Section) String(key, def string) string {
	if s == nil {
		return def
	}
	v, ok := s[key].(string)
	if !ok {
		return def
	}
	return v
}
