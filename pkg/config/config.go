// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultGlob selects every file below the scanned directory.
const DefaultGlob = "**/*"

// FileNames are the accepted config file names, in lookup order.
var FileNames = []string{"config.yml", "config.yaml"}

var (
	// ErrConfigNotFound is returned when none of FileNames exists.
	ErrConfigNotFound = errors.Base("config file not found")
	// ErrInvalidConfig is returned when a config file exists but cannot be used.
	ErrInvalidConfig = errors.Base("invalid config")
)

// 📚 Config is the migration configuration. It is read-only once Load returns.
type Config struct {
	Prompt               string   `json:"prompt" yaml:"prompt"`
	Glob                 string   `json:"glob,omitempty" yaml:"glob,omitempty"`
	ContentMatchCriteria []string `json:"contentMatchCriteria,omitempty" yaml:"contentMatchCriteria,omitempty"`

	location string
}

// 🎯 Load finds the first config file of FileNames inside dir and parses it.
func Load(ctx context.Context, dir string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	path, err := Find(dir)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("%w: reading %s: %s", ErrInvalidConfig, path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	cfg.location = path

	logger.Debug().
		Str("path", path).
		Str("glob", cfg.Glob).
		Strs("content_match_criteria", cfg.ContentMatchCriteria).
		Msg("configuration loaded")

	return cfg, nil
}

// 🔍 Find returns the path of the first existing file of FileNames inside dir.
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", errors.Errorf("%w: checking %s: %s", ErrInvalidConfig, path, err)
		}
	}
	return "", errors.Errorf("%w: please create a %s file", ErrConfigNotFound, strings.Join(FileNames, " or "))
}

// 📝 Parse decodes YAML config data, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("%w: parsing YAML: %s", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ✅ Validate checks required fields and fills in defaults.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.Prompt) == "" {
		return errors.Errorf("%w: prompt is required", ErrInvalidConfig)
	}

	if cfg.Glob == "" {
		cfg.Glob = DefaultGlob
	}
	if !doublestar.ValidatePattern(cfg.Glob) {
		return errors.Errorf("%w: glob %q is not a valid pattern", ErrInvalidConfig, cfg.Glob)
	}

	return nil
}

// Matches reports whether content is eligible for migration. Without criteria
// every file matches; otherwise at least one criterion must appear literally.
func (cfg *Config) Matches(content string) bool {
	if len(cfg.ContentMatchCriteria) == 0 {
		return true
	}
	for _, criterion := range cfg.ContentMatchCriteria {
		if strings.Contains(content, criterion) {
			return true
		}
	}
	return false
}

// Location returns the path the config was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}
