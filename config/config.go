// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the glquad demo,
// which can be loaded from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/glquad/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of the demo. File keys are the field
// names: any case in TOML, lowercase in YAML.
type Config struct {

	// the window title
	Title string `default:"OpenGL"`

	// the window size in screen coordinates
	Width  int `default:"1920"`
	Height int `default:"1080"`

	// the requested OpenGL context version
	GLMajor int `default:"3"`
	GLMinor int `default:"3"`

	// the number of screen updates per buffer swap (1 is vsync)
	SwapInterval int `default:"1"`

	// the shader file; the built-in shader is used if empty
	Shader string

	// whether to reload the shader file when it changes
	Watch bool

	// the number of frames to draw before quitting; 0 runs until the window closes
	Frames int

	// the per-frame change of the animated red channel
	ColorStep float32 `default:"0.005"`

	// the log level (debug, info, warn, error); empty uses the build default
	LogLevel string
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are logged in
// addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// New returns a new [Config] with default values.
func New() *Config {
	cfg := &Config{}
	errors.Must(SetFromDefaults(cfg))
	return cfg
}

// Open reads the given config file into cfg, using TOML for .toml
// files and YAML for .yaml and .yml files. Fields not in the file
// keep their values.
func Open(cfg any, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("config.Open: %w", err)
	}
	defer f.Close()
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		err = toml.NewDecoder(f).Decode(cfg)
	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(cfg)
	default:
		return fmt.Errorf("config.Open: %q: unsupported config file extension %q", file, ext)
	}
	if err != nil {
		return fmt.Errorf("config.Open: %q: %w", file, err)
	}
	return nil
}
