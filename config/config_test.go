// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, "OpenGL", cfg.Title)
	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 1080, cfg.Height)
	assert.Equal(t, 3, cfg.GLMajor)
	assert.Equal(t, 3, cfg.GLMinor)
	assert.Equal(t, 1, cfg.SwapInterval)
	assert.Equal(t, float32(0.005), cfg.ColorStep)
	assert.Empty(t, cfg.Shader)
	assert.False(t, cfg.Watch)
	assert.Zero(t, cfg.Frames)
}

func TestSetFromDefaults(t *testing.T) {
	cfg := struct {
		Name  string  `default:"quad"`
		N     int     `default:"7"`
		Scale float32 `default:"0.5"`
		On    bool    `default:"true"`
		Plain int
	}{Plain: 2}
	require.NoError(t, SetFromDefaults(&cfg))
	assert.Equal(t, "quad", cfg.Name)
	assert.Equal(t, 7, cfg.N)
	assert.Equal(t, float32(0.5), cfg.Scale)
	assert.True(t, cfg.On)
	assert.Equal(t, 2, cfg.Plain)

	bad := struct {
		N int `default:"many"`
	}{}
	assert.Error(t, SetFromDefaults(&bad))
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestOpenTOML(t *testing.T) {
	cfg := New()
	path := writeFile(t, "glquad.toml", "Title = \"Quad\"\nWidth = 800\nWatch = true\nColorStep = 0.01\n")
	require.NoError(t, Open(cfg, path))
	assert.Equal(t, "Quad", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 1080, cfg.Height)
	assert.True(t, cfg.Watch)
	assert.Equal(t, float32(0.01), cfg.ColorStep)
}

func TestOpenYAML(t *testing.T) {
	cfg := New()
	path := writeFile(t, "glquad.yaml", "title: Quad\nheight: 600\nshader: res/shaders/Basic.shader\nframes: 10\n")
	require.NoError(t, Open(cfg, path))
	assert.Equal(t, "Quad", cfg.Title)
	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, "res/shaders/Basic.shader", cfg.Shader)
	assert.Equal(t, 10, cfg.Frames)
}

func TestOpenErrors(t *testing.T) {
	cfg := New()
	assert.ErrorIs(t, Open(cfg, filepath.Join(t.TempDir(), "none.toml")), os.ErrNotExist)
	assert.Error(t, Open(cfg, writeFile(t, "glquad.json", "{}")))
	assert.Error(t, Open(cfg, writeFile(t, "bad.toml", "Width = \"wide\"\n")))
}
