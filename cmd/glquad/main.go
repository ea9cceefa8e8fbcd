// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glquad opens a window and draws a quad whose color animates,
// using a vertex + fragment shader read from one file.
//
// Build with -tags debug to check for OpenGL errors after every call.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"cogentcore.org/glquad/base/errors"
	"cogentcore.org/glquad/base/logx"
	"cogentcore.org/glquad/config"
	"cogentcore.org/glquad/glgpu"
	"cogentcore.org/glquad/glgpu/gldriver"
	"cogentcore.org/glquad/quad"
	"cogentcore.org/glquad/shaderwatch"
	"cogentcore.org/glquad/window"
)

func init() {
	// glfw and the GL context must stay on the main thread
	runtime.LockOSThread()
}

var (
	configFile = flag.String("config", "", "a TOML or YAML config file")
	shaderFile = flag.String("shader", "", "the shader file; the built-in shader is used if empty")
	frames     = flag.Int("frames", -1, "the number of frames to draw before quitting; 0 runs until the window closes")
	watch      = flag.Bool("watch", false, "reload the shader file when it changes")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: glquad [flags]\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run())
}

// loadConfig returns the config from defaults, the config file, and the flags.
func loadConfig() (*config.Config, error) {
	cfg := config.New()
	if *configFile != "" {
		if err := config.Open(cfg, *configFile); err != nil {
			return nil, err
		}
	}
	if *shaderFile != "" {
		cfg.Shader = *shaderFile
	}
	if *frames >= 0 {
		cfg.Frames = *frames
	}
	if *watch {
		cfg.Watch = true
	}
	return cfg, nil
}

// openShader returns a function that reads the configured shader.
func openShader(cfg *config.Config) func() (glgpu.ShaderSource, error) {
	if cfg.Shader == "" {
		return quad.DefaultShader
	}
	return func() (glgpu.ShaderSource, error) {
		return glgpu.OpenShaderFile(cfg.Shader)
	}
}

func run() int {
	cfg, err := loadConfig()
	if errors.Log(err) != nil {
		return -1
	}
	errors.Log(logx.SetLevel(cfg.LogLevel))
	logx.SetDefaultLogger()

	win, err := window.Open(window.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Title:        cfg.Title,
		GLMajor:      cfg.GLMajor,
		GLMinor:      cfg.GLMinor,
		SwapInterval: cfg.SwapInterval,
	})
	if errors.Log(err) != nil {
		return -1
	}
	defer win.Close()

	if errors.Log(gldriver.Init()) != nil {
		return -1
	}
	d := gldriver.New()
	slog.Info("OpenGL", "version", d.Version(), "build", logx.BuildMode, "checks", glgpu.Checks)

	w, h := win.FramebufferSize()
	glgpu.Call(d, "Viewport(0, 0, width, height)", func() { d.Viewport(0, 0, int32(w), int32(h)) })

	source := openShader(cfg)
	// a missing shader still builds a (broken) scene, which gets reported
	src := errors.Log1(source())
	sc, _ := quad.NewScene(d, src)
	defer sc.Delete()

	opts := quad.RunOptions{Frames: cfg.Frames, Source: source}
	if cfg.Watch && cfg.Shader != "" {
		sw, err := shaderwatch.New(cfg.Shader)
		if errors.Log(err) == nil {
			defer sw.Close()
			opts.Reload = sw.Changed()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	n := quad.Run(ctx, win, sc, &quad.Animator{Step: cfg.ColorStep}, opts)
	slog.Debug("glquad: done", "frames", n)
	return 0
}
