package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDirName  = "diffpage"
	configFileName = "config.json"

	DefaultTheme        = "vs"
	DefaultTabWidth     = 8
	DefaultContextLines = 5
)

// Options carries every knob the pipeline needs, passed down explicitly
// instead of living in package globals.
type Options struct {
	Theme        string
	TabWidth     int
	Context      bool
	ContextLines int
	FixedWidth   bool
	Verbose      bool
	AssetDir     string
	Title        string

	// TraceWriter receives the verbose classification trace. Defaults to
	// stderr when nil.
	TraceWriter io.Writer
}

// Normalize fills unset fields with their defaults.
func (o Options) Normalize() Options {
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.TabWidth <= 0 {
		o.TabWidth = DefaultTabWidth
	}
	if o.ContextLines <= 0 {
		o.ContextLines = DefaultContextLines
	}
	if o.AssetDir == "" {
		o.AssetDir = DefaultAssetDir()
	}
	if o.TraceWriter == nil {
		o.TraceWriter = os.Stderr
	}
	return o
}

// FileConfig is the persisted user-default subset of Options.
type FileConfig struct {
	Theme        string `json:"theme,omitempty"`
	TabWidth     int    `json:"tab_width,omitempty"`
	ContextLines int    `json:"context_lines,omitempty"`
	FixedWidth   bool   `json:"fixed_width,omitempty"`
	AssetDir     string `json:"asset_dir,omitempty"`
}

// Apply overlays the persisted defaults onto opts, touching only fields the
// caller left unset.
func (f FileConfig) Apply(opts Options) Options {
	if opts.Theme == "" {
		opts.Theme = f.Theme
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = f.TabWidth
	}
	if opts.ContextLines <= 0 {
		opts.ContextLines = f.ContextLines
	}
	if !opts.FixedWidth {
		opts.FixedWidth = f.FixedWidth
	}
	if opts.AssetDir == "" {
		opts.AssetDir = f.AssetDir
	}
	return opts
}

func Load() (FileConfig, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return FileConfig{}, "", err
	}
	cfg, err := LoadFromPath(path)
	return cfg, path, err
}

func LoadFromPath(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return FileConfig{}, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.TabWidth < 0 {
		return FileConfig{}, fmt.Errorf("tab_width %d must be positive", cfg.TabWidth)
	}
	if cfg.ContextLines < 0 {
		return FileConfig{}, fmt.Errorf("context_lines %d must be positive", cfg.ContextLines)
	}

	return cfg, nil
}

func DefaultPath() (string, error) {
	home, err := configHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// DefaultAssetDir is the assets directory next to the installed binary,
// falling back to ./assets for source-tree runs.
func DefaultAssetDir() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "assets")
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	return "assets"
}

func configHome() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return xdg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
