package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level engine configuration, loaded from a TOML file.
// Fields not present in the file keep their defaults.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Renderer RendererConfig `toml:"renderer"`
	Log      LogConfig      `toml:"log"`
	Scene    SceneConfig    `toml:"scene"`
}

// WindowConfig configures the platform window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// RendererConfig configures the GPU renderer.
type RendererConfig struct {
	// PresentMode is "vsync" or "uncapped".
	PresentMode string `toml:"present_mode"`
	// MSAASamples is 1, 4, 8, or 16.
	MSAASamples uint32 `toml:"msaa_samples"`
	// ForceSoftware forces a software fallback adapter.
	ForceSoftware bool `toml:"force_software"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error", "fatal".
	Level string `toml:"level"`
}

// SceneConfig configures scene snapshot behavior.
type SceneConfig struct {
	// SnapshotWorkers is the worker count for parallel snapshot marshalling.
	// Zero selects a default based on CPU count.
	SnapshotWorkers int `toml:"snapshot_workers"`
}

// Default returns the configuration used when no file is present.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "brink",
			Width:  1280,
			Height: 720,
		},
		Renderer: RendererConfig{
			PresentMode: "vsync",
			MSAASamples: 4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML configuration file and merges it over the defaults. A
// missing file is not an error; the defaults are returned.
//
// Parameters:
//   - path: the path to the TOML configuration file
//
// Returns:
//   - Config: the loaded configuration
//   - error: an error if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Renderer.PresentMode {
	case "vsync", "uncapped":
	default:
		return fmt.Errorf("invalid present_mode %q", c.Renderer.PresentMode)
	}
	switch c.Renderer.MSAASamples {
	case 1, 4, 8, 16:
	default:
		return fmt.Errorf("invalid msaa_samples %d", c.Renderer.MSAASamples)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
