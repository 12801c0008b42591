package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/depeter/jellyslide/internal/slider"
)

type Config struct {
	UI       UIConfig      `toml:"ui"`
	Slider   SliderConfig  `toml:"slider"`
	Catalog  CatalogConfig `toml:"catalog"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	// WheelPixelsPerLine converts ebiten's line-based wheel deltas to pixel
	// deltas before they are classified as touchpad or wheel input.
	WheelPixelsPerLine float64 `toml:"wheel_pixels_per_line"`
}

type SliderConfig struct {
	VisibleThumbnails   int     `toml:"visible_thumbnails"`
	Breakpoint          int     `toml:"breakpoint"`
	HorizontalThreshold float64 `toml:"horizontal_threshold"`
	VerticalThreshold   float64 `toml:"vertical_threshold"`
	FineWheelLimit      float64 `toml:"fine_wheel_limit"`
	WheelNoiseFloor     float64 `toml:"wheel_noise_floor"`
	BurstThreshold      int     `toml:"burst_threshold"`
	BurstWindowMS       int     `toml:"burst_window_ms"`
	ReplayDebounceMS    int     `toml:"replay_debounce_ms"`
}

type CatalogConfig struct {
	// Path to a .toml or .yaml catalog. Empty uses the bundled catalog.
	Path string `toml:"path"`
	// CacheDir overrides the image cache location.
	CacheDir string `toml:"cache_dir"`
	// Preload warms every image of a section when it is shown.
	Preload bool `toml:"preload"`
	// Watch reloads the catalog file when it changes on disk.
	Watch bool `toml:"watch"`
}

type KeybindConfig struct {
	Next        string `toml:"next"`
	Previous    string `toml:"previous"`
	NextSection string `toml:"next_section"`
	PrevSection string `toml:"prev_section"`
	Fullscreen  string `toml:"fullscreen"`
}

func DefaultConfig() *Config {
	d := slider.DefaultOptions()
	return &Config{
		UI: UIConfig{
			Fullscreen:         false,
			Width:              1600,
			Height:             900,
			WheelPixelsPerLine: 100,
		},
		Slider: SliderConfig{
			VisibleThumbnails:   d.WindowSize,
			Breakpoint:          d.Breakpoint,
			HorizontalThreshold: d.HorizontalThreshold,
			VerticalThreshold:   d.VerticalThreshold,
			FineWheelLimit:      d.FineWheelLimit,
			WheelNoiseFloor:     d.WheelNoiseFloor,
			BurstThreshold:      d.BurstThreshold,
			BurstWindowMS:       int(d.BurstWindow / time.Millisecond),
			ReplayDebounceMS:    int(d.ReplayDebounce / time.Millisecond),
		},
		Catalog: CatalogConfig{
			Preload: true,
			Watch:   true,
		},
		Keybinds: KeybindConfig{
			Next:        "Right",
			Previous:    "Left",
			NextSection: "Down",
			PrevSection: "Up",
			Fullscreen:  "F",
		},
	}
}

// SliderOptions converts the [slider] table to slider options. The layout
// query is left for the UI to inject.
func (c *Config) SliderOptions() slider.Options {
	s := c.Slider
	return slider.Options{
		WindowSize:          s.VisibleThumbnails,
		Breakpoint:          s.Breakpoint,
		HorizontalThreshold: s.HorizontalThreshold,
		VerticalThreshold:   s.VerticalThreshold,
		FineWheelLimit:      s.FineWheelLimit,
		WheelNoiseFloor:     s.WheelNoiseFloor,
		BurstThreshold:      s.BurstThreshold,
		BurstWindow:         time.Duration(s.BurstWindowMS) * time.Millisecond,
		ReplayDebounce:      time.Duration(s.ReplayDebounceMS) * time.Millisecond,
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "jellyslide"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path over the defaults. A missing file is not
// an error.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
