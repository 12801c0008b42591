package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFile_MissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Slider.VisibleThumbnails != 9 || cfg.Slider.Breakpoint != 1400 {
		t.Errorf("defaults not applied: %+v", cfg.Slider)
	}
	if cfg.Slider.HorizontalThreshold != 116 || cfg.Slider.VerticalThreshold != 100 {
		t.Errorf("thresholds = %v/%v", cfg.Slider.HorizontalThreshold, cfg.Slider.VerticalThreshold)
	}
}

func TestLoadFile_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[ui]
width = 1280

[slider]
visible_thumbnails = 13
burst_window_ms = 600

[catalog]
path = "/srv/photos/catalog.yaml"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.Width != 1280 || cfg.UI.Height != 900 {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if cfg.Catalog.Path != "/srv/photos/catalog.yaml" || !cfg.Catalog.Preload || !cfg.Catalog.Watch {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}

	opts := cfg.SliderOptions()
	if opts.WindowSize != 13 {
		t.Errorf("window = %d", opts.WindowSize)
	}
	if opts.BurstWindow != 600*time.Millisecond || opts.ReplayDebounce != 250*time.Millisecond {
		t.Errorf("burst window %v debounce %v", opts.BurstWindow, opts.ReplayDebounce)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui\nwidth ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestSaveFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Keybinds.Next = "D"
	cfg.Slider.BurstThreshold = 6
	if err := cfg.SaveFile(path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Keybinds.Next != "D" || got.Slider.BurstThreshold != 6 {
		t.Errorf("round trip lost overrides: %+v %+v", got.Keybinds, got.Slider)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", "jellyslide") {
		t.Errorf("dir = %s", dir)
	}
}
