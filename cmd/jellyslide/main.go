package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/jellyslide/assets/icon"
	"github.com/depeter/jellyslide/internal/app"
	"github.com/depeter/jellyslide/internal/cache"
	"github.com/depeter/jellyslide/internal/config"
	"github.com/depeter/jellyslide/internal/gallery"
	"github.com/depeter/jellyslide/internal/ui"
)

type options struct {
	catalog    string
	fullscreen *bool
	clearCache bool
}

func main() {
	catalogFlag := flag.String("catalog", "", "Catalog file (.toml, .yaml or .yml). Can also be provided as a positional argument.")
	fullscreenFlag := flag.Bool("fullscreen", false, "Start in fullscreen mode")
	clearCacheFlag := flag.Bool("clear-cache", false, "Delete downloaded images before starting")
	flag.Parse()

	opts := options{catalog: *catalogFlag, clearCache: *clearCacheFlag}
	if opts.catalog == "" && flag.NArg() > 0 {
		opts.catalog = flag.Arg(0)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "fullscreen" {
			opts.fullscreen = fullscreenFlag
		}
	})

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

// run starts the gallery and blocks until the window closes. Resources are
// released before it returns, including on error.
func run(opts options) error {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	writeDefaultConfig(cfg)

	// Flags override the config file
	if opts.catalog != "" {
		cfg.Catalog.Path = opts.catalog
	}
	if opts.fullscreen != nil {
		cfg.UI.Fullscreen = *opts.fullscreen
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF); err != nil {
		return fmt.Errorf("init fonts: %w", err)
	}

	// Load catalog
	catalog, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	// Init image cache
	cacheDir := cfg.Catalog.CacheDir
	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "jellyslide", "images")
		if configDir, err := config.ConfigDir(); err == nil {
			cacheDir = filepath.Join(configDir, "cache", "images")
		}
	}
	imgCache, err := cache.NewImageCache(cacheDir)
	if err != nil {
		return fmt.Errorf("init image cache: %w", err)
	}
	if opts.clearCache {
		if err := imgCache.ClearDisk(); err != nil {
			log.Printf("Failed to clear image cache: %v", err)
		} else {
			log.Printf("Cleared image cache at %s", imgCache.CacheDir())
		}
	}

	// Watch the catalog file for edits
	var updates <-chan *gallery.Catalog
	if cfg.Catalog.Path != "" && cfg.Catalog.Watch {
		w, err := gallery.NewWatcher(cfg.Catalog.Path, 0)
		if err != nil {
			log.Printf("Catalog will not reload: %v", err)
		} else {
			defer w.Close()
			updates = w.Updates()
		}
	}

	game, err := app.NewGame(cfg, catalog, imgCache, updates)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer game.Close()

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("JellySlide")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	return ebiten.RunGame(game)
}

// loadCatalog reads path, or the bundled catalog when path is empty.
func loadCatalog(path string) (*gallery.Catalog, error) {
	if path == "" {
		return gallery.DefaultCatalog()
	}
	catalog, err := gallery.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d sections from %s", len(catalog.Sections), path)
	return catalog, nil
}

// writeDefaultConfig saves cfg on first run so the file can be edited.
func writeDefaultConfig(cfg *config.Config) {
	path, err := config.ConfigPath()
	if err != nil {
		return
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return
	}
	if err := cfg.Save(); err != nil {
		log.Printf("Failed to write default config: %v", err)
	}
}
