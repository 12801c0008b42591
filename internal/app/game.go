package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/jellyslide/internal/cache"
	"github.com/depeter/jellyslide/internal/config"
	"github.com/depeter/jellyslide/internal/gallery"
	"github.com/depeter/jellyslide/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Catalog *gallery.Catalog
	Cache   *cache.ImageCache
	Screens *ui.ScreenManager

	Width, Height int

	fullscreenKeys []ebiten.Key
}

// NewGame creates the Game with all dependencies and pushes the gallery
// screen for catalog. updates may be nil when the catalog is not watched.
func NewGame(cfg *config.Config, catalog *gallery.Catalog, imgCache *cache.ImageCache, updates <-chan *gallery.Catalog) (*Game, error) {
	g := &Game{
		Config:  cfg,
		Catalog: catalog,
		Cache:   imgCache,
		Screens: ui.NewScreenManager(),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,

		fullscreenKeys: parseKeys(cfg.Keybinds.Fullscreen),
	}

	settings := ui.GallerySettings{
		Keys:               keyBindings(cfg.Keybinds),
		WheelPixelsPerLine: cfg.UI.WheelPixelsPerLine,
		Preload:            cfg.Catalog.Preload,
		CatalogUpdates:     updates,
	}
	screen, err := ui.NewGalleryScreen(catalog, imgCache, cfg.SliderOptions(), settings, g.Width, g.Height)
	if err != nil {
		return nil, fmt.Errorf("create gallery: %w", err)
	}
	g.Screens.Push(screen)
	return g, nil
}

func (g *Game) Update() error {
	// Alt+Enter or the fullscreen binding toggles fullscreen
	if (inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt)) ||
		(ui.AnyKeyJustPressed(g.fullscreenKeys) && !ui.IsModifierPressed()) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if err := g.Screens.Update(); err != nil {
		return err
	}
	if g.Screens.StackSize() == 0 {
		return ebiten.Termination
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Screens)
}

// Layout follows the window size so the slider's breakpoint sees the real
// width.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.Width, g.Height = outsideWidth, outsideHeight
	}
	g.Screens.Resize(g.Width, g.Height)
	return g.Width, g.Height
}

// Close exits every screen, cancelling animations and preloads.
func (g *Game) Close() {
	g.Screens.ClearStack()
}
