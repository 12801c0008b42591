package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/jellyslide/internal/anim"
	"github.com/depeter/jellyslide/internal/cache"
	"github.com/depeter/jellyslide/internal/gallery"
	"github.com/depeter/jellyslide/internal/slider"
)

// KeyBindings are the keyboard shortcuts resolved from the config.
type KeyBindings struct {
	Next        []ebiten.Key
	Previous    []ebiten.Key
	NextSection []ebiten.Key
	PrevSection []ebiten.Key
}

type GallerySettings struct {
	Keys KeyBindings
	// WheelPixelsPerLine converts ebiten wheel lines to pixel deltas.
	WheelPixelsPerLine float64
	// Preload warms the whole section in the image cache when it is shown.
	Preload bool
	// CatalogUpdates delivers reloaded catalogs. May be nil.
	CatalogUpdates <-chan *gallery.Catalog
}

// galleryLayout holds the frames of one draw pass. strip is the resting
// position of the thumbnail window before entrance offset and nudge.
type galleryLayout struct {
	mode    slider.LayoutMode
	main    ButtonRect
	counter ButtonRect
	strip   ButtonRect
}

// GalleryScreen renders a catalog through the slider. It owns the animation
// engine and drives the slider state and coordinator once per tick.
type GalleryScreen struct {
	catalog  *gallery.Catalog
	imgCache *cache.ImageCache
	settings GallerySettings

	engine *anim.Engine
	state  *slider.State
	coord  *slider.Coordinator

	thumbs  *anim.Node
	main    *anim.Node
	counter *anim.Node
	number  *anim.Node

	section    int
	sectionBar *SectionBar

	width, height int
	breakpoint    int

	pointer      PointerInput
	events       []PointerEvent
	ignorePress  bool
	pressedThumb int // -1 unless the press started on a thumbnail
	pressStepped bool
	thumbRects   []ButtonRect
	prevRect     ButtonRect
	nextRect     ButtonRect

	requested     map[string]bool
	cancelPreload context.CancelFunc

	toast Toast
}

// NewGalleryScreen builds the screen for catalog, starting on its first
// section. The slider's layout query follows the size passed to Resize.
func NewGalleryScreen(catalog *gallery.Catalog, imgCache *cache.ImageCache, opts slider.Options, settings GallerySettings, width, height int) (*GalleryScreen, error) {
	if len(catalog.Sections) == 0 {
		return nil, gallery.ErrEmptyCatalog
	}
	gs := &GalleryScreen{
		catalog:      catalog,
		imgCache:     imgCache,
		settings:     settings,
		engine:       anim.NewEngine(),
		thumbs:       anim.NewNode(),
		main:         anim.NewNode(),
		counter:      anim.NewNode(),
		number:       anim.NewNode(),
		width:        width,
		height:       height,
		breakpoint:   opts.Breakpoint,
		pressedThumb: -1,
		requested:    make(map[string]bool),
	}
	if gs.breakpoint <= 0 {
		gs.breakpoint = slider.DefaultOptions().Breakpoint
	}
	opts.Layout = gs.layoutMode

	first := catalog.Sections[0]
	state, err := slider.New(first.Items, opts)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", first.Title, err)
	}
	gs.state = state
	gs.coord = slider.NewCoordinator(state, gs.engine, opts)

	gs.sectionBar = NewSectionBar(catalog.Titles())
	gs.sectionBar.OnSelect = gs.switchSection
	return gs, nil
}

func (gs *GalleryScreen) Name() string { return "Gallery" }

func (gs *GalleryScreen) OnEnter() {
	gs.coord.OnImageWidth(gs.cachedWidth(gs.state.ActiveItem().ImageURL))
	gs.coord.Mount(gs.targets(), gs.viewport())
	gs.preloadSection()
}

func (gs *GalleryScreen) OnExit() {
	gs.coord.Unmount()
	gs.stopPreload()
}

// Resize tracks the window's logical size.
func (gs *GalleryScreen) Resize(w, h int) {
	if w == gs.width && h == gs.height {
		return
	}
	gs.width, gs.height = w, h
	if gs.coord.Mounted() {
		gs.coord.Resize(gs.viewport())
	}
}

func (gs *GalleryScreen) layoutMode() slider.LayoutMode {
	return slider.ModeForWidth(gs.width, gs.breakpoint)
}

func (gs *GalleryScreen) targets() slider.Targets {
	return slider.Targets{
		Thumbs:        gs.thumbs,
		MainImage:     gs.main,
		Counter:       gs.counter,
		CounterNumber: gs.number,
	}
}

func (gs *GalleryScreen) viewport() slider.Viewport {
	l := gs.layout()
	return slider.Viewport{
		Width:         float64(gs.width),
		Height:        float64(gs.height),
		StripWidth:    l.strip.W,
		StripHeight:   l.strip.H,
		CounterHeight: CounterHeight,
	}
}

func (gs *GalleryScreen) Update() (*ScreenTransition, error) {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	dt := time.Second / time.Duration(tps)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	gs.handlePointer()
	if dy := WheelDeltaY(gs.settings.WheelPixelsPerLine); dy != 0 {
		gs.state.Wheel(dy)
	}
	gs.handleKeys()
	gs.pollCatalog()
	gs.syncImageWidth()
	gs.toast.Update()

	gs.state.Tick(dt)
	gs.engine.Update(dt)
	gs.coord.Update(dt)
	gs.requestImages()
	return nil, nil
}

func (gs *GalleryScreen) handlePointer() {
	gs.events = gs.pointer.Poll(gs.width, gs.height, gs.events[:0])
	for _, ev := range gs.events {
		x, y := float64(ev.X), float64(ev.Y)
		switch ev.Kind {
		case PointerDown:
			if gs.handleButtons(ev.X, ev.Y) {
				gs.ignorePress = true
				continue
			}
			gs.pressedThumb = gs.thumbAt(ev.X, ev.Y)
			gs.pressStepped = false
			if ev.Touch {
				gs.state.TouchStart(x, y)
			} else {
				gs.state.PointerDown(x, y)
			}

		case PointerMove:
			if gs.ignorePress {
				continue
			}
			var stepped bool
			if ev.Touch {
				stepped = gs.state.TouchMove(x, y)
			} else {
				stepped = gs.state.PointerMove(x, y)
			}
			if stepped {
				gs.pressStepped = true
			}

		case PointerUp:
			if gs.ignorePress {
				gs.ignorePress = false
				continue
			}
			if ev.Touch {
				gs.state.TouchEnd()
			} else {
				gs.state.PointerUp()
			}
			// A press that stays on one thumbnail without stepping is a click.
			if k := gs.pressedThumb; k >= 0 && !gs.pressStepped && gs.thumbAt(ev.X, ev.Y) == k {
				gs.state.SetActive(gs.state.VisibleIndex(k))
			}
			gs.pressedThumb = -1

		case PointerLeave:
			gs.ignorePress = false
			gs.pressedThumb = -1
			gs.state.PointerLeave()
		}
	}
}

// handleButtons consumes presses on the section bar and the counter arrows.
func (gs *GalleryScreen) handleButtons(x, y int) bool {
	switch {
	case gs.sectionBar.HandleClick(x, y):
		return true
	case gs.prevRect.Contains(x, y):
		gs.state.Advance(-1)
		return true
	case gs.nextRect.Contains(x, y):
		gs.state.Advance(1)
		return true
	}
	return false
}

func (gs *GalleryScreen) thumbAt(x, y int) int {
	for k, r := range gs.thumbRects {
		if r.Contains(x, y) {
			return k
		}
	}
	return -1
}

func (gs *GalleryScreen) handleKeys() {
	keys := gs.settings.Keys
	switch {
	case AnyKeyRepeating(keys.Next) || KeyRepeating(ebiten.KeyPageDown):
		gs.state.Advance(1)
	case AnyKeyRepeating(keys.Previous) || KeyRepeating(ebiten.KeyPageUp):
		gs.state.Advance(-1)
	}

	n := len(gs.catalog.Sections)
	switch {
	case AnyKeyJustPressed(keys.NextSection):
		gs.switchSection(slider.Wrap(gs.section+1, n))
	case AnyKeyJustPressed(keys.PrevSection):
		gs.switchSection(slider.Wrap(gs.section-1, n))
	}
	if d := DigitJustPressed(); d > 0 && d <= n {
		gs.switchSection(d - 1)
	}

	// F5 drops decoded images and loads them again
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		gs.imgCache.Clear()
		clear(gs.requested)
		gs.preloadSection()
		gs.toast.Show("Reloading images", false)
	}

	if CopyJustPressed() {
		src := gs.state.ActiveItem().ImageURL
		if err := copyToClipboard(src); err != nil {
			log.Printf("Failed to copy image URL: %v", err)
			gs.toast.Show("Copy failed", true)
		} else {
			gs.toast.Show("Copied "+src, false)
		}
	}
}

func (gs *GalleryScreen) switchSection(i int) {
	if i == gs.section || i < 0 || i >= len(gs.catalog.Sections) {
		return
	}
	sec := gs.catalog.Sections[i]
	if len(sec.Items) > 0 {
		gs.coord.OnImageWidth(gs.cachedWidth(sec.Items[0].ImageURL))
	}
	if err := gs.state.SwitchSection(sec.Items); err != nil {
		log.Printf("Failed to switch to section %q: %v", sec.Title, err)
		return
	}
	gs.section = i
	gs.sectionBar.Active = i
	gs.preloadSection()
}

// pollCatalog swaps in a reloaded catalog, keeping the current section
// position when it still exists.
func (gs *GalleryScreen) pollCatalog() {
	if gs.settings.CatalogUpdates == nil {
		return
	}
	var c *gallery.Catalog
	select {
	case c = <-gs.settings.CatalogUpdates:
	default:
		return
	}
	if c == nil || len(c.Sections) == 0 {
		return
	}

	i := min(gs.section, len(c.Sections)-1)
	sec := c.Sections[i]
	if len(sec.Items) > 0 {
		gs.coord.OnImageWidth(gs.cachedWidth(sec.Items[0].ImageURL))
	}
	if err := gs.state.SwitchSection(sec.Items); err != nil {
		log.Printf("Failed to apply reloaded catalog: %v", err)
		gs.toast.Show("Catalog reload failed", true)
		return
	}
	gs.catalog = c
	gs.section = i
	gs.sectionBar.Titles = c.Titles()
	gs.sectionBar.Active = i
	gs.preloadSection()
	log.Printf("Catalog reloaded: %d sections", len(c.Sections))
	gs.toast.Show("Catalog reloaded", false)
}

func (gs *GalleryScreen) cachedWidth(src string) int {
	if e := gs.imgCache.Get(src); e != nil {
		return e.Width
	}
	return 0
}

// requestImages starts loads for the active image and the visible window.
func (gs *GalleryScreen) requestImages() {
	gs.request(gs.state.ActiveItem().ImageURL)
	for _, it := range gs.state.VisibleWindow() {
		gs.request(it.ImageURL)
	}
}

func (gs *GalleryScreen) request(src string) {
	if gs.requested[src] {
		return
	}
	gs.requested[src] = true
	gs.imgCache.LoadAsync(src)
}

// syncImageWidth hands the active image's natural width to the coordinator
// once it is in the cache, however it got there.
func (gs *GalleryScreen) syncImageWidth() {
	if w := gs.cachedWidth(gs.state.ActiveItem().ImageURL); w != gs.coord.ImageWidth() {
		gs.coord.OnImageWidth(w)
	}
}

func (gs *GalleryScreen) preloadSection() {
	if !gs.settings.Preload {
		return
	}
	gs.stopPreload()
	ctx, cancel := context.WithCancel(context.Background())
	gs.cancelPreload = cancel

	sec := gs.catalog.Sections[gs.section]
	go func() {
		if err := gs.imgCache.Preload(ctx, sec.URLs()); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Preload of %q stopped: %v", sec.Title, err)
		}
	}()
}

func (gs *GalleryScreen) stopPreload() {
	if gs.cancelPreload != nil {
		gs.cancelPreload()
		gs.cancelPreload = nil
	}
}

func (gs *GalleryScreen) layout() galleryLayout {
	w, h := float64(gs.width), float64(gs.height)
	top := float64(HeaderHeight + SectionBarH)
	stripLen := StripLength(gs.state.WindowSize())

	l := galleryLayout{mode: gs.layoutMode()}
	if l.mode == slider.LayoutVertical {
		side := float64(ThumbSize + 2*StripMargin)
		l.strip = ButtonRect{
			X: w - StripMargin - ThumbSize,
			Y: top + (h-top-stripLen)/2,
			W: ThumbSize,
			H: stripLen,
		}
		l.main = ButtonRect{
			X: SectionPadding,
			Y: top + StripMargin,
			W: math.Max(0, w-side-SectionPadding),
			H: math.Max(0, h-top-2*StripMargin-CounterHeight),
		}
	} else {
		band := float64(ThumbSize + 2*StripMargin)
		l.strip = ButtonRect{
			X: (w - stripLen) / 2,
			Y: h - StripMargin - ThumbSize,
			W: stripLen,
			H: ThumbSize,
		}
		l.main = ButtonRect{
			X: SectionPadding,
			Y: top + StripMargin,
			W: math.Max(0, w-2*SectionPadding),
			H: math.Max(0, h-top-band-StripMargin-CounterHeight),
		}
	}
	l.counter = ButtonRect{X: l.main.X, Y: l.main.Y + l.main.H, W: l.main.W, H: CounterHeight}
	return l
}

// thumbRect places slot k of the window, following the strip node and the
// drag nudge along the layout axis.
func (gs *GalleryScreen) thumbRect(l galleryLayout, k int, nudge float64) ButtonRect {
	r := ButtonRect{
		X: l.strip.X + gs.thumbs.X,
		Y: l.strip.Y + gs.thumbs.Y,
		W: ThumbSize,
		H: ThumbSize,
	}
	step := float64(k*thumbPitch) + nudge
	if l.mode == slider.LayoutVertical {
		r.Y += step
	} else {
		r.X += step
	}
	return r
}

func (gs *GalleryScreen) Draw(dst *ebiten.Image) {
	l := gs.layout()
	gs.drawMain(dst, l)
	gs.drawCounter(dst, l)
	gs.drawStrip(dst, l)
	gs.drawHeader(dst)
	gs.sectionBar.Draw(dst, HeaderHeight, float64(gs.width))
	gs.toast.Draw(dst)
}

func (gs *GalleryScreen) drawHeader(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, 0, float32(gs.width), HeaderHeight, ColorBackground, false)

	lead, ok := gs.catalog.Sections[gs.section].Lead()
	if !ok {
		return
	}
	DrawText(dst, lead.Photographer, SectionPadding, 20, FontSizeTitle, ColorText)
	tw, _ := MeasureText(lead.Photographer, FontSizeTitle)
	DrawText(dst, lead.Category, SectionPadding+tw+16, 28, FontSizeBody, ColorTextSecondary)

	title := "JellySlide"
	ttw, _ := MeasureText(title, FontSizeHeading)
	DrawText(dst, title, float64(gs.width)-SectionPadding-ttw, 24, FontSizeHeading, ColorPrimary)
}

func (gs *GalleryScreen) drawMain(dst *ebiten.Image, l galleryLayout) {
	frame := l.main
	if frame.W <= 0 || frame.H <= 0 {
		return
	}
	src := gs.state.ActiveItem().ImageURL
	e := gs.imgCache.Get(src)
	if e == nil || e.Width == 0 || e.Height == 0 {
		vector.DrawFilledRect(dst, float32(frame.X), float32(frame.Y), float32(frame.W), float32(frame.H), ColorSurface, false)
		if err := gs.imgCache.Err(src); err != nil {
			DrawTextWrapped(dst, "Image unavailable: "+err.Error(), frame.X+24, frame.Y+24, frame.W-48, FontSizeBody, ColorError)
		} else {
			DrawTextCentered(dst, "Loading...", frame.X+frame.W/2, frame.Y+frame.H/2, FontSizeBody, ColorTextMuted)
		}
		return
	}

	n := gs.main
	iw, ih := float64(e.Width), float64(e.Height)
	fit := math.Min(frame.W/iw, frame.H/ih) * n.Scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(fit, fit)
	op.GeoM.Translate(frame.X+frame.W/2+n.X, frame.Y+frame.H/2+n.Y)
	op.ColorScale.ScaleAlpha(float32(n.Alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(e.Image, op)
}

// drawCounter renders "N of M". The whole counter follows the counter node;
// the digit additionally follows the number node.
func (gs *GalleryScreen) drawCounter(dst *ebiten.Image, l galleryLayout) {
	num := strconv.Itoa(gs.state.ActiveIndex() + 1)
	rest := fmt.Sprintf(" of %d", gs.state.Len())
	nw, th := MeasureText(num, FontSizeHeading)
	rw, _ := MeasureText(rest, FontSizeHeading)

	s := gs.counter.Scale
	a := gs.counter.Alpha
	cx, cy := l.counter.X+l.counter.W/2, l.counter.Y+l.counter.H/2
	left := cx - (nw+rw)*s/2
	top := cy - th*s/2

	DrawTextScaled(dst, num, left, top+gs.number.Y, FontSizeHeading, s, a*gs.number.Alpha, ColorPrimary)
	DrawTextScaled(dst, rest, left+nw*s, top, FontSizeHeading, s, a, ColorTextSecondary)

	const arrowW = 28.0
	gs.prevRect = ButtonRect{X: left - arrowW - 16, Y: l.counter.Y, W: arrowW, H: l.counter.H}
	gs.nextRect = ButtonRect{X: left + (nw+rw)*s + 16, Y: l.counter.Y, W: arrowW, H: l.counter.H}
	clr := fade(ColorTextSecondary, a)
	drawChevron(dst, float32(gs.prevRect.X+arrowW/2), float32(cy), 8, -1, clr)
	drawChevron(dst, float32(gs.nextRect.X+arrowW/2), float32(cy), 8, 1, clr)
}

func (gs *GalleryScreen) drawStrip(dst *ebiten.Image, l galleryLayout) {
	items := gs.state.VisibleWindow()
	center := slider.CenterSlot(len(items))
	nudge := gs.coord.ThumbOffset()
	alpha := gs.thumbs.Alpha

	gs.thumbRects = gs.thumbRects[:0]
	for k, it := range items {
		r := gs.thumbRect(l, k, nudge)
		gs.thumbRects = append(gs.thumbRects, r)

		if k == center {
			vector.DrawFilledRect(dst,
				float32(r.X-ThumbFocusPad), float32(r.Y-ThumbFocusPad),
				float32(r.W+ThumbFocusPad*2), float32(r.H+ThumbFocusPad*2),
				fade(ColorFocusBorder, alpha), false)
		}

		if e := gs.imgCache.Get(it.ImageURL); e != nil {
			drawImageCover(dst, e.Image, r, alpha)
			continue
		}
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fade(ColorSurface, alpha), false)
		DrawTextCentered(dst, strconv.Itoa(it.ID), r.X+r.W/2, r.Y+r.H/2, FontSizeSmall, fade(ColorTextMuted, alpha))
	}
}

// drawImageCover scales img to fill r, cropping the overflow evenly.
func drawImageCover(dst, img *ebiten.Image, r ButtonRect, alpha float64) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	s := math.Max(r.W/iw, r.H/ih)
	cw, ch := r.W/s, r.H/s
	x0 := b.Min.X + int((iw-cw)/2)
	y0 := b.Min.Y + int((ih-ch)/2)
	sub := img.SubImage(image.Rect(x0, y0, x0+int(cw), y0+int(ch))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sub, op)
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// DebugLines describes the slider for the debug overlay.
func (gs *GalleryScreen) DebugLines() []string {
	snap := gs.state.Snapshot()
	return []string{
		fmt.Sprintf("section     %d/%d %q", gs.section+1, len(gs.catalog.Sections), gs.catalog.Sections[gs.section].Title),
		fmt.Sprintf("index       %d of %d", snap.ActiveIndex+1, snap.Count),
		fmt.Sprintf("drag        %v from (%.0f, %.0f) offset %.1f", snap.IsDragging, snap.DragStart.X, snap.DragStart.Y, snap.AccumulatedOffset),
		fmt.Sprintf("wheel       burst %d direction %s", snap.ScrollBurstCount, snap.ScrollDirection),
		fmt.Sprintf("ready       %v", snap.AnimationReady),
		fmt.Sprintf("generation  %d thumb key %d replay pending %v", snap.Generation, gs.coord.ThumbKey(), gs.coord.ReplayPending()),
		fmt.Sprintf("layout      %s %dx%d", snap.Mode, gs.width, gs.height),
		fmt.Sprintf("tweens      %d image width %d", gs.engine.Len(), gs.coord.ImageWidth()),
	}
}
