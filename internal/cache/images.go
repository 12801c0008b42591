package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// maxConcurrentLoads bounds downloads and decodes in flight.
const maxConcurrentLoads = 6

// Entry is a loaded image plus its natural size.
type Entry struct {
	Image  *ebiten.Image
	Width  int
	Height int
}

// ImageCache provides disk + memory caching for gallery images. Sources are
// http(s) URLs, file:// URLs or plain filesystem paths; only remote images
// are written to the disk cache.
type ImageCache struct {
	cacheDir string
	memory   sync.Map // source -> *Entry
	failed   sync.Map // source -> error
	group    singleflight.Group
	sem      chan struct{}
}

// NewImageCache creates a new image cache with the given disk directory.
func NewImageCache(cacheDir string) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir: cacheDir,
		sem:      make(chan struct{}, maxConcurrentLoads),
	}, nil
}

// Get returns a cached image if available, or nil.
func (ic *ImageCache) Get(src string) *Entry {
	if v, ok := ic.memory.Load(src); ok {
		return v.(*Entry)
	}
	return nil
}

// Err returns the error of the last failed load of src, if any.
func (ic *ImageCache) Err(src string) error {
	if v, ok := ic.failed.Load(src); ok {
		return v.(error)
	}
	return nil
}

// LoadAsync starts loading src in the background unless it is already
// cached. Concurrent loads of the same source share one fetch; results are
// read back with Get and Err.
func (ic *ImageCache) LoadAsync(src string) {
	if ic.Get(src) != nil {
		return
	}
	go ic.load(src)
}

// Preload warms the cache with every source, bounded to a few concurrent
// loads. Individual failures are logged and do not stop the others.
func (ic *ImageCache) Preload(ctx context.Context, srcs []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for _, src := range srcs {
		if ic.Get(src) != nil {
			continue
		}
		src := src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := ic.load(src); err != nil {
				log.Printf("Preload %s: %v", src, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (ic *ImageCache) load(src string) (*Entry, error) {
	v, err, _ := ic.group.Do(src, func() (any, error) {
		if e := ic.Get(src); e != nil {
			return e, nil
		}

		ic.sem <- struct{}{}
		defer func() { <-ic.sem }()

		img, err := ic.loadImage(src)
		if err != nil {
			ic.failed.Store(src, err)
			return nil, err
		}
		b := img.Bounds()
		e := &Entry{
			Image:  ebiten.NewImageFromImage(img),
			Width:  b.Dx(),
			Height: b.Dy(),
		}
		ic.memory.Store(src, e)
		ic.failed.Delete(src)
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Entry), nil
}

func (ic *ImageCache) loadImage(src string) (image.Image, error) {
	if !isRemote(src) {
		return decodeFile(localPath(src))
	}

	diskPath := ic.diskPath(src)

	// Try disk cache first
	if img, err := decodeFile(diskPath); err == nil {
		return img, nil
	} else if !os.IsNotExist(err) {
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	resp, err := httpClient.Get(src)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}

	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func localPath(src string) string {
	return strings.TrimPrefix(src, "file://")
}

func (ic *ImageCache) diskPath(src string) string {
	h := sha256.Sum256([]byte(src))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// Clear removes all cached images from memory.
func (ic *ImageCache) Clear() {
	ic.memory.Range(func(k, _ any) bool {
		ic.memory.Delete(k)
		return true
	})
	ic.failed.Range(func(k, _ any) bool {
		ic.failed.Delete(k)
		return true
	})
}

// ClearDisk removes all cached images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
