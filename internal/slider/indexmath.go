package slider

import (
	"errors"
	"fmt"

	"github.com/depeter/jellyslide/internal/gallery"
)

// ErrInvalidModulus is the panic value cause for Wrap with n <= 0.
var ErrInvalidModulus = errors.New("slider: wrap modulus must be positive")

// Wrap returns i mod n normalized into [0, n). Calling it with n <= 0 is a
// programming error and panics.
func Wrap(i, n int) int {
	if n <= 0 {
		panic(fmt.Errorf("%w: Wrap(%d, %d)", ErrInvalidModulus, i, n))
	}
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}

// CenterSlot is the index of the active item inside a window of size.
func CenterSlot(size int) int {
	return size / 2
}

// VisibleWindow returns size items centered on active, wrapping around the
// ends of items. When size exceeds len(items) items repeat. An empty list or
// non-positive size yields nil.
func VisibleWindow(active int, items []gallery.Item, size int) []gallery.Item {
	n := len(items)
	if n == 0 || size <= 0 {
		return nil
	}
	start := active - CenterSlot(size)
	window := make([]gallery.Item, size)
	for k := range window {
		window[k] = items[Wrap(start+k, n)]
	}
	return window
}
