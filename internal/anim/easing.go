package anim

import "math"

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

func InQuad(t float64) float64 { return t * t }

func OutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

func OutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

// Smoothstep eases both ends; used for the thumbnail replay fade.
func Smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

// BackOut overshoots the target slightly before settling. 1.7 gives the
// familiar "pop" used for entrance animations.
func BackOut(overshoot float64) Easing {
	c1 := overshoot
	c3 := c1 + 1
	return func(t float64) float64 {
		u := t - 1
		return 1 + c3*u*u*u + c1*u*u
	}
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
