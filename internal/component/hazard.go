// internal/component/hazard.go
package component

// Shockwave is an expanding ring that reflects projectiles. The full
// variant also pushes the player.
type Shockwave struct {
	X, Y           float64
	Radius         float64
	MaxRadius      float64
	ExpansionSpeed float64
	Mini           bool
	Age            int

	MarkedForDeletion bool
}

// Progress returns how far the ring has expanded, in [0, 1].
func (s *Shockwave) Progress() float64 {
	p := s.Radius / s.MaxRadius
	if p > 1 {
		return 1
	}
	return p
}

// Opacity follows a squared falloff for the full ring and a linear one for
// the mini ring.
func (s *Shockwave) Opacity(base float64) float64 {
	rest := 1 - s.Progress()
	if s.Mini {
		return base * rest
	}
	return base * rest * rest
}

// Wall is a temporary reflecting segment.
type Wall struct {
	X1, Y1, X2, Y2 float64
	Thickness      float64
	Life           int
	MaxLife        int
	FadeFrames     int

	MarkedForDeletion bool
}

// Opacity is 1 until the final FadeFrames, then fades linearly.
func (w *Wall) Opacity() float64 {
	if w.FadeFrames > 0 && w.Life < w.FadeFrames {
		if w.Life <= 0 {
			return 0
		}
		return float64(w.Life) / float64(w.FadeFrames)
	}
	return 1
}
