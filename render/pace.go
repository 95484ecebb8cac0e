package render

import (
	"context"
	"time"

	"github.com/katalvlaran/pathviz/search"
)

// Paced wraps fn so that every frame is followed by a pause of d. The pause
// ends early and the wrapper answers Cancel once ctx is done. A nil fn only
// paces.
func Paced(ctx context.Context, d time.Duration, fn search.RenderFunc) search.RenderFunc {
	if ctx == nil {
		ctx = context.Background()
	}
	return func() search.Signal {
		sig := search.Continue
		if fn != nil {
			sig = fn()
		}
		if d > 0 && sig == search.Continue {
			timer := time.NewTimer(d)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
			}
		}
		if ctx.Err() != nil {
			return search.Cancel
		}
		return sig
	}
}

// Chain calls every fn in order on each frame and answers Cancel if any did.
// All fns run even after one cancels, so every collaborator sees the frame.
func Chain(fns ...search.RenderFunc) search.RenderFunc {
	return func() search.Signal {
		sig := search.Continue
		for _, fn := range fns {
			if fn != nil && fn() == search.Cancel {
				sig = search.Cancel
			}
		}
		return sig
	}
}

// CancelAfter answers Continue n-1 times and Cancel from the nth call on.
// n <= 0 never cancels.
func CancelAfter(n int) search.RenderFunc {
	calls := 0
	return func() search.Signal {
		calls++
		if n > 0 && calls >= n {
			return search.Cancel
		}
		return search.Continue
	}
}
