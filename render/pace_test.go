package render_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/search"
)

func TestPaced(t *testing.T) {
	calls := 0
	fn := render.Paced(context.Background(), time.Millisecond, func() search.Signal {
		calls++
		return search.Continue
	})
	start := time.Now()
	assert.Equal(t, search.Continue, fn())
	assert.Equal(t, search.Continue, fn())
	assert.Equal(t, 2, calls)
	assert.GreaterOrEqual(t, time.Since(start), 2*time.Millisecond)
}

func TestPaced_ForwardsCancelWithoutWaiting(t *testing.T) {
	fn := render.Paced(context.Background(), time.Hour, render.CancelAfter(1))
	assert.Equal(t, search.Cancel, fn())
}

func TestPaced_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fn := render.Paced(ctx, time.Hour, nil)
	time.AfterFunc(10*time.Millisecond, cancel)
	assert.Equal(t, search.Cancel, fn())

	assert.Equal(t, search.Continue, render.Paced(nil, 0, nil)())
}

func TestChain(t *testing.T) {
	var order []int
	mk := func(id int, sig search.Signal) search.RenderFunc {
		return func() search.Signal {
			order = append(order, id)
			return sig
		}
	}
	assert.Equal(t, search.Continue, render.Chain(mk(1, search.Continue), nil, mk(2, search.Continue))())
	assert.Equal(t, search.Cancel, render.Chain(mk(3, search.Cancel), mk(4, search.Continue))())
	assert.Equal(t, []int{1, 2, 3, 4}, order)
}

func TestCancelAfter(t *testing.T) {
	fn := render.CancelAfter(3)
	assert.Equal(t, search.Continue, fn())
	assert.Equal(t, search.Continue, fn())
	assert.Equal(t, search.Cancel, fn())
	assert.Equal(t, search.Cancel, fn())

	never := render.CancelAfter(0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, search.Continue, never())
	}
}
