package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/editor"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/search"
)

type runFlags struct {
	rows      int
	layout    string
	density   float64
	seed      int64
	start     string
	end       string
	delay     time.Duration
	heuristic bool
	noClear   bool
}

func newRunCmd(a *app) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate one search in the terminal",
		Example: `  pathviz run --rows 20 --density 0.3 --seed 7
  pathviz run --layout maze.txt --delay 50ms`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			applyRunFlags(cmd, f, a.cfg)
			return runSearch(ctx, cmd.OutOrStdout(), f, a.cfg, a.log)
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.rows, "rows", "r", 0, "board side (default grid.rows)")
	fl.StringVarP(&f.layout, "layout", "l", "", "text layout file: . # S E")
	fl.Float64VarP(&f.density, "density", "d", 0, "random barrier density in [0,1)")
	fl.Int64Var(&f.seed, "seed", 1, "random seed for --density")
	fl.StringVar(&f.start, "start", "", "start cell as row,col (default top-left)")
	fl.StringVar(&f.end, "end", "", "end cell as row,col (default bottom-right)")
	fl.DurationVar(&f.delay, "delay", 0, "pause between frames (default render.frame_delay)")
	fl.BoolVar(&f.heuristic, "heuristic", false, "order the frontier by Manhattan distance (greedy, not shortest)")
	fl.BoolVar(&f.noClear, "no-clear", false, "append frames instead of redrawing the screen")
	return cmd
}

// applyRunFlags folds explicitly set flags over the loaded configuration.
func applyRunFlags(cmd *cobra.Command, f *runFlags, cfg *config.Config) {
	if cmd.Flags().Changed("rows") {
		cfg.Grid.Rows = f.rows
		if cfg.Grid.Width < f.rows {
			cfg.Grid.Width = f.rows
		}
	}
	if cmd.Flags().Changed("delay") {
		cfg.Render.FrameDelay = f.delay
	}
	if f.noClear {
		cfg.Render.ClearScreen = false
	}
}

func runSearch(ctx context.Context, out io.Writer, f *runFlags, cfg *config.Config, log *zap.Logger) error {
	g, err := buildBoard(f, cfg.Grid.Rows)
	if err != nil {
		return err
	}
	width := max(cfg.Grid.Width, g.Rows())

	edOpts := []editor.Option{editor.WithLogger(log), editor.WithUndoPolicy(cfg.Grid.Undo)}
	if f.heuristic {
		edOpts = append(edOpts, editor.WithSearchOptions(search.WithHeuristic(grid.Manhattan)))
	}
	ed, err := editor.FromGrid(g, width, edOpts...)
	if err != nil {
		return err
	}
	if f.layout == "" {
		if err := placeEndpoints(ed, f); err != nil {
			return err
		}
		if f.density > 0 {
			n := g.Scatter(f.density, rand.New(rand.NewSource(f.seed)))
			log.Debug("barriers scattered", zap.Int("count", n), zap.Float64("density", f.density))
		}
	}

	start, okS := ed.Start()
	end, okE := ed.End()
	if okS && okE && !g.Connected(start, end) {
		log.Warn("end is unreachable from start; the search will exhaust the board",
			zap.Stringer("start", start), zap.Stringer("end", end))
	}

	txt, err := render.NewText(out, g,
		render.WithContext(ctx),
		render.WithDelay(cfg.Render.FrameDelay),
		render.WithClearScreen(cfg.Render.ClearScreen),
		render.WithGlyphs(cfg.Render.Glyphs),
		render.WithHeader(func(n int) string { return fmt.Sprintf("frame %d", n) }),
	)
	if err != nil {
		return err
	}

	res, err := ed.Run(ctx, txt.Render)
	if err != nil {
		return err
	}
	if err := txt.Err(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	_, err = fmt.Fprintf(out, "outcome=%s hops=%d expanded=%d frames=%d\n",
		res.Outcome, res.Hops(), len(res.Order), res.Renders)
	return err
}

// buildBoard reads --layout or creates an empty board of rows.
func buildBoard(f *runFlags, rows int) (*grid.Grid, error) {
	if f.layout == "" {
		return grid.New(rows)
	}
	raw, err := os.ReadFile(f.layout)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return grid.Parse(string(raw))
}

// placeEndpoints paints Start then End from the flags, defaulting to
// opposite corners.
func placeEndpoints(ed *editor.Editor, f *runFlags) error {
	last := ed.Grid().Rows() - 1
	start, end := grid.Pos{}, grid.Pos{Row: last, Col: last}
	var err error
	if f.start != "" {
		if start, err = parsePos(f.start); err != nil {
			return err
		}
	}
	if f.end != "" {
		if end, err = parsePos(f.end); err != nil {
			return err
		}
	}
	if start == end {
		return fmt.Errorf("%w: start and end are both %v", search.ErrInvalidEndpoints, start)
	}
	if _, err := ed.Paint(start); err != nil {
		return err
	}
	_, err = ed.Paint(end)
	return err
}

func parsePos(s string) (grid.Pos, error) {
	var p grid.Pos
	if _, err := fmt.Sscanf(s, "%d,%d", &p.Row, &p.Col); err != nil {
		return p, fmt.Errorf("parse position %q: want row,col", s)
	}
	return p, nil
}
