// Package config loads pathviz settings from defaults, an optional config
// file, a .env file and PATHVIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/render"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full settings tree.
type Config struct {
	Grid   GridConfig   `mapstructure:"grid"`
	Render RenderConfig `mapstructure:"render"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// GridConfig sizes the board and picks the undo behaviour.
type GridConfig struct {
	Rows  int              `mapstructure:"rows"`
	Width int              `mapstructure:"width"` // canvas side in pixels
	Undo  grid.ClearPolicy `mapstructure:"undo"`  // "transient" or "explored"
}

// RenderConfig controls frame output.
type RenderConfig struct {
	FrameDelay  time.Duration `mapstructure:"frame_delay"`
	ClearScreen bool          `mapstructure:"clear_screen"`
	Glyphs      string        `mapstructure:"glyphs"`
}

// ServerConfig configures the HTTP/websocket front end.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxSessions  int           `mapstructure:"max_sessions"`
}

// LogConfig configures the zap logger and its lumberjack file rotation.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
	Dev        bool   `mapstructure:"dev"`
}

// Default returns the built-in settings: a 50-row board on an 800px canvas.
func Default() Config {
	return Config{
		Grid: GridConfig{Rows: 50, Width: 800, Undo: grid.ClearTransient},
		Render: RenderConfig{
			FrameDelay:  10 * time.Millisecond,
			ClearScreen: true,
			Glyphs:      render.DefaultGlyphs,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			MaxSessions:  64,
		},
		Log: LogConfig{Level: "info", MaxSize: 100, MaxBackups: 3, MaxAge: 7},
	}
}

// Validate reports every out-of-range value, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var err error
	if c.Grid.Rows < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: grid.rows %d must be positive", ErrInvalid, c.Grid.Rows))
	}
	if c.Grid.Width < c.Grid.Rows {
		err = multierr.Append(err, fmt.Errorf("%w: grid.width %d is below grid.rows %d", ErrInvalid, c.Grid.Width, c.Grid.Rows))
	}
	if c.Render.FrameDelay < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: render.frame_delay %v is negative", ErrInvalid, c.Render.FrameDelay))
	}
	if e := render.ValidateGlyphs(c.Render.Glyphs); e != nil {
		err = multierr.Append(err, fmt.Errorf("%w: render.glyphs: %v", ErrInvalid, e))
	}
	if c.Server.MaxSessions < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: server.max_sessions %d must be positive", ErrInvalid, c.Server.MaxSessions))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: server timeouts must not be negative", ErrInvalid))
	}
	return err
}
