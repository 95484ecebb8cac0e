package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathviz/grid"
)

// EnvPrefix prefixes every environment override: grid.rows → PATHVIZ_GRID_ROWS.
const EnvPrefix = "PATHVIZ"

// Load builds a Config from, lowest precedence first: Default, the file at
// path (skipped when path is empty), then PATHVIZ_* environment variables.
// envFiles are loaded into the environment first without overriding
// variables already set; with none given, ./.env is tried. A missing env
// file is not an error.
func Load(path string, envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	v := newViper(path)
	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return decode(v)
}

// Watch loads path and calls fn with every later revision of the file that
// decodes and validates. Broken revisions are logged and skipped. fn runs
// on the watcher goroutine.
func Watch(path string, log *zap.Logger, fn func(*Config)) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: watch needs a file path")
	}
	if log == nil {
		log = zap.NewNop()
	}
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		next, err := decode(v)
		if err != nil {
			log.Warn("config reload rejected", zap.String("file", e.Name), zap.Error(err))
			return
		}
		log.Info("config reloaded", zap.String("file", e.Name), zap.Stringer("op", e.Op))
		fn(next)
	})
	v.WatchConfig()

	return cfg, nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	}
	return v
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("grid.rows", d.Grid.Rows)
	v.SetDefault("grid.width", d.Grid.Width)
	v.SetDefault("grid.undo", d.Grid.Undo.String())
	v.SetDefault("render.frame_delay", d.Render.FrameDelay)
	v.SetDefault("render.clear_screen", d.Render.ClearScreen)
	v.SetDefault("render.glyphs", d.Render.Glyphs)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.max_sessions", d.Server.MaxSessions)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)
	v.SetDefault("log.dev", d.Log.Dev)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		clearPolicyHook,
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// clearPolicyHook decodes "transient" / "explored" into grid.ClearPolicy.
func clearPolicyHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(grid.ClearPolicy(0)) {
		return data, nil
	}
	p, err := grid.ParseClearPolicy(strings.ToLower(strings.TrimSpace(data.(string))))
	if err != nil {
		return nil, fmt.Errorf("%w: grid.undo: %v", ErrInvalid, err)
	}
	return p, nil
}

func loadEnvFiles(files ...string) error {
	err := godotenv.Load(files...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: env file: %w", err)
}
