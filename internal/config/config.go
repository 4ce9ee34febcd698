package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dshills/chord/internal/log"
	"github.com/dshills/chord/internal/renderer/core"
	"github.com/dshills/chord/internal/renderer/gutter"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CHORD"

// Setting keys.
const (
	KeyInputKeyTimeout    = "input.key_timeout"
	KeyInputPollInterval  = "input.poll_interval"
	KeyInputQueueSize     = "input.queue_size"
	KeyDisplayNumberWidth = "display.number_width"
	KeyDisplayFiller      = "display.filler"
	KeyDisplayLineNumbers = "display.line_numbers"
	KeyDisplayBannerColor = "display.banner_color"
	KeyLogLevel           = "log.level"
	KeyLogFile            = "log.file"
	KeyKeymapFile         = "keymap.file"
)

// Config holds every setting.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Display DisplayConfig `mapstructure:"display"`
	Log     LogConfig     `mapstructure:"log"`
	Keymap  KeymapConfig  `mapstructure:"keymap"`
}

// InputConfig configures key resolution and polling.
type InputConfig struct {
	KeyTimeout   time.Duration `mapstructure:"key_timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	QueueSize    int           `mapstructure:"queue_size"`
}

// DisplayConfig configures the gutter and banner.
type DisplayConfig struct {
	NumberWidth int    `mapstructure:"number_width"`
	Filler      string `mapstructure:"filler"`
	LineNumbers string `mapstructure:"line_numbers"`
	BannerColor string `mapstructure:"banner_color"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// KeymapConfig names a binding override file.
type KeymapConfig struct {
	File string `mapstructure:"file"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Input: InputConfig{
			KeyTimeout:   time.Second,
			PollInterval: 10 * time.Millisecond,
			QueueSize:    256,
		},
		Display: DisplayConfig{
			NumberWidth: gutter.DefaultNumberWidth,
			Filler:      gutter.DefaultFiller,
			LineNumbers: gutter.LineNumberHybrid.String(),
			BannerColor: core.ColorRed.String(),
		},
		Log: LogConfig{
			Level: "info",
			File:  log.DefaultFile(),
		},
	}
}

// Options controls where Load looks.
type Options struct {
	// File is an explicit config file. When empty the user config
	// directory is searched and a missing file is not an error.
	File string

	// Flags are bound over every other layer when set.
	Flags *pflag.FlagSet
}

// flagKeys maps command line flag names to setting keys.
var flagKeys = map[string]string{
	"log-level":   KeyLogLevel,
	"log-file":    KeyLogFile,
	"keymap":      KeyKeymapFile,
	"key-timeout": KeyInputKeyTimeout,
}

// Load resolves the configuration layers and validates the result.
func Load(opts Options) (Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := readFile(v, opts.File); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault(KeyInputKeyTimeout, d.Input.KeyTimeout)
	v.SetDefault(KeyInputPollInterval, d.Input.PollInterval)
	v.SetDefault(KeyInputQueueSize, d.Input.QueueSize)
	v.SetDefault(KeyDisplayNumberWidth, d.Display.NumberWidth)
	v.SetDefault(KeyDisplayFiller, d.Display.Filler)
	v.SetDefault(KeyDisplayLineNumbers, d.Display.LineNumbers)
	v.SetDefault(KeyDisplayBannerColor, d.Display.BannerColor)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFile, d.Log.File)
	v.SetDefault(KeyKeymapFile, d.Keymap.File)
}

func readFile(v *viper.Viper, path string) error {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	dir, err := UserConfigDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// UserConfigDir returns $XDG_CONFIG_HOME/chord, or its platform equivalent.
func UserConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "chord"), nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	var errs []error

	if c.Input.KeyTimeout <= 0 {
		errs = append(errs, &ValidationError{Path: KeyInputKeyTimeout, Message: "must be positive", Value: c.Input.KeyTimeout, Code: ErrCodeOutOfRange})
	}
	if c.Input.PollInterval <= 0 {
		errs = append(errs, &ValidationError{Path: KeyInputPollInterval, Message: "must be positive", Value: c.Input.PollInterval, Code: ErrCodeOutOfRange})
	}
	if c.Input.QueueSize <= 0 {
		errs = append(errs, &ValidationError{Path: KeyInputQueueSize, Message: "must be positive", Value: c.Input.QueueSize, Code: ErrCodeOutOfRange})
	}
	if c.Display.NumberWidth < 1 || c.Display.NumberWidth > 9 {
		errs = append(errs, &ValidationError{Path: KeyDisplayNumberWidth, Message: "must be between 1 and 9", Value: c.Display.NumberWidth, Code: ErrCodeOutOfRange})
	}
	if utf8.RuneCountInString(c.Display.Filler) != 1 {
		errs = append(errs, &ValidationError{Path: KeyDisplayFiller, Message: "must be a single character", Value: c.Display.Filler, Code: ErrCodePatternMismatch})
	}
	if _, err := gutter.ParseLineNumberMode(c.Display.LineNumbers); err != nil {
		errs = append(errs, &ValidationError{Path: KeyDisplayLineNumbers, Message: "must be hybrid, absolute or relative", Value: c.Display.LineNumbers, Code: ErrCodeInvalidEnum})
	}
	if _, err := core.ParseColor(c.Display.BannerColor); err != nil {
		errs = append(errs, &ValidationError{Path: KeyDisplayBannerColor, Message: "must be a hex color or palette index", Value: c.Display.BannerColor, Code: ErrCodePatternMismatch})
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{Path: KeyLogLevel, Message: "must be debug, info, warn or error", Value: c.Log.Level, Code: ErrCodeInvalidEnum})
	}

	return errors.Join(errs...)
}

// LineNumberMode returns the parsed display.line_numbers setting.
func (c Config) LineNumberMode() gutter.LineNumberMode {
	m, _ := gutter.ParseLineNumberMode(c.Display.LineNumbers)
	return m
}

// BannerColor returns the parsed display.banner_color setting.
func (c Config) BannerColor() core.Color {
	col, err := core.ParseColor(c.Display.BannerColor)
	if err != nil {
		return core.ColorRed
	}
	return col
}

// LogLevel returns the parsed log.level setting.
func (c Config) LogLevel() log.Level {
	return log.ParseLevel(c.Log.Level)
}

// GutterConfig returns the gutter settings.
func (c Config) GutterConfig() gutter.Config {
	return gutter.Config{
		Mode:        c.LineNumberMode(),
		NumberWidth: c.Display.NumberWidth,
		Filler:      c.Display.Filler,
	}
}
