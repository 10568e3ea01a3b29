package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tinytelemetry/digitface/internal/model"
	"github.com/tinytelemetry/digitface/internal/socketrpc"

	"github.com/spf13/viper"
)

const (
	defaultDemoSpeed = 60.0
	demoStartLayout  = "15:04"
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	TimeFormat     string        `mapstructure:"time-format"`
	IdleTimeout    time.Duration `mapstructure:"idle-timeout"`
	AnimDuration   time.Duration `mapstructure:"anim-duration"`
	AnimDelay      time.Duration `mapstructure:"anim-delay"`
	FrameInterval  time.Duration `mapstructure:"frame-interval"`
	Font           string        `mapstructure:"font"`
	Skin           string        `mapstructure:"skin"`
	InvertDiagonal bool          `mapstructure:"invert-diagonal"`
	AutoResync     bool          `mapstructure:"auto-resync"`
	SocketPath     string        `mapstructure:"socket-path"`
	APIEnabled     bool          `mapstructure:"api-enabled"`
	APIAddr        string        `mapstructure:"api-addr"`
	LogFile        string        `mapstructure:"log-file"`
	DemoSpeed      float64       `mapstructure:"demo-speed"`
	DemoStart      string        `mapstructure:"demo-start"`
	ConfigPath     string        `mapstructure:"-"` // not from config file
	ConfigDir      string        `mapstructure:"-"`
}

// TwelveHour reports whether the face shows a 12-hour clock.
func (c appConfig) TwelveHour() bool { return c.TimeFormat == "12h" }

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "digitface")

	v := viper.New()
	v.SetEnvPrefix("DIGITFACE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("time-format", model.DefaultTimeFormat)
	v.SetDefault("idle-timeout", model.DefaultIdleTimeout)
	v.SetDefault("anim-duration", model.DefaultAnimDuration)
	v.SetDefault("anim-delay", model.DefaultAnimDelay)
	v.SetDefault("frame-interval", model.DefaultFrameInterval)
	v.SetDefault("font", model.DefaultFont)
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("invert-diagonal", false)
	v.SetDefault("auto-resync", false)
	v.SetDefault("socket-path", socketrpc.DefaultSocketPath())
	v.SetDefault("api-enabled", false)
	v.SetDefault("api-addr", model.DefaultAPIAddr)
	v.SetDefault("log-file", filepath.Join(home, ".local", "state", "digitface", "digitface.log"))
	v.SetDefault("demo-speed", defaultDemoSpeed)
	v.SetDefault("demo-start", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
		configDir = filepath.Dir(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	if _, err := os.Stat(cfg.ConfigPath); err != nil {
		cfg.ConfigPath = ""
	}
	cfg.ConfigDir = configDir

	cfg.TimeFormat = strings.ToLower(strings.TrimSpace(cfg.TimeFormat))
	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	cfg.SocketPath = expandHome(cfg.SocketPath, home)
	cfg.LogFile = expandHome(cfg.LogFile, home)
	return cfg, nil
}

func (c appConfig) validate() error {
	if c.TimeFormat != "24h" && c.TimeFormat != "12h" {
		return fmt.Errorf("invalid time-format %q: want 24h or 12h", c.TimeFormat)
	}
	if c.IdleTimeout <= 0 {
		return fmt.Errorf("invalid idle-timeout: %s", c.IdleTimeout)
	}
	if c.AnimDuration <= 0 {
		return fmt.Errorf("invalid anim-duration: %s", c.AnimDuration)
	}
	if c.AnimDelay < 0 {
		return fmt.Errorf("invalid anim-delay: %s", c.AnimDelay)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("invalid frame-interval: %s", c.FrameInterval)
	}
	if c.DemoSpeed <= 0 {
		return fmt.Errorf("invalid demo-speed: %v", c.DemoSpeed)
	}
	if c.DemoStart != "" {
		if _, err := time.Parse(demoStartLayout, c.DemoStart); err != nil {
			return fmt.Errorf("invalid demo-start %q: want HH:MM", c.DemoStart)
		}
	}
	return nil
}

// demoStartTime returns the wall time demo mode starts from: today at
// demo-start, or now when unset.
func (c appConfig) demoStartTime(now time.Time) time.Time {
	if c.DemoStart == "" {
		return now
	}
	t, err := time.Parse(demoStartLayout, c.DemoStart)
	if err != nil {
		return now
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
}

func expandHome(path, home string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
