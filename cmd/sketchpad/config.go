package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds sketchpad configuration.
type Config struct {
	Window WindowConfig
	Editor EditorConfig
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// EditorConfig holds interaction tuning.
type EditorConfig struct {
	DragDeadZone           float64
	RegionSelection        bool
	FullyContained         bool
	PreserveObjectStacking bool
	RebindDelayMS          int
	Debug                  bool
}

// RebindDelay returns the rebind delay as a duration.
func (c EditorConfig) RebindDelay() time.Duration {
	return time.Duration(c.RebindDelayMS) * time.Millisecond
}

// loadConfig reads configuration from file and env. Env var overrides use
// prefix SKETCHPAD_.
func loadConfig() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("window.title", "Sketchpad")
	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 640)
	v.SetDefault("editor.dragdeadzone", 4.0)
	v.SetDefault("editor.regionselection", true)
	v.SetDefault("editor.fullycontained", true)
	v.SetDefault("editor.preserveobjectstacking", false)
	v.SetDefault("editor.rebinddelayms", 400)
	v.SetDefault("editor.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SKETCHPAD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sketchpad"))
		v.AddConfigPath(".")
		v.SetConfigName("sketchpad")
	}

	v.SetEnvPrefix("SKETCHPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
