package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/olivier-w/swiperow/internal/swipe"
)

// Config holds demo application configuration.
type Config struct {
	Swipe     SwipeConfig
	Animation AnimationConfig
	Debug     DebugConfig
}

// SwipeConfig holds row gesture tuning. Distances are in terminal cells.
type SwipeConfig struct {
	SnapPointsLeft      []float64 `mapstructure:"snap_points_left"`
	SnapPointsRight     []float64 `mapstructure:"snap_points_right"`
	OverSwipe           float64   `mapstructure:"over_swipe"`
	ActivationThreshold float64   `mapstructure:"activation_threshold"`
	SwipeDamping        float64   `mapstructure:"swipe_damping"`
}

// AnimationConfig holds spring tuning for the settle animation.
type AnimationConfig struct {
	Damping                   float64 `mapstructure:"damping"`
	Mass                      float64 `mapstructure:"mass"`
	Stiffness                 float64 `mapstructure:"stiffness"`
	OvershootClamping         bool    `mapstructure:"overshoot_clamping"`
	RestSpeedThreshold        float64 `mapstructure:"rest_speed_threshold"`
	RestDisplacementThreshold float64 `mapstructure:"rest_displacement_threshold"`
}

// DebugConfig holds diagnostics settings.
type DebugConfig struct {
	// LogFile enables debug logging to the given path. The TUI owns the
	// terminal, so logs never go to stdout.
	LogFile string `mapstructure:"log_file"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// SWIPEROW_. A missing config file is not an error; defaults apply.
func Load() (Config, error) {
	v := viper.New()

	// Snap distances sized for terminal cells: the right underlay fits the
	// done/copy actions, the left underlay fits delete.
	v.SetDefault("swipe.snap_points_left", []float64{10})
	v.SetDefault("swipe.snap_points_right", []float64{16})
	v.SetDefault("swipe.over_swipe", 4)
	v.SetDefault("swipe.activation_threshold", 2)
	v.SetDefault("swipe.swipe_damping", 3)

	spring := swipe.DefaultSpring()
	v.SetDefault("animation.damping", spring.Damping)
	v.SetDefault("animation.mass", spring.Mass)
	v.SetDefault("animation.stiffness", spring.Stiffness)
	v.SetDefault("animation.overshoot_clamping", spring.OvershootClamping)
	v.SetDefault("animation.rest_speed_threshold", spring.RestSpeedThreshold)
	v.SetDefault("animation.rest_displacement_threshold", spring.RestDisplacementThreshold)

	v.SetDefault("debug.log_file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SWIPEROW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "swiperow"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SWIPEROW")
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

// RowConfig converts the loaded tuning into a row configuration template.
func (c Config) RowConfig() swipe.Config {
	return swipe.Config{
		SnapPointsLeft:      c.Swipe.SnapPointsLeft,
		SnapPointsRight:     c.Swipe.SnapPointsRight,
		OverSwipe:           c.Swipe.OverSwipe,
		ActivationThreshold: c.Swipe.ActivationThreshold,
		SwipeDamping:        c.Swipe.SwipeDamping,
		Animation: swipe.SpringConfig{
			Damping:                   c.Animation.Damping,
			Mass:                      c.Animation.Mass,
			Stiffness:                 c.Animation.Stiffness,
			OvershootClamping:         c.Animation.OvershootClamping,
			RestSpeedThreshold:        c.Animation.RestSpeedThreshold,
			RestDisplacementThreshold: c.Animation.RestDisplacementThreshold,
		},
	}
}
