package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides (SWIPER_THRESHOLD_RATIO, ...)
const EnvPrefix = "SWIPER"

// ApplyEnv overlays SWIPER_* environment variables on cfg and validates the result.
func ApplyEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	keys := []string{
		"threshold_ratio",
		"dampening_factor",
		"initial_page",
		"axis",
		"backend",
		"delimiter",
		"animation.commit_duration_ms",
		"animation.spring_frequency",
		"animation.spring_damping",
		"animation.fps",
	}
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return err
		}
	}

	if v.IsSet("threshold_ratio") {
		cfg.ThresholdRatio = v.GetFloat64("threshold_ratio")
	}
	if v.IsSet("dampening_factor") {
		cfg.DampeningFactor = v.GetFloat64("dampening_factor")
	}
	if v.IsSet("initial_page") {
		cfg.InitialPage = v.GetInt("initial_page")
	}
	if v.IsSet("axis") {
		cfg.Axis = v.GetString("axis")
	}
	if v.IsSet("backend") {
		cfg.Backend = v.GetString("backend")
	}
	if v.IsSet("delimiter") {
		cfg.Delimiter = v.GetString("delimiter")
	}
	if v.IsSet("animation.commit_duration_ms") {
		cfg.Animation.CommitDurationMS = v.GetInt("animation.commit_duration_ms")
	}
	if v.IsSet("animation.spring_frequency") {
		cfg.Animation.SpringFrequency = v.GetFloat64("animation.spring_frequency")
	}
	if v.IsSet("animation.spring_damping") {
		cfg.Animation.SpringDamping = v.GetFloat64("animation.spring_damping")
	}
	if v.IsSet("animation.fps") {
		cfg.Animation.FPS = v.GetInt("animation.fps")
	}

	return cfg.Validate()
}
