// Package config loads pitchview settings from an optional yaml file with
// sane defaults for every key.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/lixenwraith/pitchview/engine"
)

// Config is the resolved application configuration
type Config struct {
	// DataFile is the telemetry file to replay
	DataFile string

	// Playback holds the controller tuning
	Playback engine.PlaybackConfig

	// AudioEnabled turns the feedback tones on
	AudioEnabled bool

	// ServerPort is the broadcast adapter's listen port
	ServerPort int

	// AllowedOrigins is the CORS allow-list for the broadcast adapter
	AllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.file", "data/sample_match.json")
	v.SetDefault("data.fps", 30.0)
	v.SetDefault("playback.fast_forward_speed", 5.0)
	v.SetDefault("playback.rewind_speed", 5.0)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.allowed_origins", []string{"*"})
}

// Load reads the config file at path. An empty path searches the working
// directory for config.yaml and tolerates its absence; an explicit path
// must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: could not read %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	cfg := &Config{
		DataFile: v.GetString("data.file"),
		Playback: engine.PlaybackConfig{
			DataRate:         v.GetFloat64("data.fps"),
			FastForwardSpeed: v.GetFloat64("playback.fast_forward_speed"),
			RewindSpeed:      v.GetFloat64("playback.rewind_speed"),
		},
		AudioEnabled:   v.GetBool("audio.enabled"),
		ServerPort:     v.GetInt("server.port"),
		AllowedOrigins: v.GetStringSlice("server.allowed_origins"),
	}

	if cfg.Playback.DataRate <= 0 {
		return nil, fmt.Errorf("config: data.fps must be positive, got %v", cfg.Playback.DataRate)
	}
	if cfg.Playback.FastForwardSpeed <= 0 || cfg.Playback.RewindSpeed <= 0 {
		return nil, fmt.Errorf("config: scrub speeds must be positive")
	}
	return cfg, nil
}
