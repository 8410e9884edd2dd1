package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/hhuuddoo/trellis"
)

// FileName is the optional config file looked up in the config directory.
const FileName = "trellis.json"

// Window holds viewport settings for the example programs.
type Window struct {
	Title   string `json:"title" mapstructure:"title"`
	Width   int    `json:"width" mapstructure:"width"`
	Height  int    `json:"height" mapstructure:"height"`
	ShowFPS bool   `json:"showFps" mapstructure:"showFps"`
}

// Load sets default values, reads trellis.json from configDir if present and
// binds TRELLIS_* environment variables (TRELLIS_BRIDGE_BEAMS for
// bridge.beams). A missing file is not an error.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("debug", false)

	viper.SetDefault("window.title", "trellis")
	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.showFps", false)

	viper.SetDefault("bridge.beams", 10)
	viper.SetDefault("bridge.width", 3.0)
	viper.SetDefault("bridge.height", 10.0)
	viper.SetDefault("bridge.vehicleSpeed", 6.0)

	viper.SetDefault("building.levels", 10)
	viper.SetDefault("building.levelHeight", 3.0)

	viper.SetDefault("clock.radius", 5.0)
	viper.SetDefault("clock.nodes", 36)
	viper.SetDefault("clock.minutePeriod", "4s")

	viper.SetEnvPrefix("TRELLIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Bridge returns the configured bridge layout.
func Bridge() trellis.BridgeParams {
	return trellis.BridgeParams{
		Beams:  viper.GetInt("bridge.beams"),
		Width:  viper.GetFloat64("bridge.width"),
		Height: viper.GetFloat64("bridge.height"),
	}
}

// Building returns the configured building layout.
func Building() trellis.BuildingParams {
	return trellis.BuildingParams{
		Levels:      viper.GetInt("building.levels"),
		LevelHeight: viper.GetFloat64("building.levelHeight"),
	}
}

// Clock returns the configured clock layout.
func Clock() trellis.ClockParams {
	return trellis.ClockParams{
		Radius: viper.GetFloat64("clock.radius"),
		Nodes:  viper.GetInt("clock.nodes"),
	}
}

// MinutePeriod returns how long the clock's minute hand takes per turn.
func MinutePeriod() time.Duration {
	return viper.GetDuration("clock.minutePeriod")
}

// VehicleSpeed returns the bridge vehicle's speed in units per second.
func VehicleSpeed() float64 {
	return viper.GetFloat64("bridge.vehicleSpeed")
}

// WindowConfig returns the viewport settings under title.
func WindowConfig(title string) Window {
	return Window{
		Title:   title,
		Width:   viper.GetInt("window.width"),
		Height:  viper.GetInt("window.height"),
		ShowFPS: viper.GetBool("window.showFps"),
	}
}

// LogLevel parses the configured level, falling back to info.
func LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(viper.GetString("logLevel"))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Logger returns a console logger writing to w at the configured level.
func Logger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
	}).Level(LogLevel()).With().Timestamp().Logger()
}

// Debug reports whether debug mode is requested.
func Debug() bool {
	return viper.GetBool("debug")
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
