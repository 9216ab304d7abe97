package config

import (
	"flag"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/diegok/remotepong/internal/controller"
	"github.com/diegok/remotepong/internal/game"
	"github.com/diegok/remotepong/internal/logger"
)

// Default values for configuration
const (
	DefaultPoints             = game.WinningScore
	DefaultBallInterval       = 20 * time.Millisecond
	DefaultAIInterval         = 20 * time.Millisecond
	DefaultControllerInterval = 50 * time.Millisecond
	DefaultController         = controller.KindJoystick
	DefaultLogFile            = "remotepong.log"
	DefaultLogLevel           = "info"

	MinInterval = time.Millisecond
)

// Config holds the application configuration
type Config struct {
	PointsToWin        int
	BallInterval       time.Duration
	AIInterval         time.Duration
	ControllerInterval time.Duration
	Controller         string
	JoystickPath       string
	AssetsDir          string
	LogFile            string
	LogLevel           string
	Simulate           int
	ConfigFile         string
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		PointsToWin:        DefaultPoints,
		BallInterval:       DefaultBallInterval,
		AIInterval:         DefaultAIInterval,
		ControllerInterval: DefaultControllerInterval,
		Controller:         DefaultController,
		JoystickPath:       controller.DefaultJoystickPath,
		LogFile:            DefaultLogFile,
		LogLevel:           DefaultLogLevel,
	}
}

// ParseArgs parses command line arguments and returns a Config. Values from
// --config fill in anything not given on the command line.
func ParseArgs(args []string) (*Config, error) {
	def := Default()
	fs := flag.NewFlagSet("remotepong", flag.ContinueOnError)

	points := fs.Int("points", def.PointsToWin, "points to win (>=1)")
	ball := fs.Duration("ball-interval", def.BallInterval, "physics tick interval")
	ai := fs.Duration("ai-interval", def.AIInterval, "AI paddle tick interval")
	poll := fs.Duration("controller-interval", def.ControllerInterval, "controller poll interval")
	ctrl := fs.String("controller", def.Controller, "controller: none, keyboard or joystick")
	joystick := fs.String("joystick", def.JoystickPath, "joystick device path")
	assets := fs.String("assets", "", "directory with paddle-hit.wav, score.wav, victory.wav")
	logFile := fs.String("log-file", def.LogFile, "log file (empty disables logging)")
	logLevel := fs.String("log-level", def.LogLevel, "log level")
	simulate := fs.Int("simulate", 0, "run a headless match for at most N ticks and print a report")
	file := fs.String("config", "", "configuration file (yaml, toml, json or properties)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		PointsToWin:        *points,
		BallInterval:       *ball,
		AIInterval:         *ai,
		ControllerInterval: *poll,
		Controller:         *ctrl,
		JoystickPath:       *joystick,
		AssetsDir:          *assets,
		LogFile:            *logFile,
		LogLevel:           *logLevel,
		Simulate:           *simulate,
		ConfigFile:         *file,
	}

	if cfg.ConfigFile != "" {
		explicit := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if err := cfg.loadFile(explicit); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile applies keys from the config file that were not set as flags.
func (c *Config) loadFile(explicit map[string]bool) error {
	v := viper.New()
	v.SetConfigFile(c.ConfigFile)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", c.ConfigFile)
	}

	ints := map[string]*int{
		"points":   &c.PointsToWin,
		"simulate": &c.Simulate,
	}
	durations := map[string]*time.Duration{
		"ball-interval":       &c.BallInterval,
		"ai-interval":         &c.AIInterval,
		"controller-interval": &c.ControllerInterval,
	}
	strs := map[string]*string{
		"controller": &c.Controller,
		"joystick":   &c.JoystickPath,
		"assets":     &c.AssetsDir,
		"log-file":   &c.LogFile,
		"log-level":  &c.LogLevel,
	}

	for key, dst := range ints {
		if explicit[key] || !v.IsSet(key) {
			continue
		}
		n, err := cast.ToIntE(v.Get(key))
		if err != nil {
			return errors.Wrapf(err, "config key %s", key)
		}
		*dst = n
	}
	for key, dst := range durations {
		if explicit[key] || !v.IsSet(key) {
			continue
		}
		d, err := cast.ToDurationE(v.Get(key))
		if err != nil {
			return errors.Wrapf(err, "config key %s", key)
		}
		*dst = d
	}
	for key, dst := range strs {
		if explicit[key] || !v.IsSet(key) {
			continue
		}
		s, err := cast.ToStringE(v.Get(key))
		if err != nil {
			return errors.Wrapf(err, "config key %s", key)
		}
		*dst = s
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.PointsToWin < 1 {
		return errors.Errorf("points must be at least 1, got %d", c.PointsToWin)
	}

	intervals := []struct {
		name string
		d    time.Duration
	}{
		{"ball-interval", c.BallInterval},
		{"ai-interval", c.AIInterval},
		{"controller-interval", c.ControllerInterval},
	}
	for _, iv := range intervals {
		if iv.d < MinInterval {
			return errors.Errorf("%s must be at least %v, got %v", iv.name, MinInterval, iv.d)
		}
	}

	switch c.Controller {
	case controller.KindNone, controller.KindKeyboard, controller.KindJoystick:
	default:
		return errors.Errorf("unknown controller %q", c.Controller)
	}

	if c.Simulate < 0 {
		return errors.Errorf("simulate must not be negative, got %d", c.Simulate)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoggerOptions returns the logging settings.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		File:       c.LogFile,
		Level:      c.LogLevel,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}
