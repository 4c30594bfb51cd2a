package config

import (
	"connect4/game"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const MaxDepth = 8

var (
	cfgFile = "connect4/config.yaml"
	logFile = "connect4/connect4.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type EngineConfig struct {
	Depth       int    `yaml:"depth"`
	Evaluator   string `yaml:"evaluator"`
	EngineFirst bool   `yaml:"engine_first"`
}

// Colors are xterm 256-color palette indices.
type ConfigColors struct {
	Board     int `yaml:"board"`
	Engine    int `yaml:"engine"`
	Human     int `yaml:"human"`
	Cursor    int `yaml:"cursor"`
	LastMoved int `yaml:"last_moved"`
}

type ConfigSymbols struct {
	Engine string `yaml:"engine"`
	Human  string `yaml:"human"`
	Empty  string `yaml:"empty"`
	Cursor string `yaml:"cursor"`
}

type Theme struct {
	Colors  ConfigColors  `yaml:"colors"`
	Symbols ConfigSymbols `yaml:"symbols"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Theme  Theme        `yaml:"theme"`
	Log    LogConfig    `yaml:"log"`
}

// InitConfig loads the config file from the XDG config directories, falling back to
// DefaultConfig when there is none.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return Load(absPath)
}

// Load reads the file at path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, &InvalidConfig{err.Error()}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Engine.Depth < 1 || c.Engine.Depth > MaxDepth {
		return &InvalidConfig{fmt.Sprintf("engine depth must be between 1 and %d", MaxDepth)}
	}
	if _, err := game.LookupEvaluator(c.Engine.Evaluator); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{err.Error()}
	}
	for _, s := range []string{c.Theme.Symbols.Engine, c.Theme.Symbols.Human, c.Theme.Symbols.Empty, c.Theme.Symbols.Cursor} {
		if utf8.RuneCountInString(s) != 1 {
			return &InvalidConfig{fmt.Sprintf("symbol %q must be a single character", s)}
		}
		r, _ := utf8.DecodeRuneInString(s)
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	for _, color := range []int{c.Theme.Colors.Board, c.Theme.Colors.Engine, c.Theme.Colors.Human, c.Theme.Colors.Cursor, c.Theme.Colors.LastMoved} {
		if color < 0 || color > 255 {
			return &InvalidConfig{"colors must be between 0 and 255"}
		}
	}
	return nil
}

// Save writes the config to the XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return c.SaveTo(absPath, 0664)
}

func (c *Config) SaveTo(path string, perm fs.FileMode) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

// LogFile returns the path of the log file under the XDG state directory, creating its
// parent directories.
func LogFile() (string, error) {
	return xdg.StateFile(logFile)
}

// IsInvalid reports whether err is a validation error.
func IsInvalid(err error) bool {
	var invalid *InvalidConfig
	return errors.As(err, &invalid)
}
