package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/brettbedarf/ysh/internal/util"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EchoMode controls whether input lines are echoed back to output
type EchoMode = string

const (
	// EchoAuto echoes only when stdin is not a terminal
	EchoAuto   EchoMode = "auto"
	EchoAlways EchoMode = "always"
	EchoNever  EchoMode = "never"
)

// Verbosity levels as given on the command line (1 = least output)
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl      = util.WarnLevel
	DefaultPrompt      = "% "
	DefaultProgramName = "ysh"
	DefaultEcho        = EchoAuto
	DefaultSeedPath    = ""
)

// Environment keys read from .env override files
const (
	EnvPrompt      = "YSH_PROMPT"
	EnvProgramName = "YSH_PROGRAM_NAME"
	EnvEcho        = "YSH_ECHO"
	EnvVerbose     = "YSH_VERBOSE"
	EnvSeed        = "YSH_SEED"
)

// Config contains runtime configuration values for the shell.
type Config struct {
	LogLvl      util.LogLevel // Internal log level (Default warn)
	Prompt      string        // Prompt printed before each interactive line (Default "% ")
	ProgramName string        // Name used in the exit message (Default "ysh")
	Echo        EchoMode      // Input echo mode: auto, always or never (Default auto)
	SeedPath    string        // Optional node definition file loaded before the first command
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is a verbosity between 1 (error) and 5 (trace); out of range values are clamped
	LogLvl      *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Prompt      *string `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	ProgramName *string `yaml:"program_name,omitempty" json:"program_name,omitempty"`
	Echo        *string `yaml:"echo,omitempty" json:"echo,omitempty"`
	SeedPath    *string `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:      DefaultLogLvl,
		Prompt:      DefaultPrompt,
		ProgramName: DefaultProgramName,
		Echo:        DefaultEcho,
		SeedPath:    DefaultSeedPath,
	}
}

// NewConfig creates a Config from defaults with override applied; override may be nil.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerbosityToLogLevel(*override.LogLvl)
	}
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
	}
	if override.ProgramName != nil {
		c.ProgramName = *override.ProgramName
	}
	if override.Echo != nil {
		c.Echo = *override.Echo
	}
	if override.SeedPath != nil {
		c.SeedPath = *override.SeedPath
	}
}

// Validate reports values no component can work with.
func (c *Config) Validate() error {
	switch c.Echo {
	case EchoAuto, EchoAlways, EchoNever:
	default:
		return fmt.Errorf("invalid echo mode %q: must be one of %s, %s, %s", c.Echo, EchoAuto, EchoAlways, EchoNever)
	}
	if c.ProgramName == "" {
		return fmt.Errorf("program name must not be empty")
	}
	return nil
}

// VerbosityToLogLevel converts a 1 (error) to 5 (trace) verbosity, clamping
// out of range values.
func VerbosityToLogLevel(verbose int) util.LogLevel {
	verbose = max(ErrorVerbose, min(verbose, TraceVerbose))
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports YAML (.yaml, .yml), JSON (.json) and dotenv (.env) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".env" {
		return loadEnvOverride(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// loadEnvOverride reads YSH_* keys from a dotenv file
func loadEnvOverride(path string) (*ConfigOverride, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("(config-godotenv) %w", err)
	}

	var override ConfigOverride
	if v, ok := env[EnvPrompt]; ok {
		override.Prompt = util.Pointer(v)
	}
	if v, ok := env[EnvProgramName]; ok {
		override.ProgramName = util.Pointer(v)
	}
	if v, ok := env[EnvEcho]; ok {
		override.Echo = util.Pointer(v)
	}
	if v, ok := env[EnvSeed]; ok {
		override.SeedPath = util.Pointer(v)
	}
	if v, ok := env[EnvVerbose]; ok {
		verbose, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvVerbose, v, err)
		}
		override.LogLvl = util.Pointer(verbose)
	}
	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
// Each of overrides is merged after the file, in order, so later values win;
// nil entries are skipped. The result is validated once everything is merged.
func NewConfigFromFile(path string, overrides ...*ConfigOverride) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	for _, o := range overrides {
		if o != nil {
			cfg.Merge(o)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
