package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/osmodel/internal/device"
	"github.com/vvka-141/osmodel/internal/element"
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ErrConfigExists is returned by Create when the config file is already there.
var ErrConfigExists = errors.New("config file already exists")

type ProjectConfig struct {
	Kind          string   `yaml:"kind"`
	ConsumePolicy string   `yaml:"consume_policy,omitempty"`
	Verbose       bool     `yaml:"verbose,omitempty"`
	Applications  []string `yaml:"applications,omitempty"`
	PrintText     string   `yaml:"print_text,omitempty"`
	NetworkData   string   `yaml:"network_data,omitempty"`
}

const (
	ConfigFileName = "osmodel.yaml"
	EnvFileName    = ".env"

	EnvKind           = "OSMODEL_KIND"
	EnvConsumePolicy  = "OSMODEL_CONSUME_POLICY"
	EnvNonInteractive = "OSMODEL_NON_INTERACTIVE"
)

func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", configPath, osmodel.ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// Save writes cfg to dir, replacing any existing file.
func Save(dir string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0644)
}

// Create writes cfg to dir like Save but refuses to replace an existing file
// unless force is set. It returns the path written.
func Create(dir string, cfg *ProjectConfig, force bool) (string, error) {
	path := filepath.Join(dir, ConfigFileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s: %w", path, ErrConfigExists)
		} else if !os.IsNotExist(err) {
			return "", err
		}
	}
	if err := Save(dir, cfg); err != nil {
		return "", err
	}
	return path, nil
}

// LoadEnvFile loads dir/.env into the process environment. Variables that
// are already set win. A missing file is not an error.
func LoadEnvFile(dir string) error {
	path := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Overrides holds values given on the command line. Empty fields are unset.
type Overrides struct {
	Kind          string
	ConsumePolicy string
	Verbose       bool
}

// Settings is the effective configuration after precedence is applied.
type Settings struct {
	Kind          element.Kind
	ConsumePolicy device.ConsumePolicy
	Verbose       bool
	Applications  []string
	PrintText     string
	NetworkData   string
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Kind:          element.KindLinux,
		ConsumePolicy: device.DefaultConsumePolicy,
		PrintText:     osmodel.DefaultPrintText,
		NetworkData:   osmodel.DefaultNetworkData,
	}
}

// Resolve applies, from highest to lowest priority: overrides, environment,
// project file, defaults. cfg may be nil.
func Resolve(cfg *ProjectConfig, o Overrides) (Settings, error) {
	s := Default()
	if cfg == nil {
		cfg = &ProjectConfig{}
	}

	kindName := firstNonEmpty(o.Kind, os.Getenv(EnvKind), cfg.Kind)
	if kindName != "" {
		kind, err := element.ParseKind(kindName)
		if err != nil {
			return Settings{}, err
		}
		s.Kind = kind
	}

	policy, err := device.ParseConsumePolicy(firstNonEmpty(o.ConsumePolicy, os.Getenv(EnvConsumePolicy), cfg.ConsumePolicy))
	if err != nil {
		return Settings{}, err
	}
	s.ConsumePolicy = policy

	s.Verbose = o.Verbose || cfg.Verbose
	if len(cfg.Applications) > 0 {
		s.Applications = cfg.Applications
	}
	if cfg.PrintText != "" {
		s.PrintText = cfg.PrintText
	}
	if cfg.NetworkData != "" {
		s.NetworkData = cfg.NetworkData
	}
	return s, nil
}

// FromSettings returns the project file that resolves back to s.
func FromSettings(s Settings) *ProjectConfig {
	return &ProjectConfig{
		Kind:          s.Kind.String(),
		ConsumePolicy: string(s.ConsumePolicy),
		Verbose:       s.Verbose,
		Applications:  s.Applications,
		PrintText:     s.PrintText,
		NetworkData:   s.NetworkData,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
