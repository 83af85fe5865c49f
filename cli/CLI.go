// Package cli loads the optional YAML configuration file of the rubywriter
// command.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rubywriter/rubywriter/transform"
	"github.com/rubywriter/rubywriter/transform/constants"
	"gopkg.in/yaml.v3"
)

// Default Config Values
const (
	defaultFormat    = string(transform.FormatDebug)
	defaultMarker    = transform.DefaultMarker
	defaultGoPackage = transform.DefaultGoPackage
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ResolverConfig describes a linear constant resolver, see
// constants.LinearResolver.
type ResolverConfig struct {
	Method       string  `yaml:"method" validate:"required"`
	Base         int64   `yaml:"base"`
	Coefficients []int64 `yaml:"coefficients" validate:"max=16"`
}

// CLIConfig holds every setting of the command that can come from a file.
type CLIConfig struct {
	Format         string           `yaml:"format" validate:"oneof=debug yaml go"`
	Documentation  bool             `yaml:"documentation"`
	SignaturesOnly bool             `yaml:"signatures_only"`
	Marker         string           `yaml:"marker"`
	GoPackage      string           `yaml:"go_package" validate:"omitempty,excludesall=./-"`
	Resolvers      []ResolverConfig `yaml:"resolvers" validate:"dive"`
}

func setConfigValue(input *string, defaultValue string) string {
	if input != nil && *input != "" {
		return strings.TrimSpace(*input)
	}
	return defaultValue
}

// NewCLIConfig returns a configuration holding only default values. With
// no resolvers configured, the explorer resolves `gen(a, b)` the way the
// generated constant files expect.
func NewCLIConfig() *CLIConfig {
	return &CLIConfig{
		Format:    defaultFormat,
		Marker:    defaultMarker,
		GoPackage: defaultGoPackage,
		Resolvers: []ResolverConfig{{Method: "gen", Base: 384, Coefficients: []int64{1, 8}}},
	}
}

// Load reads the configuration file at path. An empty path returns the
// defaults.
func Load(path string) (*CLIConfig, error) {
	if path == "" {
		return NewCLIConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &CLIConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	defaults := NewCLIConfig()
	cfg.Format = setConfigValue(&cfg.Format, defaults.Format)
	cfg.Marker = setConfigValue(&cfg.Marker, defaults.Marker)
	cfg.GoPackage = setConfigValue(&cfg.GoPackage, defaults.GoPackage)
	if cfg.Resolvers == nil {
		cfg.Resolvers = defaults.Resolvers
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (cfg *CLIConfig) Validate() error {
	err := validate.Struct(cfg)
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		errs := make([]error, 0, len(invalid))
		for _, fe := range invalid {
			errs = append(errs, fmt.Errorf("%s: failed %q check", fe.Namespace(), fe.Tag()))
		}
		return errors.Join(errs...)
	}
	return err
}

// Resolver builds the constant resolver described by the configuration.
func (cfg *CLIConfig) Resolver() constants.Resolver {
	resolvers := make([]constants.Resolver, 0, len(cfg.Resolvers))
	for _, r := range cfg.Resolvers {
		resolvers = append(resolvers, constants.LinearResolver(r.Method, r.Base, r.Coefficients...))
	}
	return constants.Resolvers(resolvers...)
}

// TransformConfig converts the configuration into manager options.
func (cfg *CLIConfig) TransformConfig() transform.Config {
	return transform.Config{
		Format:         transform.Format(cfg.Format),
		Documentation:  cfg.Documentation,
		SignaturesOnly: cfg.SignaturesOnly,
		Marker:         cfg.Marker,
		GoPackage:      cfg.GoPackage,
		Resolver:       cfg.Resolver(),
	}
}
