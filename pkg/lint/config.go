package lint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Target names an assertion entry point to check: the bare
// function name and the zero-based positions of the value and
// phrase arguments.
type Target struct {
	Func      string `yaml:"func" json:"func"`
	ValueArg  int    `yaml:"value_arg" json:"value_arg"`
	PhraseArg int    `yaml:"phrase_arg" json:"phrase_arg"`
}

// Config controls which calls are checked and which names are
// considered registered beyond the builtins.
type Config struct {
	// Targets are the assertion entry points to scan. When
	// empty, the default assertthat.That signature is used.
	Targets []Target `yaml:"targets" json:"targets,omitempty"`

	// ExtraProperties lists property names registered by the
	// project at runtime, so phrases using them are not
	// flagged as unknown.
	ExtraProperties []string `yaml:"extra_properties" json:"extra_properties,omitempty"`

	// ExtraPredicates lists predicate names registered by the
	// project at runtime.
	ExtraPredicates []string `yaml:"extra_predicates" json:"extra_predicates,omitempty"`

	// CheckDynamic reports phrases that are not constant
	// strings, since those cannot be validated statically.
	CheckDynamic bool `yaml:"check_dynamic" json:"check_dynamic,omitempty"`
}

// DefaultConfigFile is the config file name looked up when no
// explicit path is given.
const DefaultConfigFile = ".assertlint.yaml"

// DefaultConfig returns the configuration used when no config
// file is present.
func DefaultConfig() Config {
	return Config{
		Targets: []Target{
			{Func: "That", ValueArg: 1, PhraseArg: 2},
		},
	}
}

// ParseConfig unmarshals a YAML config document. Omitted
// targets fall back to the defaults.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf(
			"failed to parse config: %w", err,
		)
	}

	if len(cfg.Targets) == 0 {
		cfg.Targets = DefaultConfig().Targets
	}

	return cfg, nil
}

// LoadConfig reads a YAML config file. An empty path loads the
// defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf(
			"failed to read config file %s: %w", path, err,
		)
	}

	return ParseConfig(data)
}

// target returns the Target for a callee name, if configured.
func (c Config) target(name string) (Target, bool) {
	for _, t := range c.Targets {
		if t.Func == name {
			return t, true
		}
	}
	return Target{}, false
}
