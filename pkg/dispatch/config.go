// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ReregisterPolicy defines what happens when registering an entry for a (name, key) that already has one.
type ReregisterPolicy int

const (
	// Overwrite the previous entry: last write wins.
	Overwrite ReregisterPolicy = iota

	// Reject the new entry with ErrAlreadyRegistered: the previous one must be unregistered first.
	Reject
)

// String implements fmt.Stringer.
func (p ReregisterPolicy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case Reject:
		return "reject"
	default:
		return "ReregisterPolicy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParseReregisterPolicy converts "overwrite" or "reject" (case-insensitive) to a ReregisterPolicy.
func ParseReregisterPolicy(s string) (ReregisterPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overwrite":
		return Overwrite, nil
	case "reject":
		return Reject, nil
	}
	return Overwrite, errors.Errorf("unknown re-register policy %q, valid values are \"overwrite\" or \"reject\"", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *ReregisterPolicy) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return errors.Wrapf(err, "line %d: decoding re-register policy", node.Line)
	}
	policy, err := ParseReregisterPolicy(s)
	if err != nil {
		return errors.WithMessagef(err, "line %d", node.Line)
	}
	*p = policy
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p ReregisterPolicy) MarshalYAML() (any, error) {
	return p.String(), nil
}

// Config of a Registry.
type Config struct {
	// Name of the registry, used in logs.
	Name string `yaml:"name"`

	// Reregister is the policy when registering over an existing (name, key) entry.
	Reregister ReregisterPolicy `yaml:"reregister"`

	// StrictUnregister makes Unregister of a missing entry fail with ErrNotFound. If false, it is a no-op.
	StrictUnregister bool `yaml:"strict_unregister"`
}

// NewConfig returns the default configuration.
func NewConfig() Config {
	return Config{
		Name:             "default",
		Reregister:       Overwrite,
		StrictUnregister: true,
	}
}

// EnvConfig is the environment variable with the configuration of the default registry, in the format
// accepted by ParseConfig.
const EnvConfig = "KDISPATCH_CONFIG"

// EnvConfigFile is the environment variable with the path to a YAML configuration file for the default registry.
// It is only used if EnvConfig is not set.
const EnvConfigFile = "KDISPATCH_CONFIG_FILE"

// DefaultConfig is the configuration, in the format accepted by ParseConfig, used for the default registry if
// neither EnvConfig nor EnvConfigFile are set.
//
// It must be set before Default is first called, which happens during the initialization of package ops.
var DefaultConfig string

// ConfigFromEnv returns the configuration for the default registry:
//
//  1. The environment variable EnvConfig is parsed, if defined.
//  2. Next the YAML file pointed by EnvConfigFile is loaded, if defined.
//  3. Next DefaultConfig is parsed, if set.
//  4. Otherwise, it returns NewConfig().
func ConfigFromEnv() (Config, error) {
	if config, found := os.LookupEnv(EnvConfig); found {
		return ParseConfig(config)
	}
	if filePath, found := os.LookupEnv(EnvConfigFile); found {
		return LoadConfig(filePath)
	}
	if DefaultConfig != "" {
		return ParseConfig(DefaultConfig)
	}
	return NewConfig(), nil
}

// ParseConfig parses a comma-separated list of "key=value" settings, starting from NewConfig().
// E.g.: "name=plugins,reregister=reject,strict_unregister=false".
func ParseConfig(config string) (Config, error) {
	c := NewConfig()
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			return c, errors.Errorf("invalid setting %q in dispatch configuration %q, expected \"key=value\"", part, config)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch key {
		case "name":
			c.Name = value
		case "reregister":
			policy, err := ParseReregisterPolicy(value)
			if err != nil {
				return c, errors.WithMessagef(err, "dispatch configuration %q", config)
			}
			c.Reregister = policy
		case "strict_unregister":
			strict, err := strconv.ParseBool(value)
			if err != nil {
				return c, errors.Wrapf(err, "invalid value for strict_unregister in dispatch configuration %q", config)
			}
			c.StrictUnregister = strict
		default:
			return c, errors.Errorf("unknown setting %q in dispatch configuration %q", key, config)
		}
	}
	return c, nil
}

// LoadConfig reads a YAML configuration file, starting from NewConfig() for the missing fields.
func LoadConfig(filePath string) (Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return NewConfig(), errors.Wrapf(err, "reading dispatch configuration %q", filePath)
	}
	c := NewConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return NewConfig(), errors.Wrapf(err, "parsing dispatch configuration %q", filePath)
	}
	return c, nil
}
