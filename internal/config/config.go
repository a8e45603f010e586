// Package config loads the options the cmd/pdagctl collaborator needs: the
// debug flag threaded through registry.Ctx, and the rulebase files to
// install on startup.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Options controls a pdagctl run.
type Options struct {
	// Debug is forwarded to dag.Context.Debug (spec.md §3).
	Debug bool `yaml:"debug"`
	// RulebaseFiles lists sample files to install, in order.
	RulebaseFiles []string `yaml:"rulebase_files"`
}

// DefaultOptions returns an Options with debug off and no rulebase files.
func DefaultOptions() *Options {
	return &Options{
		Debug:         false,
		RulebaseFiles: nil,
	}
}

// LoadOptions reads Options from a YAML file.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// LoadOptionsOrDefault loads path, or returns defaults if it cannot be read.
func LoadOptionsOrDefault(path string) *Options {
	opts, err := LoadOptions(path)
	if err != nil {
		return DefaultOptions()
	}
	return opts
}
