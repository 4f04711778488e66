package main

import (
	"fmt"
	"os"

	"github.com/ukaji3/custos-inspect/pkg/inspect"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk form of --config.
type fileConfig struct {
	Field      *string `yaml:"field"`
	Limit      *int    `yaml:"limit"`
	Sheet      string  `yaml:"sheet"`
	Range      string  `yaml:"range"`
	HeaderScan int     `yaml:"header_scan"`
	Format     string  `yaml:"format"`
	Pretty     bool    `yaml:"pretty"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *fileConfig) apply(opts *inspect.Options) {
	if c.Field != nil {
		opts.Field = *c.Field
	}
	if c.Limit != nil {
		opts.Limit = *c.Limit
	}
	if c.Sheet != "" {
		opts.Sheet = c.Sheet
	}
	if c.Range != "" {
		opts.Range = c.Range
	}
	if c.HeaderScan > 0 {
		opts.HeaderScan = c.HeaderScan
	}
	if c.Format != "" {
		opts.Format = inspect.Format(c.Format)
	}
	if c.Pretty {
		opts.Pretty = c.Pretty
	}
}
