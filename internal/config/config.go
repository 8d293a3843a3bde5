// Package config loads iconpack build settings from YAML or JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/wolfeidau/iconpack/internal/assets"
	"github.com/wolfeidau/iconpack/internal/generate"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file picked up from the working directory when
// no explicit path is given.
const DefaultFile = ".iconpackrc.yaml"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	InputDir       string            `yaml:"inputDir" json:"inputDir"`
	OutputDir      string            `yaml:"outputDir" json:"outputDir"`
	Name           string            `yaml:"name" json:"name"`
	Prefix         string            `yaml:"prefix" json:"prefix"`
	AssetTypes     []string          `yaml:"assetTypes" json:"assetTypes"`
	IDStrategy     string            `yaml:"idStrategy" json:"idStrategy"`
	HashInFileName bool              `yaml:"hashInFileName" json:"hashInFileName"`
	PathOptions    map[string]string `yaml:"pathOptions" json:"pathOptions"`
	StartCodepoint int               `yaml:"startCodepoint" json:"startCodepoint"`
	Codepoints     map[string]int    `yaml:"codepoints" json:"codepoints"`
}

// Default returns the settings used when neither a file nor flags override them.
func Default() Config {
	return Config{
		Name:           "icons",
		Prefix:         "icon",
		AssetTypes:     []string{"svg", "json", "ts"},
		IDStrategy:     "basename",
		StartCodepoint: generate.DefaultStartCodepoint,
	}
}

// Load reads path on top of Default. JSON is used for .json files, YAML otherwise.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks the settings required to run a build.
func (c Config) Validate() error {
	var errs []error
	if c.InputDir == "" {
		errs = append(errs, errors.New("inputDir is required"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("outputDir is required"))
	}
	if c.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if _, err := assets.IconIDStrategy(c.IDStrategy); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// RunnerOptions converts the settings into options for the assets package.
func (c Config) RunnerOptions() (assets.Options, error) {
	getIconID, err := assets.IconIDStrategy(c.IDStrategy)
	if err != nil {
		return assets.Options{}, err
	}

	return assets.Options{
		InputDir:       c.InputDir,
		GetIconID:      getIconID,
		Name:           c.Name,
		PathOptions:    c.PathOptions,
		OutputDir:      c.OutputDir,
		HashInFileName: c.HashInFileName,
	}, nil
}

// GenerateConfig converts the settings into options for the generate package.
func (c Config) GenerateConfig() generate.Config {
	return generate.Config{
		Name:           c.Name,
		Prefix:         c.Prefix,
		Types:          c.AssetTypes,
		StartCodepoint: c.StartCodepoint,
		Codepoints:     c.Codepoints,
	}
}
