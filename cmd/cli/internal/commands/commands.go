package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/wolfeidau/iconpack/internal/config"
)

type Globals struct {
	Debug   bool
	Version string
}

// SourceFlags holds the flags shared by commands that read an icon set.
type SourceFlags struct {
	Config     string `help:"YAML/JSON config file path (default: ${config_file} when present)" short:"c" type:"path"`
	Input      string `help:"Directory containing SVG icons" short:"i" type:"path"`
	IDStrategy string `help:"How icon ids are derived: basename or path" name:"id-strategy"`
}

// loadConfig reads the config file, when there is one, and applies the flags on top.
func (s *SourceFlags) loadConfig() (config.Config, error) {
	path := s.Config
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}

	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if s.Input != "" {
		cfg.InputDir = s.Input
	}
	if s.IDStrategy != "" {
		cfg.IDStrategy = s.IDStrategy
	}

	return cfg, nil
}

var errInputRequired = errors.New("input directory is required (use --input flag or --config file)")
