package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/wolfeidau/iconpack/internal/assets"
	"github.com/wolfeidau/iconpack/internal/config"
	"github.com/wolfeidau/iconpack/internal/generate"
	"github.com/wolfeidau/iconpack/internal/logger"
)

type BuildCmd struct {
	SourceFlags

	Output string            `help:"Directory generated assets are written to" short:"o" type:"path"`
	Name   string            `help:"Base file name of generated assets"`
	Prefix string            `help:"Prefix of sprite symbol ids"`
	Types  []string          `help:"Asset types to generate (${asset_types})" short:"t"`
	Hash   bool              `help:"Embed a content hash in output file names"`
	Path   map[string]string `help:"Explicit output path for an asset type (e.g. svg=public/sprite.svg)"`
}

func (b *BuildCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)
	return b.build(log)
}

func (b *BuildCmd) build(log zerolog.Logger) error {
	cfg, err := b.resolveConfig()
	if err != nil {
		return err
	}

	opts, err := cfg.RunnerOptions()
	if err != nil {
		return err
	}

	icons, err := assets.LoadAssets(opts)
	if err != nil {
		return fmt.Errorf("failed to load icons: %w", err)
	}

	log.Info().Str("input", cfg.InputDir).Int("icons", icons.Len()).Msg("Loaded icons")
	log.Debug().Strs("ids", icons.IDs()).Msg("Icon ids")

	generated, err := generate.Generate(icons, cfg.GenerateConfig())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	results, err := assets.WriteAssets(generated, opts)
	if err != nil {
		return err
	}

	for _, r := range results {
		log.Info().Str("path", r.WritePath).Int("bytes", len(r.Content)).Msg("Wrote asset")
	}

	return nil
}

func (b *BuildCmd) resolveConfig() (config.Config, error) {
	cfg, err := b.loadConfig()
	if err != nil {
		return cfg, err
	}

	if b.Output != "" {
		cfg.OutputDir = b.Output
	}
	if b.Name != "" {
		cfg.Name = b.Name
	}
	if b.Prefix != "" {
		cfg.Prefix = b.Prefix
	}
	if len(b.Types) > 0 {
		cfg.AssetTypes = b.Types
	}
	if b.Hash {
		cfg.HashInFileName = true
	}
	if len(b.Path) > 0 {
		if cfg.PathOptions == nil {
			cfg.PathOptions = make(map[string]string, len(b.Path))
		}
		for ext, path := range b.Path {
			cfg.PathOptions[ext] = path
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
