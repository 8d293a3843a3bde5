package main

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/wolfeidau/iconpack/cmd/cli/internal/commands"
	"github.com/wolfeidau/iconpack/internal/config"
	"github.com/wolfeidau/iconpack/internal/generate"
)

var (
	version = "dev"
	cli     struct {
		Build   commands.BuildCmd `cmd:"" help:"Generate assets from a directory of SVG icons"`
		List    commands.ListCmd  `cmd:"" help:"List icon ids and their source files"`
		Debug   bool              `help:"Enable debug mode."`
		Version kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("iconpack"),
		kong.Description("Bundle SVG icons into sprites and codepoint maps."),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
			"asset_types": strings.Join(generate.Types(), ", "),
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
