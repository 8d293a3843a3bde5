package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/wolfeidau/iconpack/internal/assets"
)

// ListCmd prints the icon ids that a build would produce.
type ListCmd struct {
	SourceFlags
}

func (l *ListCmd) Run(ctx context.Context, globals *Globals) error {
	return l.list(os.Stdout)
}

func (l *ListCmd) list(w io.Writer) error {
	cfg, err := l.loadConfig()
	if err != nil {
		return err
	}
	if cfg.InputDir == "" {
		return errInputRequired
	}

	getIconID, err := assets.IconIDStrategy(cfg.IDStrategy)
	if err != nil {
		return err
	}

	icons, err := assets.LoadAssets(assets.Options{InputDir: cfg.InputDir, GetIconID: getIconID})
	if err != nil {
		return fmt.Errorf("failed to load icons: %w", err)
	}

	return printAssets(w, icons)
}

func printAssets(w io.Writer, icons *assets.AssetsMap) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPATH")
	for id, icon := range icons.All() {
		fmt.Fprintf(tw, "%s\t%s\n", id, icon.RelativePath)
	}
	return tw.Flush()
}
