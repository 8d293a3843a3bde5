// Package generate renders the output assets of an icon set: an SVG sprite,
// a JSON codepoint map and TypeScript definitions.
package generate

import (
	"errors"
	"fmt"
	"slices"

	"github.com/wolfeidau/iconpack/internal/assets"
)

var ErrUnknownAssetType = errors.New("unknown asset type")

// generatorFunc renders one asset type.
type generatorFunc func(icons *assets.AssetsMap, cfg Config, codepoints map[string]int) ([]byte, error)

var generators = map[string]generatorFunc{
	"svg":  sprite,
	"json": codepointsJSON,
	"ts":   typescript,
}

// Types returns the supported asset types, sorted.
func Types() []string {
	types := make([]string, 0, len(generators))
	for name := range generators {
		types = append(types, name)
	}
	slices.Sort(types)
	return types
}

// Generate renders cfg.Types in order, keyed by their file extension.
func Generate(icons *assets.AssetsMap, cfg Config) (*assets.GeneratedAssets, error) {
	codepoints, err := Codepoints(icons, cfg.startCodepoint(), cfg.Codepoints)
	if err != nil {
		return nil, err
	}

	out := assets.NewGeneratedAssets()

	for _, assetType := range cfg.Types {
		gen, ok := generators[assetType]
		if !ok {
			return nil, fmt.Errorf("%w %q (supported: %v)", ErrUnknownAssetType, assetType, Types())
		}

		content, err := gen(icons, cfg, codepoints)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", assetType, err)
		}

		out.Set(assetType, content)
	}

	return out, nil
}
