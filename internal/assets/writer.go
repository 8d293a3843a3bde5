package assets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/wolfeidau/iconpack/internal/hash"
)

// WriteAssets persists each generated asset in extension order and reports
// what was written. The first failure aborts the run; files already written
// are left in place.
func WriteAssets(generated *GeneratedAssets, opts Options) (WriteResults, error) {
	results := make(WriteResults, 0, generated.Len())

	for _, ext := range generated.Extensions() {
		content, _ := generated.Get(ext)

		writePath := opts.PathOptions[ext]
		if writePath == "" {
			writePath = filepath.Join(opts.OutputDir, outputFilename(opts, ext, content))
		}

		if err := os.WriteFile(writePath, content, 0o644); err != nil { //nolint:gosec // generated assets are public
			return nil, &WriteError{Path: writePath, Err: err}
		}

		results = append(results, WriteResult{Content: content, WritePath: writePath})
	}

	return results, nil
}

func outputFilename(opts Options, ext string, content []byte) string {
	if opts.HashInFileName {
		return strings.Join([]string{opts.Name, hash.Content(string(content)), ext}, ".")
	}
	return strings.Join([]string{opts.Name, ext}, ".")
}
