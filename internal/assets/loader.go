package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const assetsGlob = "**/*." + AssetsExtension

// LoadPaths returns every SVG file below dir in glob order.
func LoadPaths(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), assetsGlob, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s: %w", dir, err)
	}

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		if isHidden(match) {
			continue
		}
		paths = append(paths, filepath.Join(dir, filepath.FromSlash(match)))
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoAssetsFound, dir)
	}

	return paths, nil
}

// isHidden reports whether any segment of a slash separated glob match
// starts with a dot, as shell globs skip those.
func isHidden(match string) bool {
	for _, segment := range strings.Split(match, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

// LoadAssets discovers the SVG files under opts.InputDir and assigns each an id
// using opts.GetIconID. It fails on the first id shared by two files.
func LoadAssets(opts Options) (*AssetsMap, error) {
	paths, err := LoadPaths(opts.InputDir)
	if err != nil {
		return nil, err
	}

	inputDir, err := filepath.Abs(opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input dir: %w", err)
	}

	getIconID := opts.iconIDFunc()
	out := NewAssetsMap()

	for index, path := range paths {
		absolutePath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
		}

		relativePath, err := filepath.Rel(inputDir, absolutePath)
		if err != nil {
			return nil, fmt.Errorf("failed to relativize %s: %w", path, err)
		}

		basename, relativeDirPath := splitRelativePath(relativePath)

		id := getIconID(IconIDDescriptor{
			Basename:         basename,
			RelativeDirPath:  relativeDirPath,
			AbsoluteFilePath: absolutePath,
			RelativeFilePath: relativePath,
			Index:            index,
		})

		if err := out.add(IconAsset{ID: id, AbsolutePath: absolutePath, RelativePath: relativePath}); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// splitRelativePath returns the extensionless file name and the directory
// portion of a relative path, with "." standing in for the root.
func splitRelativePath(relativePath string) (basename, relativeDirPath string) {
	segments := strings.Split(filepath.ToSlash(relativePath), "/")
	filename := segments[len(segments)-1]
	basename = strings.TrimSuffix(filename, filepath.Ext(filename))

	relativeDirPath = filepath.Join(segments[:len(segments)-1]...)
	if relativeDirPath == "" {
		relativeDirPath = "."
	}

	return basename, relativeDirPath
}
