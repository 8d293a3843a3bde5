package assets

import (
	"fmt"
	"path/filepath"
	"strings"
)

// BasenameID names an icon after its file name.
func BasenameID(d IconIDDescriptor) string {
	return d.Basename
}

// PathID returns an IconIDFunc which prefixes the file name with its
// directories, joined by sep (e.g., "arrows/left.svg" becomes "arrows-left").
func PathID(sep string) IconIDFunc {
	return func(d IconIDDescriptor) string {
		if d.RelativeDirPath == "." || d.RelativeDirPath == "" {
			return d.Basename
		}
		segments := strings.Split(filepath.ToSlash(d.RelativeDirPath), "/")
		return strings.Join(append(segments, d.Basename), sep)
	}
}

// IconIDStrategy resolves a named id strategy.
func IconIDStrategy(name string) (IconIDFunc, error) {
	switch name {
	case "", "basename":
		return BasenameID, nil
	case "path":
		return PathID("-"), nil
	default:
		return nil, fmt.Errorf("unknown icon id strategy %q", name)
	}
}
