package assets

// IconIDDescriptor describes a discovered file to an IconIDFunc.
type IconIDDescriptor struct {
	// File name without extension (e.g., "arrow-left")
	Basename string
	// Directory of the file relative to the input directory, "." at the root
	RelativeDirPath string
	AbsoluteFilePath string
	RelativeFilePath string
	// Position of the file in discovery order
	Index int
}

// IconIDFunc derives an icon id from a discovered file.
type IconIDFunc func(IconIDDescriptor) string

type Options struct {
	// Root directory scanned for SVG files
	InputDir string
	// Derives the id of each icon, BasenameID when nil
	GetIconID IconIDFunc
	// Base file name of generated assets
	Name string
	// Explicit output paths per extension, these bypass OutputDir and hashing
	PathOptions map[string]string
	// Directory generated assets are written to
	OutputDir string
	// Whether to embed a content hash in output file names
	HashInFileName bool
}

func (o Options) iconIDFunc() IconIDFunc {
	if o.GetIconID == nil {
		return BasenameID
	}
	return o.GetIconID
}
