package assets

import "iter"

// AssetsExtension is the file extension of discovered source assets.
const AssetsExtension = "svg"

// IconAsset is a single SVG source file discovered under the input directory.
type IconAsset struct {
	ID           string `json:"id"`
	AbsolutePath string `json:"absolutePath"`
	RelativePath string `json:"relativePath"`
}

// AssetsMap maps icon ids to their assets, preserving discovery order.
type AssetsMap struct {
	byID  map[string]IconAsset
	order []string
}

// NewAssetsMap creates an empty AssetsMap.
func NewAssetsMap() *AssetsMap {
	return &AssetsMap{byID: make(map[string]IconAsset)}
}

// Get returns the asset registered under id.
func (m *AssetsMap) Get(id string) (IconAsset, bool) {
	a, ok := m.byID[id]
	return a, ok
}

// Len returns the number of assets.
func (m *AssetsMap) Len() int {
	return len(m.order)
}

// IDs returns the ids in discovery order.
func (m *AssetsMap) IDs() []string {
	ids := make([]string, len(m.order))
	copy(ids, m.order)
	return ids
}

// All iterates over the assets in discovery order.
func (m *AssetsMap) All() iter.Seq2[string, IconAsset] {
	return func(yield func(string, IconAsset) bool) {
		for _, id := range m.order {
			if !yield(id, m.byID[id]) {
				return
			}
		}
	}
}

// add inserts asset, reporting a ConflictError if its id is already taken.
func (m *AssetsMap) add(asset IconAsset) error {
	if existing, exists := m.byID[asset.ID]; exists {
		return &ConflictError{ID: asset.ID, Existing: existing.RelativePath, Conflicting: asset.RelativePath}
	}
	m.byID[asset.ID] = asset
	m.order = append(m.order, asset.ID)
	return nil
}

// GeneratedAssets holds generated output content keyed by file extension.
// Extensions are kept in insertion order, which is also the write order.
type GeneratedAssets struct {
	content map[string][]byte
	order   []string
}

// NewGeneratedAssets creates an empty GeneratedAssets.
func NewGeneratedAssets() *GeneratedAssets {
	return &GeneratedAssets{content: make(map[string][]byte)}
}

// Set stores content for ext. Replacing an existing extension keeps its position.
func (g *GeneratedAssets) Set(ext string, content []byte) {
	if _, exists := g.content[ext]; !exists {
		g.order = append(g.order, ext)
	}
	g.content[ext] = content
}

// Get returns the content generated for ext.
func (g *GeneratedAssets) Get(ext string) ([]byte, bool) {
	if g == nil {
		return nil, false
	}
	c, ok := g.content[ext]
	return c, ok
}

// Extensions returns the extensions in insertion order. A nil
// GeneratedAssets has none.
func (g *GeneratedAssets) Extensions() []string {
	if g == nil {
		return nil
	}
	exts := make([]string, len(g.order))
	copy(exts, g.order)
	return exts
}

// Len returns the number of generated assets.
func (g *GeneratedAssets) Len() int {
	if g == nil {
		return 0
	}
	return len(g.order)
}

// WriteResult records one file written by WriteAssets.
type WriteResult struct {
	Content   []byte
	WritePath string
}

type WriteResults []WriteResult
