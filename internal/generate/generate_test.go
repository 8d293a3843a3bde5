package generate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfeidau/iconpack/internal/assets"
)

func loadFixture(t *testing.T, files map[string]string) *assets.AssetsMap {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	icons, err := assets.LoadAssets(assets.Options{InputDir: dir})
	require.NoError(t, err)
	return icons
}

func TestGenerate(t *testing.T) {
	icons := loadFixture(t, map[string]string{
		"home.svg": `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M1 1"/></svg>`,
		"user.svg": `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16"><circle r="4"/></svg>`,
	})

	out, err := Generate(icons, Config{Name: "icons", Prefix: "icon", Types: []string{"ts", "svg", "json"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ts", "svg", "json"}, out.Extensions())

	sprite, ok := out.Get("svg")
	require.True(t, ok)
	assert.Contains(t, string(sprite), `<symbol id="icon-home" viewBox="0 0 24 24"><path d="M1 1"/></symbol>`)
	assert.Contains(t, string(sprite), `<symbol id="icon-user" viewBox="0 0 16 16"><circle r="4"/></symbol>`)

	data, ok := out.Get("json")
	require.True(t, ok)
	var codepoints map[string]int
	require.NoError(t, json.Unmarshal(data, &codepoints))
	assert.Equal(t, map[string]int{"home": 0xf101, "user": 0xf102}, codepoints)

	ts, ok := out.Get("ts")
	require.True(t, ok)
	assert.Contains(t, string(ts), "export enum IconsId {")
	assert.Contains(t, string(ts), `Home = "home",`)
	assert.Contains(t, string(ts), "[IconsId.User]: 61698,")
	assert.Contains(t, string(ts), "export const ICONS_CODEPOINTS")
}

func TestGenerate_UnknownType(t *testing.T) {
	icons := loadFixture(t, map[string]string{"a.svg": `<svg/>`})

	out, err := Generate(icons, Config{Types: []string{"svg", "woff2"}})
	require.ErrorIs(t, err, ErrUnknownAssetType)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "woff2")
}

func TestGenerate_InvalidSVG(t *testing.T) {
	icons := loadFixture(t, map[string]string{"broken.svg": `<html></html>`})

	_, err := Generate(icons, Config{Types: []string{"svg"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.svg")
	assert.ErrorIs(t, err, errNoSVGRoot)
}

func TestCodepoints(t *testing.T) {
	icons := loadFixture(t, map[string]string{
		"a.svg": `<svg/>`,
		"b.svg": `<svg/>`,
		"c.svg": `<svg/>`,
	})

	tests := []struct {
		name       string
		start      int
		predefined map[string]int
		want       map[string]int
	}{
		{
			name:  "sequential",
			start: 100,
			want:  map[string]int{"a": 100, "b": 101, "c": 102},
		},
		{
			name:       "predefined kept and skipped",
			start:      100,
			predefined: map[string]int{"b": 100},
			want:       map[string]int{"a": 101, "b": 100, "c": 102},
		},
		{
			name:       "unknown predefined ignored",
			start:      100,
			predefined: map[string]int{"zzz": 101},
			want:       map[string]int{"a": 100, "b": 101, "c": 102},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Codepoints(icons, tt.start, tt.predefined)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCodepoints_DuplicatePredefined(t *testing.T) {
	icons := loadFixture(t, map[string]string{
		"a.svg": `<svg/>`,
		"b.svg": `<svg/>`,
	})

	got, err := Codepoints(icons, 100, map[string]int{"a": 200, "b": 200})
	require.ErrorIs(t, err, ErrDuplicateCodepoint)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), `"a"`)
	assert.Contains(t, err.Error(), `"b"`)

	_, err = Generate(icons, Config{Types: []string{"json"}, Codepoints: map[string]int{"a": 200, "b": 200}})
	require.ErrorIs(t, err, ErrDuplicateCodepoint)
}

func TestParseSVG(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantViewBox string
		wantInner   string
		wantErr     bool
	}{
		{
			name:        "view box and children",
			input:       `<?xml version="1.0"?><svg viewBox="0 0 10 10"><g><path d="M0 0"/></g></svg>`,
			wantViewBox: "0 0 10 10",
			wantInner:   `<g><path d="M0 0"/></g>`,
		},
		{
			name:  "self closing",
			input: `<svg/>`,
		},
		{
			name:        "size in px",
			input:       `<svg width="32px" height="32px">` + "\n  <rect/>\n" + `</svg>`,
			wantViewBox: "0 0 32 32",
			wantInner:   `<rect/>`,
		},
		{name: "not svg", input: `<div></div>`, wantErr: true},
		{name: "empty", input: ``, wantErr: true},
		{name: "unterminated", input: `<svg><path>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := parseSVG([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantViewBox, src.viewBox)
			assert.Equal(t, tt.wantInner, string(src.inner))
		})
	}
}

func TestTypescript_KeyCollision(t *testing.T) {
	icons := loadFixture(t, map[string]string{
		"arrow-left.svg": `<svg/>`,
		"arrow_left.svg": `<svg/>`,
	})

	_, err := Generate(icons, Config{Types: []string{"ts"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ArrowLeft")
}

func TestPascalCase(t *testing.T) {
	assert.Equal(t, "ArrowLeft", pascalCase("arrow-left"))
	assert.Equal(t, "MyIcons", pascalCase("my_icons"))
	assert.Equal(t, "", pascalCase("--"))
	assert.True(t, strings.HasPrefix(pascalCase("1st"), "1"))
}

func TestTypescript_LeadingDigitKeys(t *testing.T) {
	icons := loadFixture(t, map[string]string{
		"1st.svg":    `<svg/>`,
		"٣d.svg":     `<svg/>`,
		"éclair.svg": `<svg/>`,
	})

	out, err := Generate(icons, Config{Types: []string{"ts"}})
	require.NoError(t, err)

	ts, ok := out.Get("ts")
	require.True(t, ok)
	assert.Contains(t, string(ts), `I1st = "1st",`)
	assert.Contains(t, string(ts), `I٣d = "٣d",`)
	assert.Contains(t, string(ts), `Éclair = "éclair",`)
}
