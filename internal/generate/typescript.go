package generate

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/wolfeidau/iconpack/internal/assets"
)

var tsTemplate = template.Must(template.New("ts").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`export enum {{.Enum}} {
{{- range .Icons}}
  {{.Key}} = {{quote .ID}},
{{- end}}
}

export type {{.KeyType}} =
{{- range .Icons}}
  | {{quote .Key}}
{{- end}};

export const {{.Const}}: { [key in {{.Enum}}]: number } = {
{{- range .Icons}}
  [{{$.Enum}}.{{.Key}}]: {{.Codepoint}},
{{- end}}
};
`))

type tsIcon struct {
	ID        string
	Key       string
	Codepoint int
}

func typescript(icons *assets.AssetsMap, cfg Config, codepoints map[string]int) ([]byte, error) {
	name := pascalCase(cfg.Name)
	if name == "" {
		name = "Icons"
	}

	data := struct {
		Enum    string
		KeyType string
		Const   string
		Icons   []tsIcon
	}{
		Enum:    name + "Id",
		KeyType: name + "Key",
		Const:   strings.ToUpper(snakeCase(cfg.Name)) + "_CODEPOINTS",
	}
	if data.Const == "_CODEPOINTS" {
		data.Const = "ICONS_CODEPOINTS"
	}

	seen := make(map[string]string, icons.Len())
	for id := range icons.All() {
		key := pascalCase(id)
		if first, _ := utf8.DecodeRuneInString(key); key == "" || unicode.IsDigit(first) {
			key = "I" + key
		}
		if other, exists := seen[key]; exists {
			return nil, fmt.Errorf("icons %q and %q map to the same TypeScript key %s", other, id, key)
		}
		seen[key] = id
		data.Icons = append(data.Icons, tsIcon{ID: id, Key: key, Codepoint: codepoints[id]})
	}

	buf := new(bytes.Buffer)
	if err := tsTemplate.Execute(buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// words splits s on every character that is not a letter or digit.
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func pascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		runes := []rune(w)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}

func snakeCase(s string) string {
	return strings.Join(words(s), "_")
}
