package generate

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wolfeidau/iconpack/internal/assets"
)

var errNoSVGRoot = errors.New("missing <svg> root element")

type svgSource struct {
	viewBox string
	inner   []byte
}

// sprite bundles every icon as a <symbol> of a single hidden SVG document.
func sprite(icons *assets.AssetsMap, cfg Config, _ map[string]int) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display: none;">` + "\n")

	for id, icon := range icons.All() {
		data, err := os.ReadFile(icon.AbsolutePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", icon.RelativePath, err)
		}

		src, err := parseSVG(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", icon.RelativePath, err)
		}

		fmt.Fprintf(buf, `  <symbol id="%s"`, escapeAttr(cfg.symbolID(id)))
		if src.viewBox != "" {
			fmt.Fprintf(buf, ` viewBox="%s"`, escapeAttr(src.viewBox))
		}
		buf.WriteString(">")
		buf.Write(src.inner)
		buf.WriteString("</symbol>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// parseSVG extracts the viewBox and the raw inner markup of an SVG document.
func parseSVG(data []byte) (svgSource, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = xml.HTMLEntity

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return svgSource{}, errNoSVGRoot
		}
		if err != nil {
			return svgSource{}, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "svg" {
			return svgSource{}, errNoSVGRoot
		}

		src := svgSource{viewBox: viewBox(start.Attr)}
		innerStart := dec.InputOffset()

		for depth := 1; depth > 0; {
			offset := dec.InputOffset()
			tok, err := dec.Token()
			if err != nil {
				return svgSource{}, err
			}
			switch tok.(type) {
			case xml.StartElement:
				depth++
			case xml.EndElement:
				depth--
				if depth == 0 {
					src.inner = bytes.TrimSpace(data[innerStart:offset])
				}
			}
		}

		return src, nil
	}
}

// viewBox returns the viewBox attribute, deriving one from width and height
// when it is absent.
func viewBox(attrs []xml.Attr) string {
	var width, height string
	for _, a := range attrs {
		switch a.Name.Local {
		case "viewBox":
			return a.Value
		case "width":
			width = strings.TrimSuffix(a.Value, "px")
		case "height":
			height = strings.TrimSuffix(a.Value, "px")
		}
	}
	if width == "" || height == "" {
		return ""
	}
	return "0 0 " + width + " " + height
}

func escapeAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
