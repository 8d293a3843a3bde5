package generate

import (
	"encoding/json"

	"github.com/wolfeidau/iconpack/internal/assets"
)

func codepointsJSON(_ *assets.AssetsMap, _ Config, codepoints map[string]int) ([]byte, error) {
	data, err := json.MarshalIndent(codepoints, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
