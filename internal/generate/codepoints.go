package generate

import (
	"errors"
	"fmt"
	"slices"

	"github.com/wolfeidau/iconpack/internal/assets"
)

var ErrDuplicateCodepoint = errors.New("duplicate codepoint")

// Codepoints assigns a codepoint to every icon. Predefined codepoints are kept,
// the remaining icons receive the next unused value counting up from start in
// discovery order. Two icons pinned to the same codepoint are an error.
func Codepoints(icons *assets.AssetsMap, start int, predefined map[string]int) (map[string]int, error) {
	out := make(map[string]int, icons.Len())
	used := make(map[int]string, len(predefined))

	pinned := make([]string, 0, len(predefined))
	for id := range predefined {
		if _, ok := icons.Get(id); ok {
			pinned = append(pinned, id)
		}
	}
	slices.Sort(pinned)

	for _, id := range pinned {
		cp := predefined[id]
		if other, taken := used[cp]; taken {
			return nil, fmt.Errorf("%w %#x: icons %q and %q", ErrDuplicateCodepoint, cp, other, id)
		}
		out[id] = cp
		used[cp] = id
	}

	next := start
	for id := range icons.All() {
		if _, ok := out[id]; ok {
			continue
		}
		for {
			if _, taken := used[next]; !taken {
				break
			}
			next++
		}
		out[id] = next
		used[next] = id
	}

	return out, nil
}
