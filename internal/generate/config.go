package generate

// DefaultStartCodepoint is the first codepoint handed out to icons without a
// predefined one (start of a Private Use Area block).
const DefaultStartCodepoint = 0xf101

type Config struct {
	// Base name of the generated assets, used for type names
	Name string
	// Prefix of sprite symbol ids (e.g., "icon" gives "icon-home")
	Prefix string
	// Asset types to generate, in output order
	Types []string
	// First codepoint assigned to icons, DefaultStartCodepoint when zero
	StartCodepoint int
	// Codepoints pinned per icon id
	Codepoints map[string]int
}

func (c Config) startCodepoint() int {
	if c.StartCodepoint <= 0 {
		return DefaultStartCodepoint
	}
	return c.StartCodepoint
}

func (c Config) symbolID(id string) string {
	if c.Prefix == "" {
		return id
	}
	return c.Prefix + "-" + id
}
