package profile

import "image/color"

// Profile defines the icon set rendered for a target surface: which pixel
// sizes to emit, in which formats, and the glyph's colors.
type Profile struct {
	Name       string
	Sizes      []int       // pixel sizes to render
	Formats    []string    // output formats in priority order
	RefSize    int         // reference design size the glyph geometry is drawn at
	Background color.NRGBA // canvas fill
	Glyph      color.NRGBA // lock body and shackle color
}

var (
	extensionBlue = color.NRGBA{R: 59, G: 130, B: 246, A: 255}
	glyphWhite    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Built-in profiles.
var profiles = map[string]Profile{
	"chrome-extension": {
		Name:       "chrome-extension",
		Sizes:      []int{16, 32, 48, 128},
		Formats:    []string{"png"},
		RefSize:    24,
		Background: extensionBlue,
		Glyph:      glyphWhite,
	},
	"favicon": {
		Name:       "favicon",
		Sizes:      []int{16, 32, 48},
		Formats:    []string{"png", "ico"},
		RefSize:    24,
		Background: extensionBlue,
		Glyph:      glyphWhite,
	},
	"toolbar": {
		Name:       "toolbar",
		Sizes:      []int{16, 24, 32},
		Formats:    []string{"png", "bmp"},
		RefSize:    24,
		Background: extensionBlue,
		Glyph:      glyphWhite,
	},
}

// Get returns a profile by name. Falls back to chrome-extension if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["chrome-extension"]
	p.Name = name // preserve requested name
	return p
}

// EffectiveSizes returns the sizes to render. A non-empty override replaces
// the profile's sizes; duplicates and non-positive entries are dropped.
func (p Profile) EffectiveSizes(override []int) []int {
	src := p.Sizes
	if len(override) > 0 {
		src = override
	}

	seen := map[int]bool{}
	var result []int
	for _, s := range src {
		if s <= 0 || seen[s] {
			continue
		}
		seen[s] = true
		result = append(result, s)
	}
	return result
}
