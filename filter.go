package spritemesh

import (
	"fmt"
	"strings"
)

// TextureType is the importer texture type of a sprite sheet.
type TextureType int

const (
	TextureTypeDefault TextureType = iota
	TextureTypeSprite
	TextureTypeAdvanced
)

var textureTypeNames = []string{"default", "sprite", "advanced"}

func (t TextureType) String() string {
	if t < 0 || int(t) >= len(textureTypeNames) {
		return fmt.Sprintf("TextureType(%d)", int(t))
	}
	return textureTypeNames[t]
}

func (t TextureType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(textureTypeNames) {
		return nil, fmt.Errorf("unknown texture type %d", int(t))
	}
	return []byte(textureTypeNames[t]), nil
}

func (t *TextureType) UnmarshalText(text []byte) error {
	i, err := lookupName(textureTypeNames, string(text))
	if err != nil {
		return fmt.Errorf("texture type: %w", err)
	}
	*t = TextureType(i)
	return nil
}

// SpriteImportMode says how the importer cuts a texture into sprites.
type SpriteImportMode int

const (
	SpriteImportModeNone SpriteImportMode = iota
	SpriteImportModeSingle
	SpriteImportModeMultiple
	SpriteImportModePolygon
)

var spriteImportModeNames = []string{"none", "single", "multiple", "polygon"}

func (m SpriteImportMode) String() string {
	if m < 0 || int(m) >= len(spriteImportModeNames) {
		return fmt.Sprintf("SpriteImportMode(%d)", int(m))
	}
	return spriteImportModeNames[m]
}

func (m SpriteImportMode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(spriteImportModeNames) {
		return nil, fmt.Errorf("unknown sprite import mode %d", int(m))
	}
	return []byte(spriteImportModeNames[m]), nil
}

func (m *SpriteImportMode) UnmarshalText(text []byte) error {
	i, err := lookupName(spriteImportModeNames, string(text))
	if err != nil {
		return fmt.Errorf("sprite import mode: %w", err)
	}
	*m = SpriteImportMode(i)
	return nil
}

func lookupName(names []string, name string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown value %q", name)
}

// ImportSettings describes the texture asset the sprites were cut from.
type ImportSettings struct {
	AssetPath        string           `json:"asset_path"`
	TextureType      TextureType      `json:"texture_type"`
	SpriteImportMode SpriteImportMode `json:"sprite_import_mode"`
}

// ShouldProcess reports whether sprites imported with s are optimised.
// Assets whose path contains one of the skip fragments are left alone, as are
// textures that are not imported as sprites. Every fragment is matched
// ignoring case, so "Standard Assets" also skips "standard assets/" and "UI"
// also skips "Buildings/".
func (c *Config) ShouldProcess(s ImportSettings) bool {
	if c.Disabled {
		return false
	}

	path := strings.ToUpper(s.AssetPath)
	for _, frag := range c.SkipPathFragments {
		if frag != "" && strings.Contains(path, strings.ToUpper(frag)) {
			return false
		}
	}

	switch s.TextureType {
	case TextureTypeSprite:
		return true
	case TextureTypeAdvanced:
		return s.SpriteImportMode != SpriteImportModeNone
	default:
		return false
	}
}
