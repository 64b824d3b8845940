package papergrid

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrUnknownStyle is returned when a style config names a base preset that does not exist.
var ErrUnknownStyle = errors.New("unknown style")

// StyleConfig is the YAML form of a Style. Keys that are absent are inherited
// from Base (no border at all when Base is empty).
//
//	base: pseudo
//	split:
//	  disabled: true
//	bottom:
//	  main: "*"
//	  intersection: "'"
//	inner: "'"
type StyleConfig struct {
	Base   string      `yaml:"base"`
	Top    *LineConfig `yaml:"top"`
	Bottom *LineConfig `yaml:"bottom"`
	Header *LineConfig `yaml:"header"`
	Split  *LineConfig `yaml:"split"`
	// An empty string removes the border.
	Left  *string `yaml:"left"`
	Right *string `yaml:"right"`
	Inner *string `yaml:"inner"`
}

// LineConfig is the YAML form of a Line. Each glyph is a single character.
type LineConfig struct {
	Disabled     bool   `yaml:"disabled"`
	Main         string `yaml:"main"`
	Intersection string `yaml:"intersection"`
	LeftCorner   string `yaml:"left_corner"`
	RightCorner  string `yaml:"right_corner"`
}

// LoadStyle parses a YAML style definition.
func LoadStyle(data []byte) (Style, error) {
	var cfg StyleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Style{}, fmt.Errorf("failed to parse style: %w", err)
	}
	return cfg.Style()
}

// Style builds the Style described by c.
func (c StyleConfig) Style() (Style, error) {
	var s Style
	if c.Base != "" {
		base, ok := StyleByName(c.Base)
		if !ok {
			return Style{}, fmt.Errorf("base %q: %w", c.Base, ErrUnknownStyle)
		}
		s = base
	}

	lines := []struct {
		name string
		cfg  *LineConfig
		dst  *Line
	}{
		{"top", c.Top, &s.Top},
		{"bottom", c.Bottom, &s.Bottom},
		{"header", c.Header, &s.Header},
		{"split", c.Split, &s.Split},
	}
	for _, l := range lines {
		if l.cfg == nil {
			continue
		}
		line, err := l.cfg.Line()
		if err != nil {
			return Style{}, fmt.Errorf("%s: %w", l.name, err)
		}
		*l.dst = line
	}

	verticals := []struct {
		name string
		cfg  *string
		dst  *rune
	}{
		{"left", c.Left, &s.Left},
		{"right", c.Right, &s.Right},
		{"inner", c.Inner, &s.Inner},
	}
	for _, v := range verticals {
		if v.cfg == nil {
			continue
		}
		r, err := parseGlyph(*v.cfg)
		if err != nil {
			return Style{}, fmt.Errorf("%s: %w", v.name, err)
		}
		*v.dst = r
	}

	return s, nil
}

// Line builds the Line described by c.
func (c LineConfig) Line() (Line, error) {
	if c.Disabled {
		return NoLine, nil
	}
	if c.Main == "" {
		return Line{}, errors.New("main glyph is required")
	}

	var l Line
	glyphs := []struct {
		name string
		src  string
		dst  *rune
	}{
		{"main", c.Main, &l.Main},
		{"intersection", c.Intersection, &l.Intersection},
		{"left_corner", c.LeftCorner, &l.LeftCorner},
		{"right_corner", c.RightCorner, &l.RightCorner},
	}
	for _, g := range glyphs {
		r, err := parseGlyph(g.src)
		if err != nil {
			return Line{}, fmt.Errorf("%s: %w", g.name, err)
		}
		*g.dst = r
	}
	return l, nil
}

// parseGlyph converts a one column character to a rune; "" is the zero rune.
func parseGlyph(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	switch RuneWidth(r) {
	case 0:
		return 0, fmt.Errorf("%q is not printable", s)
	case 1:
	default:
		return 0, fmt.Errorf("%q is wider than one column", s)
	}
	return r, nil
}
