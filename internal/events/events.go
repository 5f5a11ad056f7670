// Package events loads the event scheme table that selects banner
// colours and display names by a short event code.
package events

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strings"
)

// Scheme is the colour and label configuration for one event.
type Scheme struct {
	// Code is the 4-character event code, e.g. "MOMD".
	Code string

	// FullName is the human-readable event name, e.g. "Mother's Day".
	FullName string

	// SpacerColor fills the decorative line above the caption.
	SpacerColor color.NRGBA

	// CaptionColor fills the caption text.
	CaptionColor color.NRGBA
}

// Table is the immutable set of event schemes for a run.
type Table struct {
	schemes map[string]Scheme
}

// rawScheme mirrors the on-disk JSON shape of a single event entry.
type rawScheme struct {
	FullName     string `json:"full_name"`
	SpacerColor  string `json:"spacer_color"`
	CaptionColor string `json:"caption_color"`
}

// rawFile mirrors the on-disk JSON shape of the events file.
type rawFile struct {
	Events map[string]rawScheme `json:"events"`
}

// LoadTable reads and parses an events file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified events file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	var raw rawFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse events file %s: %w", path, err)
	}
	if len(raw.Events) == 0 {
		return nil, fmt.Errorf("events file %s defines no events", path)
	}

	schemes := make(map[string]Scheme, len(raw.Events))
	for code, rs := range raw.Events {
		spacer, err := ParseColour(rs.SpacerColor)
		if err != nil {
			return nil, fmt.Errorf("event %s: invalid spacer_color: %w", code, err)
		}
		caption, err := ParseColour(rs.CaptionColor)
		if err != nil {
			return nil, fmt.Errorf("event %s: invalid caption_color: %w", code, err)
		}
		schemes[code] = Scheme{
			Code:         code,
			FullName:     rs.FullName,
			SpacerColor:  spacer,
			CaptionColor: caption,
		}
	}

	return &Table{schemes: schemes}, nil
}

// Lookup resolves an event code to its scheme. An unknown code returns
// an *UnknownCodeError carrying the available schemes so callers can
// report the options.
func (t *Table) Lookup(code string) (Scheme, error) {
	scheme, ok := t.schemes[code]
	if !ok {
		return Scheme{}, &UnknownCodeError{Code: code, Available: t.All()}
	}
	return scheme, nil
}

// All returns every scheme sorted by code.
func (t *Table) All() []Scheme {
	out := make([]Scheme, 0, len(t.schemes))
	for _, s := range t.schemes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Len returns the number of schemes in the table.
func (t *Table) Len() int {
	return len(t.schemes)
}

// UnknownCodeError reports an event code that is not in the table.
type UnknownCodeError struct {
	Code      string
	Available []Scheme
}

// Error lists the available event codes alongside the bad one.
func (e *UnknownCodeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unknown event code %q, available options:", e.Code)
	for _, s := range e.Available {
		fmt.Fprintf(&b, "\n  %s: %s", s.Code, s.FullName)
	}
	return b.String()
}

// namedColours covers the colour names used by existing events files.
var namedColours = map[string]color.NRGBA{
	"white":  {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"black":  {A: 0xff},
	"red":    {R: 0xff, A: 0xff},
	"green":  {G: 0x80, A: 0xff},
	"gold":   {R: 0xff, G: 0xd7, A: 0xff},
	"pink":   {R: 0xff, G: 0xc0, B: 0xcb, A: 0xff},
	"navy":   {B: 0x80, A: 0xff},
	"silver": {R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
}

// ParseColour parses a colour specification: #rgb, #rrggbb, #rrggbbaa,
// or one of a small set of CSS-style names.
func ParseColour(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty colour")
	}

	if !strings.HasPrefix(s, "#") {
		if c, ok := namedColours[strings.ToLower(s)]; ok {
			return c, nil
		}
		return color.NRGBA{}, fmt.Errorf("unknown colour name %q", s)
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		r, err1 := hexNibble(hex[0])
		g, err2 := hexNibble(hex[1])
		b, err3 := hexNibble(hex[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", s)
		}
		return color.NRGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, nil
	case 6, 8:
		var vals [4]uint8
		vals[3] = 0xff
		for i := 0; i < len(hex)/2; i++ {
			hi, err1 := hexNibble(hex[2*i])
			lo, err2 := hexNibble(hex[2*i+1])
			if err1 != nil || err2 != nil {
				return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", s)
			}
			vals[i] = hi<<4 | lo
		}
		return color.NRGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q (want #rgb, #rrggbb or #rrggbbaa)", s)
	}
}

// hexNibble converts one hex digit to its value.
func hexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}
