package fancy

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor accepts #rgb, #rrggbb and #aarrggbb.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == len(s) {
		return color.NRGBA{}, fmt.Errorf("color %q: missing '#'", s)
	}

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	switch len(hex) {
	case 6:
		hex = "ff" + hex
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("color %q: bad length", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}

	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// FormatColor drops alpha, the same way the saved options always did.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
