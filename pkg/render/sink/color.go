package sink

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/barchart/pkg/errors"
)

// ParseColor parses a CSS color: "#rgb" and "#rrggbb" hex, "rgb(r, g, b)",
// "rgba(r, g, b, a)", a CSS named color, or "transparent".
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return nil, errors.Config("empty color")
	case v == "transparent":
		return color.Transparent, nil
	case strings.HasPrefix(v, "#"):
		c, err := colorful.Hex(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid hex color %q", s)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	case strings.HasPrefix(v, "rgb"):
		return parseRGB(s, v)
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, errors.Config("unknown color %q", s)
}

func parseRGB(orig, v string) (color.Color, error) {
	open, end := strings.IndexByte(v, '('), strings.LastIndexByte(v, ')')
	if open < 0 || end < open {
		return nil, errors.Config("invalid color %q", orig)
	}
	fn := v[:open]
	parts := strings.Split(v[open+1:end], ",")
	if (fn == "rgb" && len(parts) != 3) || (fn == "rgba" && len(parts) != 4) || (fn != "rgb" && fn != "rgba") {
		return nil, errors.Config("invalid color %q", orig)
	}

	var ch [3]uint8
	for i := range ch {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return nil, errors.Config("invalid color channel in %q", orig)
		}
		ch[i] = uint8(n)
	}
	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return nil, errors.Config("invalid alpha in %q", orig)
		}
		alpha = a
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: uint8(alpha*255 + 0.5)}, nil
}
