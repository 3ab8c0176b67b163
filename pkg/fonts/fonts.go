// Package fonts provides the embedded Go font faces used to rasterize
// chart labels.
//
// The fonts come from golang.org/x/image/font/gofont and are compiled into
// the binary, so PNG output never depends on fonts installed on the host.
// CSS font descriptions are mapped onto the closest Go font variant: the
// family is ignored, weights of 600 and above (or "bold") select the bold
// cut and "italic" or "oblique" select the italic cut.
package fonts

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Variant is one cut of the Go font family.
type Variant int

const (
	Regular Variant = iota
	Bold
	Italic
	BoldItalic
)

var ttfs = [...][]byte{
	Regular:    goregular.TTF,
	Bold:       gobold.TTF,
	Italic:     goitalic.TTF,
	BoldItalic: gobolditalic.TTF,
}

// Parsed fonts are cached after first use.
var (
	parsed     [len(ttfs)]*truetype.Font
	parseErr   [len(ttfs)]error
	parseOnces [len(ttfs)]sync.Once
)

// Font returns the parsed TrueType font for v.
func Font(v Variant) (*truetype.Font, error) {
	if v < Regular || v > BoldItalic {
		return nil, fmt.Errorf("unknown font variant %d", v)
	}
	parseOnces[v].Do(func() {
		parsed[v], parseErr[v] = truetype.Parse(ttfs[v])
	})
	return parsed[v], parseErr[v]
}

// Resolve picks the variant closest to a CSS font style and weight.
func Resolve(style, weight string) Variant {
	bold := isBold(weight)
	italic := style == "italic" || style == "oblique"
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	}
	return Regular
}

func isBold(weight string) bool {
	switch strings.ToLower(weight) {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}

// Face returns a font face for the given CSS style and weight at size
// pixels. Faces are not safe for concurrent use; callers own the returned
// face and should Close it when done.
func Face(style, weight string, size float64) (font.Face, error) {
	f, err := Font(Resolve(style, weight))
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}
