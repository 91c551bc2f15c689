// Package geometry measures documents for layout: line height and the width
// of the longest line, for either a proportional-font surface or a terminal
// grid.
package geometry

import (
	"strconv"

	"github.com/patrickmn/go-cache"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Zen-Editor/zen/internal/log"
)

// Metrics measures text set at a font size.
type Metrics interface {
	LineHeight(size float64) float64
	Measure(line string, size float64) float64
}

// FontMetrics measures Go Mono in pixels at 72 DPI, so one point is one pixel.
type FontMetrics struct {
	font  *opentype.Font
	faces *cache.Cache
}

// NewFontMetrics parses the embedded Go Mono font.
func NewFontMetrics() (*FontMetrics, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}

	faces := cache.New(cache.NoExpiration, 0)
	faces.OnEvicted(func(_ string, v any) {
		if c, ok := v.(interface{ Close() error }); ok {
			_ = c.Close()
		}
	})

	return &FontMetrics{font: f, faces: faces}, nil
}

func (m *FontMetrics) face(size float64) font.Face {
	key := strconv.FormatFloat(size, 'f', 2, 64)
	if f, ok := m.faces.Get(key); ok {
		return f.(font.Face)
	}

	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.ErrorErr(log.CatGeometry, "creating font face", err, "size", size)
		return basicfont.Face7x13
	}

	m.faces.Set(key, face, cache.NoExpiration)
	log.Debug(log.CatGeometry, "created font face", "size", size)
	return face
}

func (m *FontMetrics) LineHeight(size float64) float64 {
	return fixedToFloat(m.face(size).Metrics().Height)
}

func (m *FontMetrics) Measure(line string, size float64) float64 {
	return fixedToFloat(font.MeasureString(m.face(size), line))
}

// Faces reports how many sizes have a cached face.
func (m *FontMetrics) Faces() int {
	return m.faces.ItemCount()
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// CellMetrics measures in terminal cells. Every line is one cell high and
// font size is ignored.
type CellMetrics struct{}

func (CellMetrics) LineHeight(float64) float64 {
	return 1
}

func (CellMetrics) Measure(line string, _ float64) float64 {
	return float64(uniseg.StringWidth(line))
}
