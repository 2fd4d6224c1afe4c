package fonts

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/chartkit/pkg/geom"
)

type faceKey struct {
	size int // 1/64 points
	bold bool
}

type cachedFace struct {
	face font.Face
	used bool
}

// FaceCache hands out font faces by size and weight.
//
// Faces are expensive to build and hold glyph caches, so a surface keeps one
// FaceCache for its lifetime and calls [FaceCache.Sweep] at the end of each
// render pass to drop faces that pass did not touch.
// FaceCache is safe for concurrent use.
type FaceCache struct {
	mu    sync.Mutex
	faces map[faceKey]*cachedFace
}

// NewFaceCache creates an empty cache.
func NewFaceCache() *FaceCache {
	return &FaceCache{faces: make(map[faceKey]*cachedFace)}
}

// Face returns a face for the given size in points (at 72 DPI, so points
// equal pixels) and weight.
func (c *FaceCache) Face(size float64, isBold bool) (font.Face, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	key := faceKey{size: int(math.Round(size * 64)), bold: isBold}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cf, ok := c.faces[key]; ok {
		cf.used = true
		return cf.face, nil
	}

	f, err := Font(isBold)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(key.size) / 64,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	c.faces[key] = &cachedFace{face: face, used: true}
	return face, nil
}

// Sweep closes every face that was not requested since the previous Sweep
// and clears the usage marks. It returns the number of faces released.
func (c *FaceCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	released := 0
	for k, cf := range c.faces {
		if !cf.used {
			cf.face.Close()
			delete(c.faces, k)
			released++
			continue
		}
		cf.used = false
	}
	return released
}

// Len returns the number of cached faces.
func (c *FaceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.faces)
}

// Close releases all faces.
func (c *FaceCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, cf := range c.faces {
		cf.face.Close()
		delete(c.faces, k)
	}
	return nil
}

// Measure returns the advance width and line height of text in face.
func Measure(face font.Face, text string) geom.Size {
	adv := font.MeasureString(face, text)
	return geom.Size{
		Width:  toFloat(adv),
		Height: toFloat(face.Metrics().Height),
	}
}

// Ascent returns the distance from the top of a line to the baseline.
func Ascent(face font.Face) float64 {
	return toFloat(face.Metrics().Ascent)
}

func toFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
