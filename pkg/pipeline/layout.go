package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/render/svg"
)

// ComputeLayout renders m off-screen at w x h and returns the resulting
// geometry. Text is measured with the same font metrics the SVG and PNG
// surfaces use, so the layout matches their output.
func ComputeLayout(m *plot.Model, w, h float64) (plot.Layout, error) {
	if err := m.Render(svg.New(w, h), w, h); err != nil {
		return plot.Layout{}, fmt.Errorf("layout: %w", err)
	}
	return m.Layout(), nil
}

// MarshalLayout encodes a layout as indented JSON.
func MarshalLayout(l plot.Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return append(data, '\n'), nil
}

// UnmarshalLayout decodes a layout written by MarshalLayout.
func UnmarshalLayout(data []byte) (plot.Layout, error) {
	var l plot.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return plot.Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	return l, nil
}
