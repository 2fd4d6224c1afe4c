package plot

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Layout constants.
const (
	// AxisTierDistance is the gap between stacked axis tiers.
	AxisTierDistance = 4.0
	// MaxLayoutIterations caps the margin fixed-point loop.
	MaxLayoutIterations = 10
)

// Model is a chart description plus the geometry of its last render.
//
// Fields are plain configuration and may be set freely between renders.
// Setting them while a render is in progress is a data race.
type Model struct {
	Title            string
	Subtitle         string
	TitleFont        string
	TitleFontSize    float64
	TitleFontWeight  render.FontWeight
	SubtitleFontSize float64
	TitleColor       render.Color // falls back to TextColor
	SubtitleColor    render.Color // falls back to TextColor
	TitlePadding     float64

	DefaultFont     string
	DefaultFontSize float64
	TextColor       render.Color

	PlotType PlotType

	// Padding is the space between the viewport edge and everything else.
	Padding geom.Thickness
	// PlotMargins is the minimum space reserved for axes around the plot
	// area. With AutoAdjustPlotMargins the margins grow to fit the axes.
	PlotMargins           geom.Thickness
	AutoAdjustPlotMargins bool

	Background              render.Color
	PlotAreaBackground      render.Color
	PlotAreaBorderColor     render.Color
	PlotAreaBorderThickness float64

	Legend Legend

	// Palette supplies automatic series colors. Empty uses the default
	// palette.
	Palette []render.Color

	Axes        []Axis
	Series      []Series
	Annotations []Annotation

	Logger *log.Logger

	mu     sync.Mutex
	layout Layout
}

// NewModel returns a model with the default styling.
func NewModel() *Model {
	return &Model{
		TitleFont:               render.DefaultFont,
		TitleFontSize:           18,
		TitleFontWeight:         render.Bold,
		SubtitleFontSize:        14,
		TitlePadding:            6,
		DefaultFont:             render.DefaultFont,
		DefaultFontSize:         12,
		TextColor:               render.RGB(0x20, 0x20, 0x20),
		Padding:                 geom.Uniform(8),
		AutoAdjustPlotMargins:   true,
		PlotAreaBorderColor:     render.Black,
		PlotAreaBorderThickness: 1,
		Legend:                  DefaultLegend(),
	}
}

// Layout is the geometry computed by a render.
type Layout struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	ActualMargins   geom.Thickness `json:"actual_margins"`
	PlotArea        geom.Rect      `json:"plot_area"`
	PlotAndAxisArea geom.Rect      `json:"plot_and_axis_area"`
	TitleArea       geom.Rect      `json:"title_area"`
	LegendArea      geom.Rect      `json:"legend_area"`

	// Iterations is the number of plot area computations the margin loop
	// needed. Converged is false when the loop hit MaxLayoutIterations.
	Iterations int  `json:"iterations"`
	Converged  bool `json:"converged"`
}

// Layout returns the geometry of the last successful render. It blocks while
// a render is in progress.
func (m *Model) Layout() Layout {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.layout
}

func (m *Model) logger() *log.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

func (m *Model) font() string {
	if m.DefaultFont == "" {
		return render.DefaultFont
	}
	return m.DefaultFont
}

func (m *Model) fontSize() float64 {
	if m.DefaultFontSize <= 0 {
		return 12
	}
	return m.DefaultFontSize
}
