// Package rendertest provides a recording [render.Context] for tests.
package rendertest

import (
	"sync"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Kind identifies a recorded call.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindLine      Kind = "line"
	KindPolygon   Kind = "polygon"
	KindEllipse   Kind = "ellipse"
	KindText      Kind = "text"
	KindClip      Kind = "clip"
	KindResetClip Kind = "reset-clip"
	KindCleanUp   Kind = "cleanup"
)

// Call is one recorded drawing call.
type Call struct {
	Kind      Kind
	Tag       string // category set with Recorder.Tag at the time of the call
	Points    []geom.Point
	Rect      geom.Rect
	Text      string
	Fill      render.Color
	Stroke    render.Color
	Thickness float64
	FontSize  float64
	Rotation  float64
}

// Recorder records drawing calls. Text is measured with a fixed-advance
// metric: every byte is CharWidth x size wide and lines are LineHeight x
// size tall, which makes layout arithmetic in tests exact.
//
// A Recorder is safe for concurrent use; concurrent callers see a single
// interleaved call log, which is what concurrency tests inspect.
type Recorder struct {
	CharWidth  float64
	LineHeight float64

	mu       sync.Mutex
	tag      string
	calls    []Call
	measures int
}

// New returns a recorder with CharWidth 0.5 and LineHeight 1.
func New() *Recorder {
	return &Recorder{CharWidth: 0.5, LineHeight: 1}
}

// Tag sets the category attached to subsequent calls.
func (r *Recorder) Tag(tag string) {
	r.mu.Lock()
	r.tag = tag
	r.mu.Unlock()
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Kinds returns the recorded call kinds in order.
func (r *Recorder) Kinds() []Kind {
	calls := r.Calls()
	out := make([]Kind, len(calls))
	for i, c := range calls {
		out[i] = c.Kind
	}
	return out
}

// Texts returns the text of every recorded DrawText call in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls() {
		if c.Kind == KindText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Count returns the number of recorded calls of kind k.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, c := range r.Calls() {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Measures returns how many times MeasureText was called.
func (r *Recorder) Measures() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.measures
}

// Reset clears the call log.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.measures = 0
	r.mu.Unlock()
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	c.Tag = r.tag
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

func (r *Recorder) MeasureText(text, font string, size float64, weight render.FontWeight) geom.Size {
	r.mu.Lock()
	r.measures++
	r.mu.Unlock()
	if text == "" {
		return geom.Size{}
	}
	return geom.Size{Width: float64(len(text)) * r.CharWidth * size, Height: r.LineHeight * size}
}

func (r *Recorder) DrawRectangle(rect geom.Rect, fill, stroke render.Color, thickness float64) {
	r.record(Call{Kind: KindRectangle, Rect: rect, Fill: fill, Stroke: stroke, Thickness: thickness})
}

func (r *Recorder) DrawLine(points []geom.Point, stroke render.Color, thickness float64, dash []float64) {
	r.record(Call{Kind: KindLine, Points: clonePoints(points), Stroke: stroke, Thickness: thickness})
}

func (r *Recorder) DrawPolygon(points []geom.Point, fill, stroke render.Color, thickness float64) {
	r.record(Call{Kind: KindPolygon, Points: clonePoints(points), Fill: fill, Stroke: stroke, Thickness: thickness})
}

func (r *Recorder) DrawEllipse(rect geom.Rect, fill, stroke render.Color, thickness float64) {
	r.record(Call{Kind: KindEllipse, Rect: rect, Fill: fill, Stroke: stroke, Thickness: thickness})
}

func (r *Recorder) DrawText(p geom.Point, text string, c render.Color, font string, size float64, weight render.FontWeight,
	rotation float64, ha render.HorizontalAlignment, va render.VerticalAlignment) {
	r.record(Call{Kind: KindText, Points: []geom.Point{p}, Text: text, Fill: c, FontSize: size, Rotation: rotation})
}

func (r *Recorder) SetClip(rect geom.Rect) { r.record(Call{Kind: KindClip, Rect: rect}) }

func (r *Recorder) ResetClip() { r.record(Call{Kind: KindResetClip}) }

func (r *Recorder) CleanUp() { r.record(Call{Kind: KindCleanUp}) }

func clonePoints(p []geom.Point) []geom.Point {
	out := make([]geom.Point, len(p))
	copy(out, p)
	return out
}
