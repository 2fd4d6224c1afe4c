package chartfile

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"

	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/plot/annotations"
	"github.com/matzehuels/chartkit/pkg/plot/axes"
	"github.com/matzehuels/chartkit/pkg/plot/series"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Default output size for charts that do not set one.
const (
	DefaultWidth  = 800
	DefaultHeight = 500
)

// Size returns the chart size with defaults applied.
func (c *Chart) Size() (width, height float64) {
	width, height = c.Width, c.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

// Validate reports the first invalid field of c.
func (c *Chart) Validate() error {
	_, err := Build(c)
	return err
}

// Build constructs a plot model from c. Errors carry the INVALID_CHART code
// and name the offending field.
func Build(c *Chart) (*plot.Model, error) {
	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidChart, "empty chart")
	}
	b := &builder{keys: map[string]bool{}}
	m := b.model(c)
	if b.err != nil {
		return nil, b.err
	}
	return m, nil
}

// builder keeps the first error so that construction code reads linearly.
type builder struct {
	err  error
	keys map[string]bool
}

func (b *builder) fail(field, format string, args ...any) {
	if b.err == nil {
		b.err = errors.Field(field, format, args...)
	}
}

func (b *builder) check(field string, err error) {
	if err != nil {
		b.fail(field, "%s", errors.UserMessage(err))
	}
}

func (b *builder) color(field, s string) render.Color {
	c, err := render.ParseColor(s)
	b.check(field, err)
	return c
}

func (b *builder) text(field, s string) string {
	if err := errors.ValidateText(field, s); err != nil && b.err == nil {
		b.err = err
	}
	return s
}

func (b *builder) model(c *Chart) *plot.Model {
	m := plot.NewModel()
	m.Title = b.text("title", c.Title)
	m.Subtitle = b.text("subtitle", c.Subtitle)
	if c.Width < 0 || c.Height < 0 {
		b.fail("width", "size must not be negative")
	}

	if c.PlotType != "" {
		t, err := plot.ParsePlotType(c.PlotType)
		b.check("plot_type", err)
		m.PlotType = t
	}
	if c.Padding != nil {
		m.Padding = c.Padding.thickness()
	}
	if c.Margins != nil {
		m.PlotMargins = c.Margins.thickness()
	}
	if c.AutoMargins != nil {
		m.AutoAdjustPlotMargins = *c.AutoMargins
	}
	if c.Font != "" {
		m.DefaultFont = c.Font
		m.TitleFont = c.Font
	}
	if c.FontSize > 0 {
		m.DefaultFontSize = c.FontSize
	}
	if c.TextColor != "" {
		m.TextColor = b.color("text_color", c.TextColor)
	}
	m.Background = b.color("background", c.Background)
	m.PlotAreaBackground = b.color("plot_background", c.PlotBackground)
	if c.Border != "" {
		m.PlotAreaBorderColor = b.color("border", c.Border)
	}
	if c.Legend != nil {
		b.legend(&m.Legend, c.Legend)
	}

	for i, a := range c.Axes {
		if ax := b.axis(fmt.Sprintf("axes[%d]", i), a); ax != nil {
			m.Axes = append(m.Axes, ax)
		}
	}
	if len(c.Axes) == 0 && (len(c.Series) > 0 || len(c.Annotations) > 0) {
		m.Axes = defaultAxes(m.PlotType)
		for _, a := range m.Axes {
			b.keys[a.Key()] = true
		}
	}

	for i, s := range c.Series {
		if ser := b.series(fmt.Sprintf("series[%d]", i), s); ser != nil {
			m.Series = append(m.Series, ser)
		}
	}
	for i, a := range c.Annotations {
		if ann := b.annotation(fmt.Sprintf("annotations[%d]", i), a); ann != nil {
			m.Annotations = append(m.Annotations, ann)
		}
	}

	var palette []render.Color
	for i, p := range c.Palette {
		palette = append(palette, b.color(fmt.Sprintf("palette[%d]", i), p))
	}
	if len(palette) > 0 || len(m.Series) > len(render.DefaultPalette()) {
		m.Palette = render.Palette(palette, max(len(palette), len(m.Series)))
	}
	return m
}

func (x *Box) thickness() geom.Thickness {
	return geom.Thickness{Left: x.Left, Top: x.Top, Right: x.Right, Bottom: x.Bottom}
}

// defaultAxes returns the axes added to charts that declare none.
func defaultAxes(t plot.PlotType) []plot.Axis {
	if t == plot.Polar {
		angle, mag := axes.NewAngle(), axes.NewMagnitude()
		angle.Name, mag.Name = "angle", "magnitude"
		return []plot.Axis{angle, mag}
	}
	x, y := axes.NewLinear(plot.PositionBottom), axes.NewLinear(plot.PositionLeft)
	x.Name, y.Name = "x", "y"
	return []plot.Axis{x, y}
}

func (b *builder) legend(lg *plot.Legend, c *Legend) {
	if c.Visible != nil {
		lg.Visible = *c.Visible
	}
	lg.Title = b.text("legend.title", c.Title)
	if c.Placement != "" {
		p, err := plot.ParseLegendPlacement(c.Placement)
		b.check("legend.placement", err)
		lg.Placement = p
	}
	if c.Position != "" {
		p, err := plot.ParseLegendPosition(c.Position)
		b.check("legend.position", err)
		lg.Position = p
	}
	if c.Orientation != "" {
		o, err := plot.ParseLegendOrientation(c.Orientation)
		b.check("legend.orientation", err)
		lg.Orientation = o
	}
	if c.FontSize > 0 {
		lg.FontSize = c.FontSize
	}
	lg.Background = b.color("legend.background", c.Background)
	lg.Border = b.color("legend.border", c.Border)
}

var tickStyles = map[string]axes.TickStyle{
	"outside": axes.TickOutside,
	"inside":  axes.TickInside,
	"cross":   axes.TickCross,
	"none":    axes.TickNone,
}

func (b *builder) axis(field string, a Axis) plot.Axis {
	pos := plot.PositionNone
	if a.Position != "" {
		p, err := plot.ParseAxisPosition(a.Position)
		b.check(field+".position", err)
		pos = p
	}

	var (
		out  plot.Axis
		base *axes.Base
	)
	kind := strings.ToLower(a.Kind)
	if kind == "" {
		kind = "linear"
	}
	switch kind {
	case "linear":
		ax := axes.NewLinear(pos)
		out, base = ax, &ax.Base
	case "log", "logarithmic":
		ax := axes.NewLogarithmic(pos)
		ax.PowerLabels = a.PowerLabels
		out, base = ax, &ax.Base
	case "category":
		ax := axes.NewCategory(pos, a.Categories...)
		out, base = ax, &ax.Base
	case "angle":
		ax := axes.NewAngle()
		ax.StartAngle, ax.EndAngle = a.StartAngle, a.StartAngle+360
		out, base = ax, &ax.Base
	case "magnitude":
		ax := axes.NewMagnitude()
		out, base = ax, &ax.Base
	default:
		b.fail(field+".kind", "unknown axis kind %q", a.Kind)
		return nil
	}
	polar := kind == "angle" || kind == "magnitude"
	if polar && pos != plot.PositionNone {
		b.fail(field+".position", "%s axes have no position", kind)
	}
	if !polar && pos == plot.PositionNone {
		b.fail(field+".position", "position is required for %s axes", kind)
	}

	if a.Key != "" {
		if b.keys[a.Key] {
			b.fail(field+".key", "duplicate axis key %q", a.Key)
		}
		b.keys[a.Key] = true
	}
	if a.Tier < 0 {
		b.fail(field+".tier", "tier must not be negative")
	}

	base.Name = a.Key
	base.Tier = a.Tier
	base.Hidden = a.Hidden
	base.Title = b.text(field+".title", a.Title)
	base.Unit = b.text(field+".unit", a.Unit)
	if a.Layer != "" {
		l, err := plot.ParseAxisLayer(a.Layer)
		b.check(field+".layer", err)
		base.Z = l
	}
	if a.Min != nil {
		base.Minimum = *a.Min
	}
	if a.Max != nil {
		base.Maximum = *a.Max
	}
	if math.IsInf(base.Minimum, 0) {
		b.fail(field+".min", "min must be finite")
	}
	if math.IsInf(base.Maximum, 0) {
		b.fail(field+".max", "max must be finite")
	}
	if kind == "log" || kind == "logarithmic" {
		if base.Minimum <= 0 {
			b.fail(field+".min", "log axis min must be positive, got %g", base.Minimum)
		}
		if base.Maximum <= 0 {
			b.fail(field+".max", "log axis max must be positive, got %g", base.Maximum)
		}
	}
	if !math.IsNaN(base.Minimum) && !math.IsNaN(base.Maximum) && base.Minimum >= base.Maximum {
		b.fail(field+".max", "max must be greater than min")
	}
	if a.Start != nil {
		base.StartPosition = *a.Start
	}
	if a.End != nil {
		base.EndPosition = *a.End
	}
	if base.StartPosition < 0 || base.EndPosition > 1 || base.StartPosition >= base.EndPosition {
		b.fail(field+".start", "start and end must satisfy 0 <= start < end <= 1")
	}

	base.MajorStep = a.MajorStep
	base.MinorStep = a.MinorStep
	base.ShowMinorTicks = base.ShowMinorTicks || a.MinorTicks
	base.MajorGridlines = base.MajorGridlines || a.MajorGridlines
	base.MinorGridlines = a.MinorGridlines
	if a.TickStyle != "" {
		ts, ok := tickStyles[strings.ToLower(a.TickStyle)]
		if !ok {
			b.fail(field+".tick_style", "unknown tick style %q", a.TickStyle)
		}
		base.TickStyle = ts
	}
	base.LineColor = b.color(field+".line", a.Line)
	if a.Locale != "" {
		tag, err := language.Parse(a.Locale)
		b.check(field+".locale", err)
		base.Locale = tag
	}
	return out
}

func (b *builder) axisRef(field, key string) {
	if key != "" && !b.keys[key] {
		b.fail(field, "unknown axis %q", key)
	}
}

func (b *builder) series(field string, s Series) plot.Series {
	b.axisRef(field+".x_axis", s.XAxis)
	b.axisRef(field+".y_axis", s.YAxis)
	if len(s.Points) > 0 && len(s.Values) > 0 {
		b.fail(field+".values", "points and values are mutually exclusive")
	}

	xy := series.XY{
		Title:           b.text(field+".title", s.Title),
		Hidden:          s.Hidden,
		XAxisKey:        s.XAxis,
		YAxisKey:        s.YAxis,
		Color:           b.color(field+".color", s.Color),
		BackgroundColor: b.color(field+".background", s.Background),
	}
	for _, p := range s.Points {
		xy.Add(p[0], p[1])
	}
	for i, v := range s.Values {
		xy.Add(float64(i), v)
	}

	marker, err := series.ParseMarkerType(s.Marker)
	b.check(field+".marker", err)

	switch strings.ToLower(s.Kind) {
	case "", "line":
		l := series.NewLine("")
		l.XY = xy
		l.Dash = s.Dash
		l.Marker = marker
		if s.Thickness > 0 {
			l.Thickness = s.Thickness
		}
		if s.MarkerSize > 0 {
			l.MarkerSize = s.MarkerSize
		}
		return l
	case "scatter":
		sc := series.NewScatter("")
		sc.XY = xy
		if marker != series.MarkerNone {
			sc.Marker = marker
		}
		if s.MarkerSize > 0 {
			sc.MarkerSize = s.MarkerSize
		}
		return sc
	case "area":
		a := series.NewArea("")
		a.XY = xy
		a.Baseline = s.Baseline
		a.Fill = b.color(field+".fill", s.Fill)
		if s.Thickness > 0 {
			a.Thickness = s.Thickness
		}
		return a
	default:
		b.fail(field+".kind", "unknown series kind %q", s.Kind)
		return nil
	}
}

func optional(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func (b *builder) annotation(field string, a Annotation) plot.Annotation {
	b.axisRef(field+".x_axis", a.XAxis)
	b.axisRef(field+".y_axis", a.YAxis)

	base := annotations.Base{
		XAxisKey:  a.XAxis,
		YAxisKey:  a.YAxis,
		Text:      b.text(field+".text", a.Text),
		TextColor: b.color(field+".text_color", a.TextColor),
	}
	if a.Layer != "" {
		l, err := plot.ParseAnnotationLayer(a.Layer)
		b.check(field+".layer", err)
		base.Z = l
	}

	switch strings.ToLower(a.Kind) {
	case "line":
		var l *annotations.Line
		switch strings.ToLower(a.Orientation) {
		case "", "horizontal":
			l = annotations.NewHorizontalLine(a.Value, "")
		case "vertical":
			l = annotations.NewVerticalLine(a.Value, "")
		default:
			b.fail(field+".orientation", "unknown orientation %q", a.Orientation)
			return nil
		}
		l.Base = base
		if a.Color != "" {
			l.Color = b.color(field+".color", a.Color)
		}
		return l
	case "rect", "rectangle":
		r := annotations.NewRectangle("")
		r.Base = base
		r.MinX, r.MaxX = optional(a.MinX), optional(a.MaxX)
		r.MinY, r.MaxY = optional(a.MinY), optional(a.MaxY)
		if a.Fill != "" {
			r.Fill = b.color(field+".fill", a.Fill)
		}
		r.Stroke = b.color(field+".color", a.Color)
		if r.Stroke.IsVisible() {
			r.StrokeThickness = 1
		}
		return r
	case "text":
		t := annotations.NewText(a.X, a.Y, "")
		t.Base = base
		t.Rotation = a.Rotation
		if a.Color != "" && a.TextColor == "" {
			t.TextColor = b.color(field+".color", a.Color)
		}
		return t
	default:
		b.fail(field+".kind", "unknown annotation kind %q", a.Kind)
		return nil
	}
}
