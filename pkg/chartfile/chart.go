package chartfile

// Chart is a declarative chart description.
type Chart struct {
	Title    string  `json:"title,omitempty" toml:"title,omitempty"`
	Subtitle string  `json:"subtitle,omitempty" toml:"subtitle,omitempty"`
	Width    float64 `json:"width,omitempty" toml:"width,omitempty"`
	Height   float64 `json:"height,omitempty" toml:"height,omitempty"`
	PlotType string  `json:"plot_type,omitempty" toml:"plot_type,omitempty"`

	Padding     *Box  `json:"padding,omitempty" toml:"padding,omitempty"`
	Margins     *Box  `json:"margins,omitempty" toml:"margins,omitempty"`
	AutoMargins *bool `json:"auto_margins,omitempty" toml:"auto_margins,omitempty"`

	Font           string   `json:"font,omitempty" toml:"font,omitempty"`
	FontSize       float64  `json:"font_size,omitempty" toml:"font_size,omitempty"`
	TextColor      string   `json:"text_color,omitempty" toml:"text_color,omitempty"`
	Background     string   `json:"background,omitempty" toml:"background,omitempty"`
	PlotBackground string   `json:"plot_background,omitempty" toml:"plot_background,omitempty"`
	Border         string   `json:"border,omitempty" toml:"border,omitempty"`
	Palette        []string `json:"palette,omitempty" toml:"palette,omitempty"`

	Legend      *Legend      `json:"legend,omitempty" toml:"legend,omitempty"`
	Axes        []Axis       `json:"axes,omitempty" toml:"axes,omitempty"`
	Series      []Series     `json:"series,omitempty" toml:"series,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty" toml:"annotations,omitempty"`
}

// Box is a thickness around a rectangle.
type Box struct {
	Left   float64 `json:"left" toml:"left"`
	Top    float64 `json:"top" toml:"top"`
	Right  float64 `json:"right" toml:"right"`
	Bottom float64 `json:"bottom" toml:"bottom"`
}

// Legend configures the legend box.
type Legend struct {
	Visible     *bool   `json:"visible,omitempty" toml:"visible,omitempty"`
	Title       string  `json:"title,omitempty" toml:"title,omitempty"`
	Placement   string  `json:"placement,omitempty" toml:"placement,omitempty"`
	Position    string  `json:"position,omitempty" toml:"position,omitempty"`
	Orientation string  `json:"orientation,omitempty" toml:"orientation,omitempty"`
	FontSize    float64 `json:"font_size,omitempty" toml:"font_size,omitempty"`
	Background  string  `json:"background,omitempty" toml:"background,omitempty"`
	Border      string  `json:"border,omitempty" toml:"border,omitempty"`
}

// Axis describes one axis.
type Axis struct {
	Key      string `json:"key,omitempty" toml:"key,omitempty"`
	Kind     string `json:"kind,omitempty" toml:"kind,omitempty"`
	Position string `json:"position,omitempty" toml:"position,omitempty"`
	Tier     int    `json:"tier,omitempty" toml:"tier,omitempty"`
	Layer    string `json:"layer,omitempty" toml:"layer,omitempty"`
	Hidden   bool   `json:"hidden,omitempty" toml:"hidden,omitempty"`

	Title string `json:"title,omitempty" toml:"title,omitempty"`
	Unit  string `json:"unit,omitempty" toml:"unit,omitempty"`

	Min   *float64 `json:"min,omitempty" toml:"min,omitempty"`
	Max   *float64 `json:"max,omitempty" toml:"max,omitempty"`
	Start *float64 `json:"start,omitempty" toml:"start,omitempty"`
	End   *float64 `json:"end,omitempty" toml:"end,omitempty"`

	MajorStep      float64 `json:"major_step,omitempty" toml:"major_step,omitempty"`
	MinorStep      float64 `json:"minor_step,omitempty" toml:"minor_step,omitempty"`
	MinorTicks     bool    `json:"minor_ticks,omitempty" toml:"minor_ticks,omitempty"`
	TickStyle      string  `json:"tick_style,omitempty" toml:"tick_style,omitempty"`
	MajorGridlines bool    `json:"major_gridlines,omitempty" toml:"major_gridlines,omitempty"`
	MinorGridlines bool    `json:"minor_gridlines,omitempty" toml:"minor_gridlines,omitempty"`
	Line           string  `json:"line,omitempty" toml:"line,omitempty"`

	Categories  []string `json:"categories,omitempty" toml:"categories,omitempty"`
	PowerLabels bool     `json:"power_labels,omitempty" toml:"power_labels,omitempty"`
	Locale      string   `json:"locale,omitempty" toml:"locale,omitempty"`
	StartAngle  float64  `json:"start_angle,omitempty" toml:"start_angle,omitempty"`
}

// Series describes one data series.
type Series struct {
	Kind   string `json:"kind,omitempty" toml:"kind,omitempty"`
	Title  string `json:"title,omitempty" toml:"title,omitempty"`
	Hidden bool   `json:"hidden,omitempty" toml:"hidden,omitempty"`
	XAxis  string `json:"x_axis,omitempty" toml:"x_axis,omitempty"`
	YAxis  string `json:"y_axis,omitempty" toml:"y_axis,omitempty"`

	// Points are (x, y) pairs. Values are y values at x = 0, 1, 2, ...,
	// which suits category axes.
	Points [][2]float64 `json:"points,omitempty" toml:"points,omitempty"`
	Values []float64    `json:"values,omitempty" toml:"values,omitempty"`

	Color      string    `json:"color,omitempty" toml:"color,omitempty"`
	Background string    `json:"background,omitempty" toml:"background,omitempty"`
	Thickness  float64   `json:"thickness,omitempty" toml:"thickness,omitempty"`
	Dash       []float64 `json:"dash,omitempty" toml:"dash,omitempty"`
	Marker     string    `json:"marker,omitempty" toml:"marker,omitempty"`
	MarkerSize float64   `json:"marker_size,omitempty" toml:"marker_size,omitempty"`
	Fill       string    `json:"fill,omitempty" toml:"fill,omitempty"`
	Baseline   float64   `json:"baseline,omitempty" toml:"baseline,omitempty"`
}

// Annotation describes a reference line, a shaded rectangle or a text.
type Annotation struct {
	Kind  string `json:"kind,omitempty" toml:"kind,omitempty"`
	Layer string `json:"layer,omitempty" toml:"layer,omitempty"`
	XAxis string `json:"x_axis,omitempty" toml:"x_axis,omitempty"`
	YAxis string `json:"y_axis,omitempty" toml:"y_axis,omitempty"`
	Text  string `json:"text,omitempty" toml:"text,omitempty"`

	// line
	Orientation string  `json:"orientation,omitempty" toml:"orientation,omitempty"`
	Value       float64 `json:"value,omitempty" toml:"value,omitempty"`

	// rect
	MinX *float64 `json:"min_x,omitempty" toml:"min_x,omitempty"`
	MaxX *float64 `json:"max_x,omitempty" toml:"max_x,omitempty"`
	MinY *float64 `json:"min_y,omitempty" toml:"min_y,omitempty"`
	MaxY *float64 `json:"max_y,omitempty" toml:"max_y,omitempty"`

	// text
	X        float64 `json:"x,omitempty" toml:"x,omitempty"`
	Y        float64 `json:"y,omitempty" toml:"y,omitempty"`
	Rotation float64 `json:"rotation,omitempty" toml:"rotation,omitempty"`

	Color     string `json:"color,omitempty" toml:"color,omitempty"`
	Fill      string `json:"fill,omitempty" toml:"fill,omitempty"`
	TextColor string `json:"text_color,omitempty" toml:"text_color,omitempty"`
}
