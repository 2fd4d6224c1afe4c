package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/plot"
)

// watchInterval is how often the chart file is checked for changes.
const watchInterval = 500 * time.Millisecond

// watchChrome is the number of terminal rows the view itself occupies.
const watchChrome = 16

type tickMsg time.Time

// WatchModel is the bubbletea model behind layout --watch. It recomputes
// the layout of a chart file for the current terminal size.
type WatchModel struct {
	Path string
	Cell geom.Size

	// Size is the viewport in pixels. Zero uses the chart's own size.
	Size    geom.Size
	Layout  plot.Layout
	Title   string
	Err     error
	Renders int

	modTime time.Time
}

// NewWatchModel creates a model for the chart at path.
func NewWatchModel(path string, cell geom.Size) WatchModel {
	if cell.Width <= 0 {
		cell.Width = 8
	}
	if cell.Height <= 0 {
		cell.Height = 16
	}
	return WatchModel{Path: path, Cell: cell}
}

func runWatch(ctx context.Context, path string, cell geom.Size) error {
	m := NewWatchModel(path, cell).relayout()
	if m.Err != nil {
		return m.Err
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func tick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m WatchModel) Init() tea.Cmd {
	return tick()
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m.relayout(), nil
		}
	case tea.WindowSizeMsg:
		rows := max(msg.Height-watchChrome, 1)
		m.Size = geom.Size{
			Width:  float64(msg.Width) * m.Cell.Width,
			Height: float64(rows) * m.Cell.Height,
		}
		return m.relayout(), nil
	case tickMsg:
		if info, err := os.Stat(m.Path); err == nil && !info.ModTime().Equal(m.modTime) {
			m = m.relayout()
		}
		return m, tick()
	}
	return m, nil
}

// relayout reloads the chart and recomputes its layout. Errors are kept for
// display; the previous layout stays visible.
func (m WatchModel) relayout() WatchModel {
	if info, err := os.Stat(m.Path); err == nil {
		m.modTime = info.ModTime()
	}

	c, err := chartfile.Import(m.Path)
	if err != nil {
		m.Err = err
		return m
	}
	model, err := chartfile.Build(c)
	if err != nil {
		m.Err = err
		return m
	}

	w, h := c.Size()
	if !m.Size.IsEmpty() {
		w, h = m.Size.Width, m.Size.Height
	}
	l, err := pipeline.ComputeLayout(model, w, h)
	if err != nil {
		m.Err = err
		return m
	}

	m.Layout, m.Title, m.Err = l, c.Title, nil
	m.Renders++
	return m
}

func (m WatchModel) View() string {
	var b strings.Builder

	title := m.Title
	if title == "" {
		title = m.Path
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s · %.0f x %.0f px · layout #%d",
		m.Path, m.Layout.Width, m.Layout.Height, m.Renders)))
	b.WriteString("\n\n")
	b.WriteString(layoutTable(m.Layout))
	b.WriteString("\n\n")
	if m.Err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.Err.Error())
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render("resize to relayout  r reload  q quit"))
	return b.String()
}
