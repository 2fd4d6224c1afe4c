package cli

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/chartkit/pkg/geom"
)

func TestWatchModelRelayoutOnResize(t *testing.T) {
	path := writeChart(t)
	m := NewWatchModel(path, geom.Size{Width: 8, Height: 16}).relayout()
	if m.Err != nil {
		t.Fatalf("initial layout: %v", m.Err)
	}
	if m.Layout.Width != 400 || m.Layout.Height != 300 {
		t.Errorf("initial size = %vx%v, want the chart's 400x300", m.Layout.Width, m.Layout.Height)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: watchChrome + 20})
	m = next.(WatchModel)
	if m.Layout.Width != 800 || m.Layout.Height != 320 {
		t.Errorf("resized layout = %vx%v, want 800x320", m.Layout.Width, m.Layout.Height)
	}
	if m.Renders != 2 {
		t.Errorf("renders = %d, want 2", m.Renders)
	}
	if !strings.Contains(m.View(), "Throughput") {
		t.Error("view should show the chart title")
	}
}

func TestWatchModelKeepsLayoutOnError(t *testing.T) {
	path := writeChart(t)
	m := NewWatchModel(path, geom.Size{}).relayout()
	good := m.Layout

	if err := os.WriteFile(path, []byte("[[series]]\nkind = \"pie\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(WatchModel)
	if m.Err == nil {
		t.Fatal("invalid chart should set Err")
	}
	if m.Layout != good {
		t.Error("previous layout should stay visible")
	}
	if !strings.Contains(m.View(), iconError) {
		t.Error("view should show the error")
	}
}

func TestWatchModelQuit(t *testing.T) {
	m := NewWatchModel("unused", geom.Size{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
