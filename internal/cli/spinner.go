package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a progress line while a step runs. On a writer that is
// not a terminal it stays silent.
type spinner struct {
	w       io.Writer
	message string
	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// startSpinner starts a spinner on stderr. It stops by itself when ctx ends.
func startSpinner(ctx context.Context, message string) *spinner {
	return startSpinnerOn(ctx, os.Stderr, message, isatty.IsTerminal(os.Stderr.Fd()))
}

func startSpinnerOn(ctx context.Context, w io.Writer, message string, interactive bool) *spinner {
	s := &spinner{
		w:       w,
		message: message,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	if !interactive {
		close(s.stopped)
		return s
	}

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			fmt.Fprintf(w, "\r%s %s", styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)]), StyleDim.Render(message))
			select {
			case <-ctx.Done():
				s.clear()
				return
			case <-s.stop:
				s.clear()
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

// Stop ends the animation and clears the line. It is safe to call more
// than once.
func (s *spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.stopped
}

// Fail stops the spinner and prints an error line.
func (s *spinner) Fail(message string) {
	s.Stop()
	printError("%s", message)
}

func (s *spinner) clear() {
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
