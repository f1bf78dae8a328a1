// Package clipboard copies text to the user's clipboard through the terminal.
package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"

	pferrors "github.com/alexisbeaulieu97/passforge/pkg/errors"
)

// ErrEmpty is returned when there is nothing to copy.
var ErrEmpty = errors.New("nothing to copy")

// Writer puts text on the clipboard.
type Writer interface {
	Write(text string) error
}

// Multiplexer selects how the OSC 52 sequence is wrapped.
type Multiplexer int

const (
	MuxNone Multiplexer = iota
	MuxTmux
	MuxScreen
)

// DetectMultiplexer inspects the environment for tmux or GNU screen.
func DetectMultiplexer(getenv func(string) string) Multiplexer {
	if getenv == nil {
		getenv = os.Getenv
	}
	if getenv("TMUX") != "" {
		return MuxTmux
	}
	if strings.HasPrefix(getenv("TERM"), "screen") {
		return MuxScreen
	}
	return MuxNone
}

// OSC52 writes clipboard sequences to a terminal stream.
type OSC52 struct {
	out io.Writer
	mux Multiplexer
}

// NewOSC52 returns an OSC 52 writer. A nil out defaults to stderr so the
// sequence never mixes with passwords printed on stdout.
func NewOSC52(out io.Writer, mux Multiplexer) *OSC52 {
	if out == nil {
		out = os.Stderr
	}
	return &OSC52{out: out, mux: mux}
}

// Write emits the clipboard sequence for text.
func (o *OSC52) Write(text string) error {
	if text == "" {
		return pferrors.NewClipboardError("osc52", ErrEmpty)
	}

	seq := osc52.New(text)
	switch o.mux {
	case MuxTmux:
		seq = seq.Tmux()
	case MuxScreen:
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(o.out); err != nil {
		return pferrors.NewClipboardError("osc52", err)
	}
	return nil
}

// Recorder keeps the last copied text in memory.
type Recorder struct {
	Last  string
	Count int
	Err   error
}

func (r *Recorder) Write(text string) error {
	if r.Err != nil {
		return r.Err
	}
	if text == "" {
		return pferrors.NewClipboardError("memory", ErrEmpty)
	}
	r.Last = text
	r.Count++
	return nil
}
