package demo

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Sink receives finished sequences.
type Sink interface {
	Write(title string, items []string) error
}

// LineSink writes a header line followed by one element per line.
type LineSink struct {
	w      io.Writer
	header *color.Color
}

// NewLineSink returns a LineSink writing to w. Headers are colored unless
// color output is disabled (color.NoColor, set when stdout is not a terminal).
func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{
		w:      w,
		header: color.New(color.FgCyan, color.Bold),
	}
}

func (s *LineSink) Write(title string, items []string) error {
	if _, err := s.header.Fprintf(s.w, "== %s\n", title); err != nil {
		return errors.Wrapf(err, "write %s header", title)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(s.w, item); err != nil {
			return errors.Wrapf(err, "write %s", title)
		}
	}
	return nil
}
