// Package pretty renders interpretation records as a short colourised
// summary for terminals.
package pretty

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/crimson-sun/petsignal/internal/model"
	"github.com/crimson-sun/petsignal/internal/output"
)

var emotionAttrs = map[string][]color.Attribute{
	model.EmotionAggressive: {color.FgRed, color.Bold},
	model.EmotionFearful:    {color.FgMagenta, color.Bold},
	model.EmotionAnxious:    {color.FgYellow, color.Bold},
	model.EmotionPlayful:    {color.FgGreen, color.Bold},
	model.EmotionHappy:      {color.FgGreen},
	model.EmotionCurious:    {color.FgCyan},
	model.EmotionDemanding:  {color.FgBlue},
}

// Output writes one human-readable block per record.
type Output struct {
	mu        sync.Mutex
	w         io.Writer
	verbosity output.Verbosity
	colorize  bool
	dim       *color.Color
}

// New creates a pretty Output writing to stdout. Colour follows the
// terminal detection of github.com/fatih/color.
func New(verbosity output.Verbosity) *Output {
	return NewWriter(os.Stdout, verbosity, !color.NoColor)
}

// NewWriter creates a pretty Output writing to w.
func NewWriter(w io.Writer, verbosity output.Verbosity, colorize bool) *Output {
	return &Output{
		w:         w,
		verbosity: verbosity,
		colorize:  colorize,
		dim:       paint(colorize, color.Faint),
	}
}

func (o *Output) Write(_ context.Context, rec output.Record) error {
	rec = output.FormatRecord(rec, o.verbosity)
	res := rec.Result

	var b strings.Builder
	head := paint(o.colorize, attrsFor(res.Emotion)...)
	fmt.Fprintf(&b, "%s %d%% %s", head.Sprintf("[%s]", res.Emotion), res.Confidence, o.dim.Sprint(res.Rule))
	if rec.Count > 1 {
		fmt.Fprintf(&b, " x%d", rec.Count)
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "  %q\n", res.Translation)
	if res.Behavior != "" {
		fmt.Fprintf(&b, "  %s\n", o.dim.Sprint(res.Behavior))
	}
	fmt.Fprintf(&b, "  context: %s\n", res.Context)
	for _, s := range rec.Signals {
		fmt.Fprintf(&b, "  - #%d %s (score %d) %s\n", s.ID, s.Label, s.Score, strings.Join(s.Hits, " "))
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := io.WriteString(o.w, b.String()); err != nil {
		return fmt.Errorf("pretty output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}

func attrsFor(emotion string) []color.Attribute {
	if attrs, ok := emotionAttrs[emotion]; ok {
		return attrs
	}
	return []color.Attribute{color.Bold}
}

func paint(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
