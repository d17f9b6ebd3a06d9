package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/x402-marketplace/clarigen/internal/logging"
)

type progressStep struct {
	out     io.Writer
	label   string
	started time.Time
}

func (a *app) startProgress(out io.Writer, label string) *progressStep {
	if !a.progressEnabled() {
		return nil
	}
	fmt.Fprintf(out, "%s... ", label)
	return &progressStep{
		out:     out,
		label:   label,
		started: time.Now(),
	}
}

func (p *progressStep) Done() {
	if p == nil {
		return
	}
	fmt.Fprintf(p.out, "done (%s)\n", formatDuration(time.Since(p.started)))
}

func (p *progressStep) Fail(err error) {
	if p == nil {
		return
	}
	if err != nil {
		fmt.Fprintf(p.out, "failed: %v\n", err)
		return
	}
	fmt.Fprintln(p.out, "failed")
}

func (a *app) progressEnabled() bool {
	if a.isJSON() || a.opts.noProgress {
		return false
	}
	// Per-file debug lines would land inside the open progress line.
	if logging.Logger().GetLevel() <= zerolog.DebugLevel {
		return false
	}
	if _, ok := os.LookupEnv("CLARIGEN_NO_PROGRESS"); ok {
		return false
	}
	if _, ok := os.LookupEnv("NO_PROGRESS"); ok {
		return false
	}
	return true
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	if d < time.Second {
		return d.Round(10 * time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
