// Package dashboard renders live run progress to a text sink.
//
// Rendering is best-effort: it is throttled to one snapshot per interval,
// tolerates a no-op sink, and never lets a formatting problem escape into
// the executor. Run start, phase transitions and run end are rendered with
// the force flag and bypass the throttle.
package dashboard

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/specialistvlad/botflow/internal/model"
)

// DefaultInterval is the minimum spacing between unforced renders.
const DefaultInterval = time.Second

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Renderer writes throttled run snapshots to a sink.
type Renderer struct {
	mu       sync.Mutex
	out      io.Writer
	interval time.Duration
	last     time.Time
}

// New creates a renderer writing to out. A non-positive interval falls back
// to DefaultInterval. A nil sink yields a renderer that drops everything.
func New(out io.Writer, interval time.Duration) *Renderer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if out == nil {
		out = io.Discard
	}
	return &Renderer{out: out, interval: interval}
}

// Render writes a snapshot of state unless one was written less than the
// configured interval ago. force bypasses the throttle. Render never
// panics; any formatting failure is swallowed.
func (r *Renderer) Render(state *model.RunState, force bool) {
	defer func() {
		_ = recover()
	}()

	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if !force && now.Sub(r.last) < r.interval {
		return
	}
	r.last = now

	// Write errors are deliberately ignored; the sink may be closed or
	// non-interactive and progress output must never affect the run.
	_, _ = io.WriteString(r.out, Format(state))
}

// Format renders one run state snapshot as text. It is pure and exported so
// tests can assert on the output directly.
func Format(state *model.RunState) string {
	var b strings.Builder

	header := fmt.Sprintf("flow %s [%s]", state.Flow, state.Phase)
	b.WriteString(titleStyle.Render(header))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  ok=%d fail=%d skip=%d total=%d elapsed=%s",
		state.OK, state.Failed, state.Skipped, state.Total,
		time.Since(state.StartedAt).Round(time.Millisecond))))
	b.WriteString("\n")

	for _, res := range state.Results {
		marker := okStyle.Render("✔")
		if !res.OK {
			marker = failStyle.Render("✘")
		}
		line := fmt.Sprintf("  %s %-20s %8s", marker, res.Name, res.Duration.Round(time.Millisecond))
		if res.Kind == model.KindJump {
			line += dimStyle.Render("  (jump)")
		}
		if res.Err != "" {
			line += "  " + failStyle.Render(res.Err)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if state.Current != "" {
		b.WriteString(currentStyle.Render(fmt.Sprintf("  ▶ %s", state.Current)))
		b.WriteString("\n")
	}
	if state.Stopped {
		b.WriteString(dimStyle.Render("  stopped early"))
		b.WriteString("\n")
	}
	return b.String()
}
