// Package linear renders a plan record as a line-per-step report.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/ui/output"
	"go.trai.ch/decider/internal/ui/style"
)

// Renderer writes plan records to a terminal or a plain stream.
type Renderer struct {
	output *termenv.Output
	// Verbose also lists kept packages and the reasons behind every step.
	Verbose bool
}

// NewRenderer creates a Renderer writing to w, or to stdout when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{output: output.New(w)}
}

type totals struct {
	install, remove, broken, suggested, failed int
}

// Render writes rec. cached marks a record served from the plan store.
func (r *Renderer) Render(rec *domain.PlanRecord, cached bool) error {
	var b strings.Builder

	header := "Plan for " + strings.Join(rec.Targets, ", ")
	if cached {
		header += " (cached)"
	}
	b.WriteString(r.styled(header, style.Accent, true) + "\n")

	var t totals
	for i := range rec.Steps {
		r.step(&b, &rec.Steps[i], &t)
	}

	if t == (totals{}) {
		b.WriteString("Nothing to do.\n")
	}
	fmt.Fprintf(&b, "Total: %d to install, %d to remove, %d broken, %d suggested, %d unresolvable\n",
		t.install, t.remove, t.broken, t.suggested, t.failed)

	_, err := r.output.WriteString(b.String())
	return err
}

func (r *Renderer) step(b *strings.Builder, s *domain.PlanStep, t *totals) {
	var line string
	var color lipgloss.Color

	switch {
	case s.Decision == "changes_to_make" && s.Taken:
		t.install++
		line, color = "["+changeMarker(s.ChangeType)+"] "+s.Package, style.Green
		if s.ChangedChoices != "" {
			line += " {" + s.ChangedChoices + "}"
		}
		if strings.HasSuffix(s.Resolvent, domain.DestinationCreateBinaries.String()) {
			line += " (binary)"
		}
		if len(s.Replacing) > 0 {
			line += " replacing " + strings.Join(s.Replacing, ", ")
		}
	case s.Decision == "changes_to_make":
		t.suggested++
		line, color = "[?] "+s.Package+" (suggestion)", style.Muted
	case s.Decision == "remove" && s.Taken:
		t.remove++
		line, color = "["+style.Minus+"] "+strings.Join(s.Replacing, ", "), style.Red
	case s.Decision == "remove":
		t.suggested++
		line, color = "[?] remove "+strings.Join(s.Replacing, ", ")+" (suggestion)", style.Muted
	case s.Decision == "break" && s.Taken:
		t.broken++
		line, color = "["+style.Warning+"] "+s.Package+" (broken)", style.Yellow
	case s.Decision == "unable_to_make" && s.Taken:
		t.failed++
		line, color = "["+style.Cross+"] "+s.Resolvent, style.Red
	default:
		if !r.Verbose {
			return
		}
		what := s.Package
		if what == "" {
			what = s.Resolvent
		}
		line, color = "[=] "+what, style.Muted
	}

	b.WriteString(r.styled(line, color, false) + "\n")
	for _, u := range s.Unsuitable {
		b.WriteString("      " + u + "\n")
	}
	if len(s.Confirmations) > 0 {
		b.WriteString(r.styled("      needs confirmation: "+strings.Join(s.Confirmations, ", "), style.Yellow, false) + "\n")
	}
	if r.Verbose && len(s.Reasons) > 0 {
		b.WriteString(r.styled("      because "+strings.Join(s.Reasons, "; "), style.Muted, false) + "\n")
	}
}

func changeMarker(changeType string) string {
	switch changeType {
	case domain.ChangeTypeNew.String():
		return "N"
	case domain.ChangeTypeUpgrade.String():
		return "U"
	case domain.ChangeTypeDowngrade.String():
		return "D"
	case domain.ChangeTypeReinstall.String():
		return "R"
	case domain.ChangeTypeSlotNew.String():
		return "S"
	case domain.ChangeTypeAddToSlot.String():
		return "A"
	default:
		return style.Plus
	}
}

func (r *Renderer) styled(s string, color lipgloss.Color, bold bool) string {
	st := r.output.String(s).Foreground(termenv.RGBColor(string(color)))
	if bold {
		st = st.Bold()
	}
	return st.String()
}
