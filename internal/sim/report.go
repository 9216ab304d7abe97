package sim

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	box   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		label: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)).Width(20),
		value: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)),
		good:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		bad:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		box:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Render formats the report for a terminal.
func (r Report) Render() string {
	st := newStyles()

	outcome := st.good.Render(r.Winner.String() + " wins")
	if !r.Completed {
		outcome = st.bad.Render(fmt.Sprintf("stopped after %d ticks", r.Ticks))
	}
	envelope := st.good.Render("0")
	if r.EnvelopeViolations > 0 {
		envelope = st.bad.Render(fmt.Sprint(r.EnvelopeViolations))
	}

	rows := []struct {
		label string
		value string
	}{
		{"result", outcome},
		{"score", st.value.Render(fmt.Sprintf("%d - %d", r.LeftScore, r.RightScore))},
		{"ticks", st.value.Render(fmt.Sprint(r.Ticks))},
		{"paddle hits", st.value.Render(fmt.Sprint(r.PaddleHits))},
		{"wall bounces", st.value.Render(fmt.Sprint(r.WallBounces))},
		{"longest rally", st.value.Render(fmt.Sprint(r.LongestRally))},
		{"peak speed", st.value.Render(fmt.Sprintf("%d px/tick", r.PeakSpeed))},
		{"envelope misses", envelope},
	}

	lines := []string{st.title.Render("remotepong simulation"), ""}
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, st.label.Render(row.label), row.value))
	}
	return st.box.Render(strings.Join(lines, "\n"))
}

// Summary is a plain one-line version of the report for logs and tests.
func (r Report) Summary() string {
	return fmt.Sprintf("ticks=%d score=%d-%d winner=%s hits=%d rally=%d peak=%d envelope=%d",
		r.Ticks, r.LeftScore, r.RightScore, r.Winner, r.PaddleHits, r.LongestRally, r.PeakSpeed, r.EnvelopeViolations)
}
