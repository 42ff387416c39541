package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dgnsrekt/stutter/internal/stutter"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

var (
	statusBarNoteFg = lipgloss.AdaptiveColor{Light: "#656565", Dark: "#7D7D7D"}
	statusBarBg     = lipgloss.AdaptiveColor{Light: "#E6E6E6", Dark: "#242424"}

	statusBarStyle = lipgloss.NewStyle().
			Foreground(statusBarNoteFg).
			Background(statusBarBg)

	statusBarNoteStyle = lipgloss.NewStyle().
				Foreground(statusBarNoteFg).
				Background(statusBarBg)
)

// stateColor returns the colour used for a playback state.
func stateColor(s stutter.StateType) lipgloss.Color {
	switch s {
	case stutter.StatePlaying:
		return lipgloss.Color("#04B575")
	case stutter.StatePaused:
		return lipgloss.Color("#ECFD65")
	case stutter.StateEnded:
		return lipgloss.Color("#00AAFF")
	default:
		return lipgloss.Color("#666666")
	}
}

// stateIcon returns a glyph for a playback state.
func stateIcon(s stutter.StateType) string {
	switch s {
	case stutter.StatePlaying:
		return "▶"
	case stutter.StatePaused:
		return "⏸"
	case stutter.StateEnded:
		return "■"
	default:
		return "○"
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < 0 {
		return "0:00"
	}

	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// remaining estimates the reading time left at percent progress.
func remaining(total time.Duration, percent int) time.Duration {
	return total * time.Duration(100-min(max(percent, 0), 100)) / 100
}

// statusBar renders the bottom line: state, source, position and time left.
func statusBar(width int, source string, status stutter.Status, frame Frame) string {
	state := lipgloss.NewStyle().
		Foreground(stateColor(status.State)).
		Background(statusBarBg).
		Padding(0, 1).
		Render(stateIcon(status.State) + " " + status.State.String())

	right := statusBarNoteStyle.
		Padding(0, 1).
		Render(fmt.Sprintf("%d/%d  %s left", min(status.Index+1, status.Total), status.Total,
			formatDuration(remaining(frame.Total, frame.Progress))))

	avail := max(0, width-lipgloss.Width(state)-lipgloss.Width(right))
	note := truncate.StringWithTail(" "+source+" ", uint(avail), ellipsis) //nolint:gosec
	note = statusBarNoteStyle.Width(avail).Render(note)

	return statusBarStyle.Render(state + note + right)
}
