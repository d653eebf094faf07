// Package info shows the daily summary behind the info button.
package info

import (
	"fmt"
	"strings"
	"time"

	"impulse/internal/history"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Title of the summary dialog.
const Title = "Impulse"

// Message formats the day summary and the position in the long break cycle.
// A nil summary means the history is unavailable.
func Message(summary *history.DaySummary, workShift, longBreakAfter int) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Work shift %d of %d before the long break.\n", workShift, longBreakAfter)

	if summary == nil {
		builder.WriteString("History is unavailable.")
		return builder.String()
	}

	fmt.Fprintf(&builder, "Today: %d %s, %d %s.\n",
		summary.WorkShifts, plural(summary.WorkShifts, "work shift", "work shifts"),
		summary.Breaks, plural(summary.Breaks, "break", "breaks"),
	)
	fmt.Fprintf(&builder, "Focused %s, rested %s.", formatMinutes(summary.FocusedTime), formatMinutes(summary.BreakTime))
	if summary.LastTask != "" {
		fmt.Fprintf(&builder, "\nLast task: %s", summary.LastTask)
	}
	return builder.String()
}

// StartOfDay returns local midnight of now.
func StartOfDay(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
}

// Show opens the summary dialog on parent.
func Show(parent fyne.Window, message string) {
	dialog.ShowInformation(Title, message, parent)
}

func plural(count int, one, many string) string {
	if count == 1 {
		return one
	}
	return many
}

func formatMinutes(value time.Duration) string {
	minutes := int(value.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %02dmin", minutes/60, minutes%60)
}
