package components

import (
	"testing"

	"charm.land/lipgloss/v2"
)

func TestProgressBarWidth(t *testing.T) {
	tests := []struct {
		name  string
		bar   ProgressBar
		width int
	}{
		{"plain", NewProgressBar("", 0.5, false, 40), 40},
		{"with label", NewProgressBar("Progress", 0.5, false, 40), 40},
		{"with percent", NewProgressBar("", 1.0, true, 40), 40},
		{"narrow floor", NewProgressBar("", 0.5, false, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lipgloss.Width(tt.bar.View()); got != tt.width {
				t.Errorf("width = %d, want %d", got, tt.width)
			}
		})
	}
}

func TestProgressBarClampsPercent(t *testing.T) {
	over := NewProgressBar("", 1.5, false, 20)
	under := NewProgressBar("", -0.5, false, 20)

	if got := lipgloss.Width(over.View()); got != 20 {
		t.Errorf("overfull width = %d, want 20", got)
	}
	if got := lipgloss.Width(under.View()); got != 20 {
		t.Errorf("underfull width = %d, want 20", got)
	}
}
