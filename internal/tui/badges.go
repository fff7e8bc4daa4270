package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/doratracker/internal/catalog"
)

// Badge is a fixed badge style token.
type Badge int

const (
	BadgeGray Badge = iota
	BadgeGreen
	BadgeYellow
	BadgeRed
	BadgeIndigo
)

var badgeNames = map[Badge]string{
	BadgeGray:   "gray",
	BadgeGreen:  "green",
	BadgeYellow: "yellow",
	BadgeRed:    "red",
	BadgeIndigo: "indigo",
}

func (b Badge) String() string {
	if n, ok := badgeNames[b]; ok {
		return n
	}
	return badgeNames[BadgeGray]
}

// StatusBadge maps a GenAI status to its badge. Unknown statuses get BadgeGray.
func StatusBadge(s catalog.GenAIStatus) Badge {
	switch s {
	case catalog.StatusApproved:
		return BadgeGreen
	case catalog.StatusInReview:
		return BadgeYellow
	case catalog.StatusNotStarted:
		return BadgeGray
	case catalog.StatusNotPermitted:
		return BadgeRed
	default:
		return BadgeGray
	}
}

// TierBadge maps a DORA tier to its badge. Unknown tiers get BadgeGray.
func TierBadge(t catalog.DoraTier) Badge {
	switch t {
	case catalog.TierElite:
		return BadgeIndigo
	case catalog.TierHigh:
		return BadgeGreen
	case catalog.TierMedium:
		return BadgeYellow
	case catalog.TierLow:
		return BadgeRed
	default:
		return BadgeGray
	}
}

func (b Badge) color() lipgloss.Color {
	switch b {
	case BadgeGreen:
		return colorGreen
	case BadgeYellow:
		return colorYellow
	case BadgeRed:
		return colorRed
	case BadgeIndigo:
		return colorIndigo
	default:
		return colorOverlay1
	}
}

// Style returns the lipgloss style for the badge.
func (b Badge) Style() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorBase).
		Background(b.color()).
		Padding(0, 1)
}

// Render draws text inside the badge. Empty text still draws the badge body.
func (b Badge) Render(text string) string {
	return b.Style().Render(text)
}
