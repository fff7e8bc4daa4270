package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/doratracker/internal/catalog"
)

func TestStatusBadgeMapping(t *testing.T) {
	t.Parallel()

	expected := map[catalog.GenAIStatus]Badge{
		catalog.StatusApproved:     BadgeGreen,
		catalog.StatusInReview:     BadgeYellow,
		catalog.StatusNotStarted:   BadgeGray,
		catalog.StatusNotPermitted: BadgeRed,
	}
	for _, s := range catalog.AllStatuses() {
		want, ok := expected[s]
		require.True(t, ok, "status %q has no expectation", s)
		require.Equal(t, want, StatusBadge(s), "status %q", s)
		// deterministic
		require.Equal(t, StatusBadge(s), StatusBadge(s))
	}
	require.Equal(t, BadgeGray, StatusBadge(catalog.StatusUnknown))
	require.Equal(t, BadgeGray, StatusBadge(catalog.GenAIStatus(99)))
	require.Equal(t, BadgeGray, StatusBadge(catalog.ParseGenAIStatus("Pending")))
}

func TestTierBadgeMapping(t *testing.T) {
	t.Parallel()

	expected := map[catalog.DoraTier]Badge{
		catalog.TierElite:  BadgeIndigo,
		catalog.TierHigh:   BadgeGreen,
		catalog.TierMedium: BadgeYellow,
		catalog.TierLow:    BadgeRed,
	}
	for _, tier := range catalog.AllTiers() {
		require.Equal(t, expected[tier], TierBadge(tier), "tier %q", tier)
	}
	require.Equal(t, BadgeGray, TierBadge(catalog.TierUnknown))
	require.Equal(t, BadgeGray, TierBadge(catalog.ParseDoraTier("Not Provided")))
}

func TestBadgeNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, "indigo", BadgeIndigo.String())
	require.Equal(t, "green", BadgeGreen.String())
	require.Equal(t, "gray", Badge(42).String())
}

func TestBadgeColorsAreDistinct(t *testing.T) {
	t.Parallel()

	seen := map[string]Badge{}
	for _, b := range []Badge{BadgeGray, BadgeGreen, BadgeYellow, BadgeRed, BadgeIndigo} {
		c := string(b.color())
		prev, dup := seen[c]
		require.False(t, dup, "%s and %s share a color", b, prev)
		seen[c] = b
	}
}
