package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGenAIStatusRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range AllStatuses() {
		require.Equal(t, s, ParseGenAIStatus(s.String()))
	}
	require.Equal(t, StatusInReview, ParseGenAIStatus("  in   review "))
	require.Equal(t, StatusUnknown, ParseGenAIStatus("Pending"))
	require.Equal(t, StatusUnknown, ParseGenAIStatus(""))
	require.Empty(t, StatusUnknown.String())
}

func TestParseDoraTierRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tier := range AllTiers() {
		require.Equal(t, tier, ParseDoraTier(tier.String()))
	}
	require.Equal(t, TierElite, ParseDoraTier("ELITE"))
	require.Equal(t, TierUnknown, ParseDoraTier("Not Provided"))
	require.Empty(t, TierUnknown.String())
}
