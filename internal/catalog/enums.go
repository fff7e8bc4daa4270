package catalog

import "strings"

// GenAIStatus is the adoption stage of generative-AI tooling on an engagement.
type GenAIStatus int

const (
	StatusUnknown GenAIStatus = iota
	StatusApproved
	StatusInReview
	StatusNotStarted
	StatusNotPermitted
)

var statusLabels = map[GenAIStatus]string{
	StatusApproved:     "Approved",
	StatusInReview:     "In Review",
	StatusNotStarted:   "Not Started",
	StatusNotPermitted: "Not Permitted",
}

// String returns the display label. StatusUnknown renders empty.
func (s GenAIStatus) String() string {
	return statusLabels[s]
}

// ParseGenAIStatus maps a display label (case-insensitive) to a status.
// Unrecognized input yields StatusUnknown.
func ParseGenAIStatus(label string) GenAIStatus {
	want := normalizeLabel(label)
	for s, l := range statusLabels {
		if normalizeLabel(l) == want {
			return s
		}
	}
	return StatusUnknown
}

// AllStatuses lists every known status in display order.
func AllStatuses() []GenAIStatus {
	return []GenAIStatus{StatusApproved, StatusInReview, StatusNotStarted, StatusNotPermitted}
}

// DoraTier is a DORA performance rating.
type DoraTier int

const (
	TierUnknown DoraTier = iota
	TierElite
	TierHigh
	TierMedium
	TierLow
)

var tierLabels = map[DoraTier]string{
	TierElite:  "Elite",
	TierHigh:   "High",
	TierMedium: "Medium",
	TierLow:    "Low",
}

func (t DoraTier) String() string {
	return tierLabels[t]
}

// ParseDoraTier maps a label (case-insensitive) to a tier; unknown text
// yields TierUnknown.
func ParseDoraTier(label string) DoraTier {
	want := normalizeLabel(label)
	for t, l := range tierLabels {
		if normalizeLabel(l) == want {
			return t
		}
	}
	return TierUnknown
}

// AllTiers lists every known tier from best to worst.
func AllTiers() []DoraTier {
	return []DoraTier{TierElite, TierHigh, TierMedium, TierLow}
}

func normalizeLabel(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
