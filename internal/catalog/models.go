package catalog

import "strings"

// Client represents one tracked engagement.
type Client struct {
	ID              int
	Name            string
	Engagement      string
	Sector          string
	GenAIStatus     GenAIStatus
	Usage           int
	DoraImplemented string
}

// DoraMetrics holds the four delivery-performance tiers for a client.
type DoraMetrics struct {
	DeploymentFrequency DoraTier
	LeadTime            DoraTier
	MTTR                DoraTier
	ChangeFailureRate   DoraTier
	Cadence             string
}

// Feedback holds survey scores and free text for a client.
type Feedback struct {
	Satisfaction   float64
	Productivity   float64
	Summary        string
	SuccessStories string
}

// NoSuccessStories is shown in place of an empty success-story field.
const NoSuccessStories = "No success stories documented yet"

// SuccessStoriesText returns the success stories, or NoSuccessStories when blank.
func (f Feedback) SuccessStoriesText() string {
	if strings.TrimSpace(f.SuccessStories) == "" {
		return NoSuccessStories
	}
	return f.SuccessStories
}

// FeedbackAvailable reports whether a feedback record exists and carries a
// positive satisfaction score. A zero score reads the same as no feedback.
func FeedbackAvailable(f Feedback, ok bool) bool {
	return ok && f.Satisfaction > 0
}
