package tui

import (
	"errors"
	"fmt"
	"strings"
)

// Tab identifies a detail tab.
type Tab int

const (
	TabOverview Tab = iota
	TabGenAI
	TabDora
	TabFeedback
)

// ErrUnknownTab is returned by ParseTab for names outside the four tabs.
var ErrUnknownTab = errors.New("unknown tab")

var tabIDs = []string{"overview", "genai", "dora", "feedback"}

var tabTitles = []string{"Overview", "GenAI Status", "DORA Metrics", "Feedback"}

// Tabs lists every tab in bar order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabGenAI, TabDora, TabFeedback}
}

// ID returns the config/CLI name of the tab.
func (t Tab) ID() string {
	if !t.valid() {
		return ""
	}
	return tabIDs[t]
}

func (t Tab) Title() string {
	if !t.valid() {
		return ""
	}
	return tabTitles[t]
}

func (t Tab) String() string {
	return t.ID()
}

func (t Tab) valid() bool {
	return t >= TabOverview && t <= TabFeedback
}

// ParseTab resolves a tab id such as "dora". An empty name means overview.
func ParseTab(name string) (Tab, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return TabOverview, nil
	}
	for i, id := range tabIDs {
		if id == n {
			return Tab(i), nil
		}
	}
	return TabOverview, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTab, name, strings.Join(tabIDs, ", "))
}

func (t Tab) next() Tab {
	return Tab((int(t) + 1) % len(tabIDs))
}

func (t Tab) prev() Tab {
	return Tab((int(t) + len(tabIDs) - 1) % len(tabIDs))
}

const placeholderIntro = "For the selected client, we've built a simplified version of the interface. A complete implementation would include:"

// placeholderMarkdown holds the static copy of the three inert tabs.
var placeholderMarkdown = map[Tab]string{
	TabGenAI: placeholderDoc(
		"GenAI Implementation Details",
		"This tab would contain detailed information about GenAI implementation status, tools, policies, and adoption strategies.",
		"Approval process details and timeline",
		"Approved tool configurations and limitations",
		"Policy documentation links",
		"Training and adoption resources",
		"Integration status with development workflow",
	),
	TabDora: placeholderDoc(
		"DORA Metrics Detailed View",
		"This tab would contain comprehensive DORA metrics tracking data, historical trends, and improvement targets.",
		"Historical performance charts for each metric",
		"Benchmarking against industry standards",
		"Integration with CI/CD platforms for automated data collection",
		"Improvement targets and progress tracking",
		"Correlation analysis with GenAI adoption metrics",
	),
	TabFeedback: placeholderDoc(
		"Qualitative Feedback Collection",
		"This tab would contain detailed feedback from team members about their GenAI usage experience.",
		"Individual feedback entries with sentiment analysis",
		"Common themes and patterns identification",
		"Tool-specific satisfaction metrics",
		"Productivity impact assessments",
		"Learning curve and adoption feedback",
		"Links to survey form for collecting additional feedback",
	),
}

func placeholderDoc(heading, description string, items ...string) string {
	var b strings.Builder
	b.WriteString("## " + heading + "\n\n")
	b.WriteString(description + "\n\n")
	b.WriteString("---\n\n")
	b.WriteString(placeholderIntro + "\n\n")
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	return b.String()
}
