package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jask/doratracker/internal/catalog"
)

const (
	appTitle          = "GenAI & DORA Metrics Tracker"
	emptyDetailText   = "Select an engagement to view details"
	noMatchesText     = "No engagements match"
	addButtonText     = "+ Add New Engagement"
	pendingTitle      = "Feedback not yet available"
	doraLabelWidth    = 23
	sideBySideMinimum = 72
)

func (a *App) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.renderSidebar(sidebarWidth, a.bodyHeight()),
		a.renderDivider(a.bodyHeight()),
		a.renderMain(a.width-sidebarWidth-1, a.bodyHeight()),
	)
	return strings.Join([]string{a.renderHeader(a.width), body, a.renderFooter()}, "\n")
}

// Snapshot renders one frame tall enough to hold the whole detail pane.
func (a *App) Snapshot(width int) string {
	a.SetSize(width, defaultHeight)
	content := lipgloss.Height(a.renderDetail(a.width - sidebarWidth - 1))
	sidebar := listTop + max(len(a.visible), 1)*rowHeight + 2
	body := max(content+tabBarHeight, sidebar, 3)
	a.SetSize(width, headerHeight+a.footerHeight()+body)
	return a.View()
}

func (a *App) renderHeader(width int) string {
	left := headerStyle.Render(appTitle)
	right := pillStyle.Render(fmt.Sprintf("%d Engagements", a.catalog.Len()))
	fill := headerStyle.Padding(0)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		return ansi.Truncate(left, width, "")
	}
	return left + fill.Render(strings.Repeat(" ", gap)) + right + fill.Render(" ")
}

func (a *App) renderSidebar(width, height int) string {
	lines := []string{
		ansi.Truncate(a.search.View(), width, ""),
		dividerStyle.Render(strings.Repeat("─", width)),
	}
	if len(a.visible) == 0 {
		lines = append(lines, subtitleStyle.Render("  "+noMatchesText), "", "", dividerStyle.Render(strings.Repeat("─", width)))
	}
	for i, cl := range a.visible {
		lines = append(lines, a.renderClientRow(cl, i == a.cursor, width)...)
	}
	lines = append(lines, "", " "+buttonStyle.Render(addButtonText))
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(strings.Join(lines, "\n"))
}

// renderClientRow returns exactly rowHeight lines.
func (a *App) renderClientRow(cl catalog.Client, cursor bool, width int) []string {
	bar, mark := " ", " "
	if cl.ID == a.selected {
		bar = selectedBarStyle.Render("┃")
	}
	if cursor {
		mark = selectedBarStyle.Render("›")
	}
	prefix := bar + mark

	badge := StatusBadge(cl.GenAIStatus).Render(cl.GenAIStatus.String())
	nameWidth := width - lipgloss.Width(prefix) - lipgloss.Width(badge) - 1
	name := titleStyle.Render(ansi.Truncate(cl.Name, max(nameWidth, 1), "…"))
	pad := max(width-lipgloss.Width(prefix)-lipgloss.Width(name)-lipgloss.Width(badge), 1)

	inner := width - 2
	stats := fmt.Sprintf("%d%% Usage   DORA: %s", cl.Usage, cl.DoraImplemented)
	return []string{
		prefix + name + strings.Repeat(" ", pad) + badge,
		bar + " " + subtitleStyle.Render(ansi.Truncate(cl.Engagement, inner, "…")),
		bar + " " + labelStyle.Render(ansi.Truncate(stats, inner, "…")),
		dividerStyle.Render(strings.Repeat("─", width)),
	}
}

func (a *App) renderDivider(height int) string {
	return dividerStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))
}

func (a *App) renderMain(width, height int) string {
	box := lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height)
	if a.selected == 0 {
		return box.Render(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			placeholderStyle.Render(emptyDetailText)))
	}
	return box.Render(renderTabBar(a.activeTab, width) + "\n" + a.detail.View())
}

func (a *App) renderFooter() string {
	return a.help.View(a.keys) + "\n" + statusStyle.Render(a.status)
}

func tabLabel(i int, t Tab) string {
	return fmt.Sprintf(" %d %s ", i+1, t.Title())
}

// renderTabBar draws the labels on one line and an underline on the next,
// heavy under the active tab.
func renderTabBar(active Tab, width int) string {
	var top, bottom strings.Builder
	for i, t := range Tabs() {
		label := tabLabel(i, t)
		w := lipgloss.Width(label)
		if i > 0 {
			top.WriteString(" ")
			bottom.WriteString(dividerStyle.Render("─"))
		}
		if t == active {
			top.WriteString(tabActiveStyle.Render(label))
			bottom.WriteString(tabActiveStyle.Render(strings.Repeat("━", w)))
			continue
		}
		top.WriteString(tabInactiveStyle.Render(label))
		bottom.WriteString(dividerStyle.Render(strings.Repeat("─", w)))
	}
	if rest := width - lipgloss.Width(bottom.String()); rest > 0 {
		bottom.WriteString(dividerStyle.Render(strings.Repeat("─", rest)))
	}
	return ansi.Truncate(top.String(), width, "") + "\n" + ansi.Truncate(bottom.String(), width, "")
}

// tabAt maps a column inside the tab bar to the tab drawn there.
func tabAt(x int) (Tab, bool) {
	pos := 0
	for i, t := range Tabs() {
		w := lipgloss.Width(tabLabel(i, t))
		if x >= pos && x < pos+w {
			return t, true
		}
		pos += w + 1
	}
	return TabOverview, false
}

// renderDetail derives the content under the tab bar. The client, metrics
// and feedback rows are looked up independently on every call.
func (a *App) renderDetail(width int) string {
	if a.selected == 0 {
		return ""
	}
	pad := lipgloss.NewStyle().Padding(1, 1)
	inner := max(width-2, 10)
	if a.activeTab == TabOverview {
		return pad.Render(a.renderOverview(inner))
	}
	return pad.Render(a.renderPlaceholder(a.activeTab, inner))
}

func (a *App) renderOverview(width int) string {
	cl, _ := a.catalog.Client(a.selected)
	metrics, _ := a.catalog.Metrics(a.selected)
	fb, fbOK := a.catalog.Feedback(a.selected)

	heading := strings.Join([]string{
		titleStyle.Render(cl.Name),
		subtitleStyle.Render(cl.Engagement),
		pillStyle.Render(cl.Sector) + " " + StatusBadge(cl.GenAIStatus).Render(cl.GenAIStatus.String()),
	}, "\n")

	var cards string
	if width >= sideBySideMinimum {
		half := (width - 1) / 2
		cards = lipgloss.JoinHorizontal(lipgloss.Top,
			renderUsageCard(cl, half), " ", renderDoraCard(metrics, width-half-1))
	} else {
		cards = renderUsageCard(cl, width) + "\n" + renderDoraCard(metrics, width)
	}

	return strings.Join([]string{
		heading,
		"",
		cards,
		renderCard("Feedback Summary", renderFeedback(fb, fbOK, width-4), width),
	}, "\n")
}

// renderCard wraps body in a bordered card exactly width cells wide.
func renderCard(title, body string, width int) string {
	return cardStyle.Width(max(width-2, 1)).Render(titleStyle.Render(title) + "\n\n" + body)
}

func renderUsageCard(cl catalog.Client, width int) string {
	barWidth := max(width-4, 1)
	body := strings.Join([]string{
		labelStyle.Render("Team Usage"),
		renderUsageBar(barWidth, cl.Usage),
		textStyle.Render(fmt.Sprintf("%d%% of team members", cl.Usage)),
	}, "\n")
	return renderCard("GenAI Implementation", body, width)
}

func renderDoraCard(m catalog.DoraMetrics, width int) string {
	rows := []struct {
		label string
		tier  catalog.DoraTier
	}{
		{"Deployment Frequency", m.DeploymentFrequency},
		{"Lead Time for Changes", m.LeadTime},
		{"Mean Time to Recovery", m.MTTR},
		{"Change Failure Rate", m.ChangeFailureRate},
	}
	lines := make([]string, 0, len(rows)+1)
	for _, r := range rows {
		label := labelStyle.Render(fmt.Sprintf("%-*s", doraLabelWidth, r.label))
		lines = append(lines, label+TierBadge(r.tier).Render(r.tier.String()))
	}
	lines = append(lines, labelStyle.Render("Cadence: ")+textStyle.Render(m.Cadence))
	return renderCard("DORA Metrics Status", strings.Join(lines, "\n"), width)
}

// usageBarFill returns how many of width cells are filled for usage percent.
func usageBarFill(width, usage int) int {
	usage = min(max(usage, 0), 100)
	return int(math.Round(float64(width) * float64(usage) / 100))
}

func renderUsageBar(width, usage int) string {
	fill := usageBarFill(width, usage)
	return barFilledStyle.Render(strings.Repeat("█", fill)) +
		barEmptyStyle.Render(strings.Repeat("░", width-fill))
}

// renderFeedback picks the full panel when feedback is available and the
// pending panel otherwise.
func renderFeedback(fb catalog.Feedback, ok bool, width int) string {
	if catalog.FeedbackAvailable(fb, ok) {
		return renderFeedbackFull(fb, width)
	}
	return renderFeedbackPending(fb, width)
}

func renderFeedbackFull(fb catalog.Feedback, width int) string {
	scores := titleStyle.Render(fmt.Sprintf("%.1f", fb.Satisfaction)) + labelStyle.Render(" satisfaction") +
		"    " +
		titleStyle.Render(fmt.Sprintf("%.1f", fb.Productivity)) + labelStyle.Render(" productivity")
	return strings.Join([]string{
		scores,
		"",
		labelStyle.Render("Team Feedback"),
		textStyle.Render(wordwrap.String(fb.Summary, width)),
		"",
		labelStyle.Render("Success Stories"),
		textStyle.Render(wordwrap.String(fb.SuccessStoriesText(), width)),
	}, "\n")
}

func renderFeedbackPending(fb catalog.Feedback, width int) string {
	body := lipgloss.NewStyle().Bold(true).Render(pendingTitle) + "\n" + wordwrap.String(fb.Summary, max(width-4, 1))
	return warnCardStyle.Width(max(width-2, 1)).Render(body)
}

func (a *App) renderPlaceholder(t Tab, width int) string {
	md := placeholderMarkdown[t]
	if r := a.markdown(max(width-4, 20)); r != nil {
		if out, err := r.Render(md); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return md
}
