// Package catalog holds the static engagement tables shown by the dashboard
// and the lookups used to derive each view.
package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// Catalog is an immutable set of clients with their DORA and feedback rows.
// Rows are keyed by client id; a missing row is reported by the lookup, not
// rejected at construction.
type Catalog struct {
	clients  []Client
	metrics  map[int]DoraMetrics
	feedback map[int]Feedback
}

func New(clients []Client, metrics map[int]DoraMetrics, feedback map[int]Feedback) *Catalog {
	c := &Catalog{
		clients:  slices.Clone(clients),
		metrics:  make(map[int]DoraMetrics, len(metrics)),
		feedback: make(map[int]Feedback, len(feedback)),
	}
	for id, m := range metrics {
		c.metrics[id] = m
	}
	for id, f := range feedback {
		c.feedback[id] = f
	}
	return c
}

// Default returns the built-in engagement tables.
func Default() *Catalog {
	return New(defaultClients(), defaultMetrics(), defaultFeedback())
}

// Clients returns every client in table order.
func (c *Catalog) Clients() []Client {
	return slices.Clone(c.clients)
}

// Len returns the number of clients.
func (c *Catalog) Len() int {
	return len(c.clients)
}

func (c *Catalog) Client(id int) (Client, bool) {
	for _, cl := range c.clients {
		if cl.ID == id {
			return cl, true
		}
	}
	return Client{}, false
}

func (c *Catalog) Metrics(id int) (DoraMetrics, bool) {
	m, ok := c.metrics[id]
	return m, ok
}

func (c *Catalog) Feedback(id int) (Feedback, bool) {
	f, ok := c.feedback[id]
	return f, ok
}

// Validate reports rows that break the one-to-one layout or hold
// out-of-range values. Lookups keep working regardless.
func (c *Catalog) Validate() error {
	var errs []error
	seen := make(map[int]struct{}, len(c.clients))
	for _, cl := range c.clients {
		if _, dup := seen[cl.ID]; dup {
			errs = append(errs, fmt.Errorf("client %d: duplicate id", cl.ID))
		}
		seen[cl.ID] = struct{}{}
		if cl.Usage < 0 || cl.Usage > 100 {
			errs = append(errs, fmt.Errorf("client %d: usage %d out of range", cl.ID, cl.Usage))
		}
		if _, ok := c.metrics[cl.ID]; !ok {
			errs = append(errs, fmt.Errorf("client %d: no DORA metrics", cl.ID))
		}
		f, ok := c.feedback[cl.ID]
		if !ok {
			errs = append(errs, fmt.Errorf("client %d: no feedback", cl.ID))
			continue
		}
		if f.Satisfaction < 0 || f.Satisfaction > 5 || f.Productivity < 0 || f.Productivity > 5 {
			errs = append(errs, fmt.Errorf("client %d: feedback score out of range", cl.ID))
		}
	}
	return errors.Join(errs...)
}

func defaultClients() []Client {
	return []Client{
		{
			ID:              1,
			Name:            "Department of Energy",
			Engagement:      "Cloud Migration Phase 2",
			Sector:          "Federal",
			GenAIStatus:     StatusApproved,
			Usage:           65,
			DoraImplemented: "Yes",
		},
		{
			ID:              2,
			Name:            "Veterans Affairs",
			Engagement:      "Healthcare Systems Modernization",
			Sector:          "Federal",
			GenAIStatus:     StatusInReview,
			Usage:           0,
			DoraImplemented: "Partial",
		},
		{
			ID:              3,
			Name:            "XYZ Corporation",
			Engagement:      "DevOps Transformation",
			Sector:          "Commercial",
			GenAIStatus:     StatusApproved,
			Usage:           90,
			DoraImplemented: "Yes",
		},
	}
}

func defaultMetrics() map[int]DoraMetrics {
	return map[int]DoraMetrics{
		1: {
			DeploymentFrequency: TierMedium,
			LeadTime:            TierMedium,
			MTTR:                TierHigh,
			ChangeFailureRate:   TierMedium,
			Cadence:             "Bi-weekly",
		},
		2: {
			DeploymentFrequency: TierLow,
			LeadTime:            TierLow,
			MTTR:                TierMedium,
			ChangeFailureRate:   TierMedium,
			Cadence:             "Monthly",
		},
		3: {
			DeploymentFrequency: TierElite,
			LeadTime:            TierHigh,
			MTTR:                TierElite,
			ChangeFailureRate:   TierElite,
			Cadence:             "Weekly",
		},
	}
}

func defaultFeedback() map[int]Feedback {
	return map[int]Feedback{
		1: {
			Satisfaction:   4.2,
			Productivity:   4.5,
			Summary:        "Most developers report high satisfaction with code suggestions; some concerns about context limitations",
			SuccessStories: "30% reduction in code review time",
		},
		2: {
			Satisfaction:   0,
			Productivity:   0,
			Summary:        "No feedback yet - pending tool approval",
			SuccessStories: "",
		},
		3: {
			Satisfaction:   4.8,
			Productivity:   4.9,
			Summary:        "Very high satisfaction across all teams; considered essential to workflow",
			SuccessStories: "50% reduction in time to market for new features, 70% reduction in documentation time",
		},
	}
}
