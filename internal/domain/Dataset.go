package domain

import "time"

// Dataset is one materialized snapshot of the three record collections.
type Dataset struct {
	Products []Product
	Sales    []Sale
	Costs    []CostRecord
	SnapshotMeta
}

type SnapshotMeta struct {
	FetchedAt time.Time `json:"fetched_at"`
	// Degraded lists the collections that failed to load and were replaced
	// by an empty collection.
	Degraded []string `json:"degraded,omitempty"`
}

func (m SnapshotMeta) IsDegraded() bool {
	return len(m.Degraded) > 0
}

type Dashboard struct {
	Range         TimeRange       `json:"range"`
	Overview      Overview        `json:"overview"`
	CostBreakdown []DerivedMetric `json:"cost_breakdown"`
	CategoryCosts []DerivedMetric `json:"category_costs"`
	Monthly       []MonthlyPoint  `json:"monthly"`
	Summary       SalesSummary    `json:"summary"`
}
