package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestComputeCostBreakdown(t *testing.T) {
	tests := []struct {
		name  string
		costs []domain.CostRecord
		want  []domain.DerivedMetric
	}{
		{
			name: "single record",
			costs: []domain.CostRecord{{
				Month: month(2024, time.May),
				Lines: []domain.CostLine{
					{Name: "shipping", Amount: 200},
					{Name: "marketing", Amount: 50},
					{Name: "packaging", Amount: 50},
				},
			}},
			want: []domain.DerivedMetric{
				{Name: "Shipping", Value: 67},
				{Name: "Marketing", Value: 17},
				{Name: "Packaging", Value: 17},
			},
		},
		{
			name: "uses most recent month regardless of input order",
			costs: []domain.CostRecord{
				{Month: month(2024, time.June), Lines: []domain.CostLine{{Name: "fba_fees", Amount: 30}, {Name: "storage", Amount: 10}}},
				{Month: month(2024, time.April), Lines: []domain.CostLine{{Name: "shipping", Amount: 100}}},
			},
			want: []domain.DerivedMetric{
				{Name: "Fba Fees", Value: 75},
				{Name: "Storage", Value: 25},
			},
		},
		{
			name: "first record wins a tie on month",
			costs: []domain.CostRecord{
				{Month: month(2024, time.May), Lines: []domain.CostLine{{Name: "shipping", Amount: 1}}},
				{Month: month(2024, time.May), Lines: []domain.CostLine{{Name: "marketing", Amount: 1}}},
			},
			want: []domain.DerivedMetric{{Name: "Shipping", Value: 100}},
		},
		{
			name: "zero total yields zero values",
			costs: []domain.CostRecord{{
				Month: month(2024, time.May),
				Lines: []domain.CostLine{{Name: "shipping", Amount: 0}, {Name: "ads", Amount: 0}},
			}},
			want: []domain.DerivedMetric{{Name: "Shipping", Value: 0}, {Name: "Ads", Value: 0}},
		},
		{
			name:  "no records",
			costs: nil,
			want:  []domain.DerivedMetric{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeCostBreakdown(tt.costs))
		})
	}
}

func TestComputeCostBreakdown_SumsCloseToHundred(t *testing.T) {
	record := domain.CostRecord{
		Month: month(2024, time.May),
		Lines: []domain.CostLine{
			{Name: "a", Amount: 1},
			{Name: "b", Amount: 1},
			{Name: "c", Amount: 1},
			{Name: "d", Amount: 7.3},
		},
	}

	sum := 0
	for _, metric := range ComputeCostBreakdown([]domain.CostRecord{record}) {
		sum += metric.Value
	}

	assert.InDelta(t, 100, sum, float64(len(record.Lines)-1))
}

func TestComputeCostBreakdown_DoesNotMutateInput(t *testing.T) {
	costs := []domain.CostRecord{
		{Month: month(2024, time.May), Lines: []domain.CostLine{{Name: "shipping_fees", Amount: 10}}},
	}

	ComputeCostBreakdown(costs)

	assert.Equal(t, "shipping_fees", costs[0].Lines[0].Name)
}

func TestComputeCategoryCosts(t *testing.T) {
	tests := []struct {
		name     string
		products []domain.Product
		want     []domain.DerivedMetric
	}{
		{
			name: "two categories",
			products: []domain.Product{
				{ID: "1", Category: "Electronics", Cost: 100},
				{ID: "2", Category: "Books", Cost: 50},
			},
			want: []domain.DerivedMetric{{Name: "Electronics", Value: 67}, {Name: "Books", Value: 33}},
		},
		{
			name: "groups repeated categories in first seen order",
			products: []domain.Product{
				{ID: "1", Category: "Toys", Cost: 10},
				{ID: "2", Category: "Books", Cost: 30},
				{ID: "3", Category: "Toys", Cost: 10},
			},
			want: []domain.DerivedMetric{{Name: "Toys", Value: 40}, {Name: "Books", Value: 60}},
		},
		{
			name:     "zero costs",
			products: []domain.Product{{ID: "1", Category: "Toys"}},
			want:     []domain.DerivedMetric{},
		},
		{
			name: "no products",
			want: []domain.DerivedMetric{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeCategoryCosts(tt.products))
		})
	}
}

func TestHumanize(t *testing.T) {
	tests := map[string]string{
		"shipping":        "Shipping",
		"shipping_fees":   "Shipping Fees",
		"amazon_fba_fees": "Amazon Fba Fees",
		"already Spaced":  "Already Spaced",
		"ppc__ads":        "Ppc  Ads",
		"":                "",
	}

	for input, want := range tests {
		assert.Equal(t, want, Humanize(input), input)
	}
}
