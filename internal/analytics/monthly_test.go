package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

func sale(year int, m time.Month, day, quantity int, revenue float64) domain.Sale {
	return domain.Sale{
		Date:     time.Date(year, m, day, 0, 0, 0, 0, time.UTC),
		Quantity: quantity,
		Revenue:  revenue,
	}
}

func TestComputeMonthlySeries(t *testing.T) {
	estimator := FixedRateEstimator{Rate: 0.1}

	t.Run("sums sales of the same month", func(t *testing.T) {
		series := ComputeMonthlySeries([]domain.Sale{
			sale(2024, time.January, 3, 10, 100),
			sale(2024, time.January, 20, 5, 50),
		}, estimator)

		assert.Equal(t, []domain.MonthlyPoint{{Name: "Jan", Month: "2024-01", Sales: 15, Returns: 1}}, series)
	})

	t.Run("chronological regardless of input order", func(t *testing.T) {
		series := ComputeMonthlySeries([]domain.Sale{
			sale(2024, time.March, 1, 30, 0),
			sale(2023, time.December, 1, 10, 0),
			sale(2024, time.January, 1, 20, 0),
		}, estimator)

		require.Len(t, series, 3)
		assert.Equal(t, "2023-12", series[0].Month)
		assert.Equal(t, "Dec", series[0].Name)
		assert.Equal(t, "2024-01", series[1].Month)
		assert.Equal(t, "2024-03", series[2].Month)
		assert.Equal(t, 3, series[2].Returns)
	})

	t.Run("same month in different years stays apart", func(t *testing.T) {
		series := ComputeMonthlySeries([]domain.Sale{
			sale(2023, time.January, 1, 1, 0),
			sale(2024, time.January, 1, 2, 0),
		}, estimator)

		require.Len(t, series, 2)
		assert.Equal(t, "Jan", series[0].Name)
		assert.Equal(t, "Jan", series[1].Name)
	})

	t.Run("no sales", func(t *testing.T) {
		assert.Empty(t, ComputeMonthlySeries(nil, estimator))
	})

	t.Run("idempotent with a deterministic estimator", func(t *testing.T) {
		sales := []domain.Sale{sale(2024, time.February, 1, 47, 0), sale(2024, time.May, 9, 13, 0)}
		assert.Equal(t, ComputeMonthlySeries(sales, estimator), ComputeMonthlySeries(sales, estimator))
	})
}

func TestFixedRateEstimator(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		quantity int
		want     int
	}{
		{name: "floors fractional returns", rate: 0.07, quantity: 15, want: 1},
		{name: "exact product", rate: 0.29, quantity: 100, want: 29},
		{name: "zero quantity", rate: 0.5, quantity: 0, want: 0},
		{name: "zero rate", rate: 0, quantity: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimator := FixedRateEstimator{Rate: tt.rate}
			assert.Equal(t, tt.want, estimator.EstimateReturns(domain.Sale{Quantity: tt.quantity}))
		})
	}
}

func TestRandomRateEstimator(t *testing.T) {
	estimator := NewRandomRateEstimator(rand.New(rand.NewSource(42)), DefaultMinReturnRate, DefaultMaxReturnRate)

	for i := 0; i < 100; i++ {
		returns := estimator.EstimateReturns(domain.Sale{Quantity: 1000})
		assert.GreaterOrEqual(t, returns, 50)
		assert.Less(t, returns, 100)
	}

	first := NewRandomRateEstimator(rand.New(rand.NewSource(7)), 0.05, 0.10)
	second := NewRandomRateEstimator(rand.New(rand.NewSource(7)), 0.05, 0.10)
	sales := []domain.Sale{sale(2024, time.January, 1, 500, 0), sale(2024, time.February, 1, 800, 0)}
	assert.Equal(t, ComputeMonthlySeries(sales, first), ComputeMonthlySeries(sales, second))
}
