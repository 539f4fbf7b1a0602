package analytics

import (
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

const (
	DefaultReturnRate    = 0.07
	DefaultMinReturnRate = 0.05
	DefaultMaxReturnRate = 0.10
)

// ReturnsEstimator guesses how many units of a sale came back. The record
// store carries no returns data, so every implementation is a placeholder
// heuristic and not a real returns signal.
type ReturnsEstimator interface {
	EstimateReturns(sale domain.Sale) int
}

// FixedRateEstimator returns floor(quantity * Rate).
type FixedRateEstimator struct {
	Rate float64
}

func (e FixedRateEstimator) EstimateReturns(sale domain.Sale) int {
	return floorUnits(sale.Quantity, e.Rate)
}

// RandomRateEstimator draws a rate in [min, max) per sale. It is safe for
// concurrent use.
type RandomRateEstimator struct {
	mu  sync.Mutex
	rng *rand.Rand
	min float64
	max float64
}

// NewRandomRateEstimator builds an estimator over rng. A nil rng is seeded
// from the clock.
func NewRandomRateEstimator(rng *rand.Rand, min, max float64) *RandomRateEstimator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if max < min {
		min, max = max, min
	}

	return &RandomRateEstimator{rng: rng, min: min, max: max}
}

func (e *RandomRateEstimator) EstimateReturns(sale domain.Sale) int {
	e.mu.Lock()
	rate := e.min + e.rng.Float64()*(e.max-e.min)
	e.mu.Unlock()

	return floorUnits(sale.Quantity, rate)
}

func floorUnits(quantity int, rate float64) int {
	if quantity <= 0 || rate <= 0 {
		return 0
	}

	return int(decimal.NewFromInt(int64(quantity)).Mul(decimal.NewFromFloat(rate)).Floor().IntPart())
}
