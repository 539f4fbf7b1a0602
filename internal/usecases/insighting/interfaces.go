package insighting

import (
	"context"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

// Asker answers free-text questions about the seller's data.
type Asker interface {
	Ask(ctx context.Context, question string) (*domain.InsightAnswer, error)
}
