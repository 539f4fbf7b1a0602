package insighting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/seller-dashboard-api/internal/config"
	"github.com/vfg2006/seller-dashboard-api/internal/domain"
	"github.com/vfg2006/seller-dashboard-api/pkg/log"
)

// rule matches when the lower-cased question contains every keyword.
type rule struct {
	keywords []string
	answer   string
}

var rules = []rule{
	{
		keywords: []string{"product", "highest", "return"},
		answer: "Based on the analysis of your return data, electronic accessories have the highest return rate at 12.3%. " +
			"The primary reasons cited by customers are 'not as described' and 'quality issues'. " +
			"Consider improving product descriptions and quality control for this category.",
	},
	{
		keywords: []string{"best selling"},
		answer: "In the last 30 days, your best selling products are: 1. Wireless Earbuds (328 units), " +
			"2. Kitchen Knife Set (245 units), and 3. Yoga Mat (198 units). " +
			"The Wireless Earbuds have seen a 15% increase in sales compared to the previous month.",
	},
	{
		keywords: []string{"pricing"},
		answer: "Your pricing strategy could be optimized by implementing dynamic pricing for your top 20% products. " +
			"The data shows a potential 8-12% revenue increase by adjusting prices based on demand patterns, " +
			"competitive pricing, and inventory levels.",
	},
}

const fallbackAnswer = "Based on your Amazon sales data, I recommend focusing on improving inventory turnover for slow-moving products. " +
	"The data indicates that 15% of your inventory has been in stock for over 90 days, " +
	"which increases storage costs and affects your overall profitability."

// Service is a canned-answer stand-in for a language model. It never reads
// dashboard data.
type Service struct {
	enabled bool
	latency time.Duration
	timeout time.Duration
	now     func() time.Time
}

func NewService(cfg config.Insight) *Service {
	return &Service{
		enabled: cfg.Enabled,
		latency: cfg.Latency,
		timeout: cfg.Timeout,
		now:     time.Now,
	}
}

func (s *Service) Ask(ctx context.Context, question string) (*domain.InsightAnswer, error) {
	logger := log.ForContext(ctx)

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	if !s.enabled {
		return nil, fmt.Errorf("%w: disabled by configuration", ErrInsightUnavailable)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.think(ctx); err != nil {
		logger.WithError(err).Warn("insighting: question abandoned")
		return nil, fmt.Errorf("%w: %v", ErrInsightUnavailable, err)
	}

	answer := answerFor(question)
	logger.WithField("question_length", len(question)).Debug("insighting: answer generated")

	return &domain.InsightAnswer{
		Question:   question,
		Answer:     answer,
		AnsweredAt: s.now(),
	}, nil
}

// think simulates model latency.
func (s *Service) think(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func answerFor(question string) string {
	lower := strings.ToLower(question)

	for _, r := range rules {
		if containsAll(lower, r.keywords) {
			return r.answer
		}
	}

	return fallbackAnswer
}

func containsAll(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if !strings.Contains(s, keyword) {
			return false
		}
	}

	return true
}
