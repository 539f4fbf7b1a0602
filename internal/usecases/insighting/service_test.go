package insighting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/seller-dashboard-api/internal/config"
)

func TestService_Ask(t *testing.T) {
	service := NewService(config.Insight{Enabled: true})

	tests := []struct {
		name     string
		question string
		contains string
	}{
		{name: "highest return product", question: "Which PRODUCT has the highest return rate?", contains: "electronic accessories"},
		{name: "best selling", question: "What are my best selling items?", contains: "Wireless Earbuds"},
		{name: "pricing", question: "How should I change my pricing?", contains: "dynamic pricing"},
		{name: "highest without return falls back", question: "Which product has the highest margin?", contains: "inventory turnover"},
		{name: "anything else", question: "hello", contains: "inventory turnover"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := service.Ask(context.Background(), tt.question)
			require.NoError(t, err)

			assert.Equal(t, tt.question, answer.Question)
			assert.Contains(t, answer.Answer, tt.contains)
			assert.False(t, answer.AnsweredAt.IsZero())
		})
	}
}

func TestService_Ask_EmptyQuestion(t *testing.T) {
	service := NewService(config.Insight{Enabled: false})

	for _, question := range []string{"", "   ", "\n\t"} {
		_, err := service.Ask(context.Background(), question)
		assert.ErrorIs(t, err, ErrEmptyQuestion)
		assert.NotErrorIs(t, err, ErrInsightUnavailable)
	}
}

func TestService_Ask_Unavailable(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		service := NewService(config.Insight{Enabled: false})

		_, err := service.Ask(context.Background(), "pricing?")
		assert.ErrorIs(t, err, ErrInsightUnavailable)
	})

	t.Run("timeout while thinking", func(t *testing.T) {
		service := NewService(config.Insight{Enabled: true, Latency: time.Second, Timeout: 10 * time.Millisecond})

		_, err := service.Ask(context.Background(), "pricing?")
		assert.ErrorIs(t, err, ErrInsightUnavailable)
		assert.ErrorContains(t, err, context.DeadlineExceeded.Error())
	})

	t.Run("caller cancelled", func(t *testing.T) {
		service := NewService(config.Insight{Enabled: true})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.Ask(ctx, "pricing?")
		assert.ErrorIs(t, err, ErrInsightUnavailable)
	})
}

func TestService_Ask_WaitsForLatency(t *testing.T) {
	service := NewService(config.Insight{Enabled: true, Latency: 20 * time.Millisecond})

	started := time.Now()
	_, err := service.Ask(context.Background(), "best selling")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(started), 20*time.Millisecond)
}
