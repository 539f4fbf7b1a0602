package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestIsDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.True(t, IsDevelopment())

	t.Setenv("APP_ENV", "dev")
	assert.True(t, IsDevelopment())

	t.Setenv("APP_ENV", "production")
	assert.False(t, IsDevelopment())
}

func TestDevelopmentFieldFilter(t *testing.T) {
	assert.True(t, isDevelopmentField("correlation_id"))
	assert.True(t, isDevelopmentField("collection"))
	assert.True(t, isDevelopmentField("request_id"))
	assert.False(t, isDevelopmentField("user_agent"))
	assert.False(t, isDevelopmentField("remote_addr"))
}

func TestWithFieldDropsNoiseInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base := &logger{entry: L.(*logger).entry}
	assert.Same(t, base, base.WithField("remote_addr", "127.0.0.1"))
	assert.NotSame(t, base, base.WithField("collection", "sales"))
	assert.Same(t, base, base.WithFields(Fields{"user_agent": "curl"}))
}
