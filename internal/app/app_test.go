package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/aiconic/aiconic/internal/config"
)

func TestSetupRejectsNilConfig(t *testing.T) {
	a, err := Setup(context.Background(), nil, nil)
	require.ErrorIs(t, err, config.ErrConfigNil)
	assert.Nil(t, a)
}

func TestProvideLimiter(t *testing.T) {
	l := provideLimiter(&config.Config{RateLimit: 2})
	assert.Equal(t, rate.Limit(2), l.Limit())
	assert.Equal(t, 4, l.Burst())

	// Very low rates still get a usable burst.
	l = provideLimiter(&config.Config{RateLimit: 0.2})
	assert.Equal(t, 1, l.Burst())
}

func TestCloseOnZeroApp(t *testing.T) {
	var a App
	assert.NoError(t, a.Close())
}
