package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("client", "/campaigns", "POST"))
	}
}

func TestLimiter_NilConfigAllowsEverything(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()
	assert.True(t, l.Allow("client", "/campaigns", "POST"))
}

func TestLimiter_BurstExhaustion(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/campaigns", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		},
	})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		require.True(t, l.Allow("client", "/campaigns", "POST"), "request %d within burst", i)
	}
	assert.False(t, l.Allow("client", "/campaigns", "POST"))
}

func TestLimiter_ClientsHaveIndependentBuckets(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/campaigns", Method: "POST", Limit: 10, Window: time.Minute, Burst: 1},
		},
	})
	defer l.Stop()

	require.True(t, l.Allow("alice", "/campaigns", "POST"))
	assert.False(t, l.Allow("alice", "/campaigns", "POST"))
	assert.True(t, l.Allow("bob", "/campaigns", "POST"))
}

func TestLimiter_HealthIsNeverLimited(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	defer l.Stop()

	for i := 0; i < 50; i++ {
		assert.True(t, l.Allow("client", "/health", "GET"))
	}
}

func TestLimiter_TokensRefill(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			// 100 per second: a drained bucket recovers within tens of ms.
			{Path: "/campaigns", Method: "POST", Limit: 100, Window: time.Second, Burst: 1},
		},
	})
	defer l.Stop()

	require.True(t, l.Allow("client", "/campaigns", "POST"))
	require.False(t, l.Allow("client", "/campaigns", "POST"))

	time.Sleep(50 * time.Millisecond)
	assert.True(t, l.Allow("client", "/campaigns", "POST"))
}

func TestConfig_MatchExactBeforePrefix(t *testing.T) {
	cfg := &Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/admin/", Method: "GET", Limit: 60, Window: time.Minute},
			{Path: "/admin/integrity", Method: "GET", Limit: 10, Window: time.Minute},
		},
	}

	ec := cfg.match("/admin/integrity", "GET")
	require.NotNil(t, ec)
	assert.Equal(t, 10, ec.Limit)

	ec = cfg.match("/admin/brands/summary", "GET")
	require.NotNil(t, ec)
	assert.Equal(t, "/admin/", ec.Path)
}

func TestConfig_MatchFallsBackToDefault(t *testing.T) {
	cfg := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
	}

	ec := cfg.match("/campaigns", "GET")
	require.NotNil(t, ec)
	assert.Equal(t, 1000, ec.Limit)
}

func TestConfig_MatchHonorsMethod(t *testing.T) {
	cfg := &Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/campaigns", Method: "POST", Limit: 30, Window: time.Minute},
		},
		DefaultLimit:  500,
		DefaultWindow: time.Minute,
	}

	ec := cfg.match("/campaigns", "GET")
	require.NotNil(t, ec)
	assert.Equal(t, 500, ec.Limit, "GET must not inherit the POST limit")
}

func TestLoadConfig_DisabledViaEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLimiter_UnlimitedEndpoint(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/campaigns", Method: "GET", Limit: 0, Window: time.Minute},
		},
	})
	defer l.Stop()

	for i := 0; i < 20; i++ {
		assert.True(t, l.Allow("client", "/campaigns", "GET"), fmt.Sprintf("request %d", i))
	}
}
