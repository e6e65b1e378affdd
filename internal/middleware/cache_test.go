package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/config"
)

func TestEncodeDecodePayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	body := []byte(`{"ok":true}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsTruncated(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{0, 0, 0})
	assert.False(t, ok)

	// Header length pointing past the end of the payload.
	bs, err := encodePayload(http.StatusOK, http.Header{}, nil)
	require.NoError(t, err)
	_, _, _, ok = decodePayload(bs[:len(bs)-1])
	assert.False(t, ok)
}

func TestCacheKeyStrategies(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/Tenant?x=1", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/Tenant")

	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	withQuery := cacheKeyFrom(cfg, c)

	cfg.KeyStrategy = "route"
	withoutQuery := cacheKeyFrom(cfg, c)

	assert.NotEqual(t, withQuery, withoutQuery)

	// Same request, same strategy: the key must be stable.
	assert.Equal(t, withQuery, cacheKeyFrom(config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}, c))
}

func TestCacheDisabledIsPassThrough(t *testing.T) {
	e := echo.New()
	mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "live")
	})

	req := httptest.NewRequest(http.MethodGet, "/Tenant", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.True(t, called)
	assert.Equal(t, "live", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestRateLimiterNilClientIsPassThrough(t *testing.T) {
	e := echo.New()
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/Tenant", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestBuildRateKeyScopesByRoute(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/Tenant", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/Tenant")

	perRoute := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_route"}, c)
	perIP := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip"}, c)

	assert.Contains(t, perRoute, "route:GET:/Tenant")
	assert.NotContains(t, perIP, "route:")
	assert.Contains(t, perIP, "10.0.0.1")
}
