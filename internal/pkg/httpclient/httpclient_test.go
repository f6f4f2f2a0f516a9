package httpclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"phoenix-booking-service/config"
	"phoenix-booking-service/internal/pkg/httpclient"

	"github.com/stretchr/testify/assert"
)

func TestInitHttpClient(t *testing.T) {
	cfg := &config.HttpClientConfig{
		Timeout:            time.Second,
		ConsecutiveFailure: 2,
		Threshold:          2,
		ErrorRate:          0.5,
		MinSamples:         2,
		MaxIdleConns:       2,
	}

	t.Run("passes through successful calls", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := httpclient.InitHttpClient(cfg, httpclient.InitCircuitBreaker(cfg, httpclient.BreakerConsecutive))
		resp, err := client.Get(srv.URL)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("breaker opens after consecutive failures", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		cb := httpclient.InitCircuitBreaker(cfg, httpclient.BreakerConsecutive)
		client := httpclient.InitHttpClient(cfg, cb)
		for i := 0; i < 3; i++ {
			_, err := client.Get(url)
			assert.Error(t, err)
		}

		assert.True(t, cb.Tripped())
	})

	t.Run("breaker kinds", func(t *testing.T) {
		assert.NotNil(t, httpclient.InitCircuitBreaker(cfg, httpclient.BreakerThreshold))
		assert.NotNil(t, httpclient.InitCircuitBreaker(cfg, httpclient.BreakerRate))
		assert.NotNil(t, httpclient.InitCircuitBreaker(cfg, "unknown"))
	})
}
