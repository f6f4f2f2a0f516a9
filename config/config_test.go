package config_test

import (
	"testing"
	"time"

	"phoenix-booking-service/config"

	"github.com/stretchr/testify/assert"
)

func TestInitConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.InitConfig()

		assert.Equal(t, "7104", cfg.HttpServer.Port)
		assert.Equal(t, 0.1, cfg.Loyalty.PointsPerCurrency)
		assert.Equal(t, 10, cfg.Waitlist.WakeLimit)
		assert.True(t, cfg.Lock.Enabled)
		assert.Equal(t, 5*time.Second, cfg.HttpClient.Timeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("WAITLIST_WAKE_LIMIT", "25")
		t.Setenv("LOCK_ENABLED", "false")
		t.Setenv("HOTEL_SERVICE_URL", "http://catalog:9000")

		cfg := config.InitConfig()

		assert.Equal(t, 25, cfg.Waitlist.WakeLimit)
		assert.False(t, cfg.Lock.Enabled)
		assert.Equal(t, "http://catalog:9000", cfg.Services.HotelServiceURL)
	})
}
