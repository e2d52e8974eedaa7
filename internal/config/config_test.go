package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/ballou-sms/internal/config"
	"github.com/oggyb/ballou-sms/internal/notify"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 5*time.Second, cfg.Scheduler.Interval)
	assert.Equal(t, 100, cfg.Worker.BatchSize)
	assert.Equal(t, 4, cfg.Worker.MaxWorkers)
	assert.Greater(t, cfg.Scheduler.BatchTimeout, cfg.Worker.PerMessageTimeout)
}

func TestBatchTimeoutOutlastsDelivery(t *testing.T) {
	t.Setenv("SCHEDULER_BATCH_TIMEOUT", "30s")
	t.Setenv("WORKER_PER_MESSAGE_TIMEOUT", "90s")

	cfg, err := config.New()
	require.NoError(t, err)
	assert.Equal(t, 100*time.Second, cfg.Scheduler.BatchTimeout)
	assert.Equal(t, 90*time.Second, cfg.Worker.PerMessageTimeout)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SCHEDULER_BATCH_TIMEOUT", "3m")
	t.Setenv("WORKER_PER_MESSAGE_TIMEOUT", "2m")
	t.Setenv("WORKER_MAX_WORKERS", "8")
	t.Setenv("BALLOU_TOKEN", "tok")
	t.Setenv("BALLOU_UN", "user")
	t.Setenv("BALLOU_LONGSMS", "1")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.API.Port)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 3*time.Minute, cfg.Scheduler.BatchTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Worker.PerMessageTimeout)
	assert.Equal(t, 8, cfg.Worker.MaxWorkers)
	assert.Equal(t, "tok", cfg.Ballou.Token)
	assert.Equal(t, "user", cfg.Ballou.Username)
	assert.Equal(t, "1", cfg.Ballou.LongSMS)
}

func TestTokenRequiredOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("BALLOU_TOKEN", "")

	_, err := config.New()
	require.ErrorIs(t, err, config.ErrConfigRequired)

	t.Setenv("BALLOU_TOKEN", "tok")
	cfg, err := config.New()
	require.NoError(t, err)
	assert.False(t, cfg.IsDevelopment())
}

func TestBallou_Gateway(t *testing.T) {
	b := config.Ballou{Token: "tok", Username: "user", Origin: "Shop"}

	assert.Equal(t, notify.Config{"token": "tok", "UN": "user", "O": "Shop"}, b.Gateway())
}

func TestPostgresDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Host = "localhost"
	cfg.DB.Port = 5432
	cfg.DB.User = "u"
	cfg.DB.Password = "p"
	cfg.DB.Name = "n"
	cfg.DB.SSLMode = "disable"

	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=n sslmode=disable", cfg.PostgresDSN())
}
