package config_test

import (
	"testing"
	"time"

	"github.com/auth-platform/libs/go/humantime/config"
	"github.com/auth-platform/libs/go/humantime/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workerEnv struct {
	Name     string           `yaml:"name" env:"WORKER_NAME" env-default:"worker"`
	Poll     domain.Duration  `yaml:"poll" env:"WORKER_POLL,POLL" env-default:"30s" validate:"hduration_max=1h"`
	Deadline domain.Timestamp `yaml:"deadline" env:"WORKER_DEADLINE" env-required:"true" validate:"required"`
	Grace    time.Duration    `yaml:"grace" env:"WORKER_GRACE" env-default:"5s"`
	Lease    leaseEnv         `yaml:"lease" env-prefix:"LEASE_"`
}

type leaseEnv struct {
	TTL domain.Duration `yaml:"ttl" env:"TTL" env-default:"1min"`
}

func TestReadEnv(t *testing.T) {
	t.Setenv("WORKER_DEADLINE", "2030-06-01T00:00:00Z")
	t.Setenv("POLL", "2m 30s")
	t.Setenv("LEASE_TTL", "90s")

	var cfg workerEnv
	require.NoError(t, config.ReadEnv(&cfg))

	assert.Equal(t, "worker", cfg.Name)
	assert.Equal(t, domain.Seconds(150), cfg.Poll)
	assert.Equal(t, "2030-06-01T00:00:00Z", cfg.Deadline.String())
	assert.Equal(t, 5*time.Second, cfg.Grace)
	assert.Equal(t, domain.Seconds(90), cfg.Lease.TTL)
}

func TestReadEnv_Defaults(t *testing.T) {
	t.Setenv("WORKER_DEADLINE", "2030-06-01T00:00:00Z")

	var cfg workerEnv
	require.NoError(t, config.ReadEnv(&cfg))
	assert.Equal(t, domain.Seconds(30), cfg.Poll)
	assert.Equal(t, domain.Minutes(1), cfg.Lease.TTL)
}

func TestReadEnv_Errors(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		var cfg workerEnv
		err := config.ReadEnv(&cfg)
		assert.ErrorContains(t, err, `field "Deadline" is required`)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("WORKER_DEADLINE", "2030-06-01T00:00:00Z")
		t.Setenv("WORKER_POLL", "soon")
		var cfg workerEnv
		err := config.ReadEnv(&cfg)
		assert.ErrorContains(t, err, "parsing field Poll env WORKER_POLL")
	})

	t.Run("weak timestamp", func(t *testing.T) {
		t.Setenv("WORKER_DEADLINE", "2030-06-01 00:00:00")
		var cfg workerEnv
		assert.Error(t, config.ReadEnv(&cfg))
	})

	t.Run("validation", func(t *testing.T) {
		t.Setenv("WORKER_DEADLINE", "2030-06-01T00:00:00Z")
		t.Setenv("WORKER_POLL", "2h")
		var cfg workerEnv
		err := config.ReadEnv(&cfg)
		assert.ErrorContains(t, err, "field 'workerEnv.Poll' failed validation: hduration_max")
	})

	t.Run("not a struct pointer", func(t *testing.T) {
		var n int
		assert.Error(t, config.ReadEnv(&n))
	})
}

func TestReadFile(t *testing.T) {
	path := writeFile(t, "worker.yaml", `
name: batch
poll: 10m
deadline: "2031-01-01T00:00:00Z"
grace: 1s
lease:
  ttl: 2h
`)
	t.Setenv("WORKER_POLL", "20m")

	var cfg workerEnv
	require.NoError(t, config.ReadFile(path, &cfg))

	assert.Equal(t, "batch", cfg.Name)
	assert.Equal(t, domain.Minutes(20), cfg.Poll)
	assert.Equal(t, "2031-01-01T00:00:00Z", cfg.Deadline.String())
	assert.Equal(t, time.Second, cfg.Grace)
	assert.Equal(t, domain.Hours(2), cfg.Lease.TTL)
}

func TestReadFile_Missing(t *testing.T) {
	var cfg workerEnv
	assert.ErrorContains(t, config.ReadFile("/nonexistent/worker.yaml", &cfg), "failed to read config")
}
