package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/osumare/task-api/internal/config"
	"github.com/osumare/task-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "router-test-secret-0123456789"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   3000,
			LogLevel:               "debug",
			ShutdownTimeoutSeconds: 2,
		},
		Auth: config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 60,
		},
		Store: config.StoreConfig{SeedSampleTask: false},
	}
}

func TestNewApplication(t *testing.T) {
	t.Run("wires dependencies", func(t *testing.T) {
		app, err := newApplication(testConfig(), nil)
		require.NoError(t, err)

		assert.NotNil(t, app.jwtService)
		assert.NotNil(t, app.taskStore)
		assert.NotNil(t, app.taskService)
		assert.NotNil(t, app.eventEmitter)

		tasks, err := app.taskStore.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("seeds sample task", func(t *testing.T) {
		cfg := testConfig()
		cfg.Store.SeedSampleTask = true

		app, err := newApplication(cfg, nil)
		require.NoError(t, err)

		task, err := app.taskStore.GetByID(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, "Test", task.Title)
		assert.Equal(t, "Sample task", task.Description)
	})

	t.Run("warns on default secret", func(t *testing.T) {
		logBuf, log := logger.SetupTestLogger(t)

		cfg := testConfig()
		cfg.Auth.JWTSecret = config.DefaultJWTSecret

		_, err := newApplication(cfg, log)
		require.NoError(t, err)
		logger.AssertLogContains(t, logBuf, "demo JWT secret")
	})

	t.Run("no warning on custom secret", func(t *testing.T) {
		logBuf, log := logger.SetupTestLogger(t)

		_, err := newApplication(testConfig(), log)
		require.NoError(t, err)
		logger.AssertLogNotContains(t, logBuf, "demo JWT secret")
	})

	t.Run("rejects invalid auth config", func(t *testing.T) {
		cfg := testConfig()
		cfg.Auth.TokenLifetimeMinutes = 0

		_, err := newApplication(cfg, nil)
		assert.ErrorContains(t, err, "failed to initialize JWT service")
	})
}

func TestServeGracefulShutdown(t *testing.T) {
	app, err := newApplication(testConfig(), nil)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.serve(ctx, ln, app.setupRouter())
	}()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
