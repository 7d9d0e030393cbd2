package http_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/factorial-service/internal/adapters/http"
	"github.com/jsamuelsen11/factorial-service/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func bigInt(n int64) *big.Int {
	return big.NewInt(n)
}

func TestServer_AddrBeforeRun(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 8000}, http.NotFoundHandler(), nil)

	assert.Equal(t, "127.0.0.1:8000", s.Addr())
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	cfg := config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 2 * time.Second,
	}
	s := adapthttp.NewServer(cfg, handler, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		return !strings.HasSuffix(s.Addr(), ":0")
	}, 2*time.Second, 10*time.Millisecond, "server never started listening")

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://"+s.Addr()+"/", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestServer_RunListenError(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "256.0.0.1", Port: 1}, http.NotFoundHandler(), discardLogger())

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}
