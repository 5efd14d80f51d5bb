package model

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"ideagen-backend/internal/config"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingServer always answers /chat/completions with status and counts hits.
func countingServer(t *testing.T, status int, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream failure","type":"server_error"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewChatModel_SingleAttempt(t *testing.T) {
	for _, provider := range []string{
		config.ProviderGroq,
		config.ProviderDoubao,
		config.ProviderQwen,
	} {
		t.Run(provider, func(t *testing.T) {
			var hits atomic.Int32
			srv := countingServer(t, http.StatusInternalServerError, &hits)

			cfg := testLLMConfig(srv.URL)
			cfg.Provider = provider
			cfg.Timeout = 5 * time.Second

			m, err := NewChatModel(context.Background(), cfg, srv.Client())
			require.NoError(t, err)

			_, err = m.Generate(context.Background(), []*schema.Message{schema.UserMessage("x")})
			require.Error(t, err)
			assert.Equal(t, int32(1), hits.Load(), "a failed completion is not retried")
		})
	}
}
