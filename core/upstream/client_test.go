package upstream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"inventory-levels/core/inventory"
	"inventory-levels/core/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "user" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"feed","count":2}`))
	}))
	defer srv.Close()

	client := upstream.NewClient("NO", upstream.Config{User: "user", Password: "secret"}, nil)
	assert.Equal(t, "NO", client.Origin())

	var payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, client.GetJSON(context.Background(), srv.URL, &payload))
	assert.Equal(t, "feed", payload.Name)
	assert.Equal(t, 2, payload.Count)
}

func TestClient_GetJSON_Failures(t *testing.T) {
	t.Run("NonSuccessStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := upstream.NewClient("SE", upstream.Config{}, nil)
		var v any
		err := client.GetJSON(context.Background(), srv.URL, &v)
		assert.ErrorIs(t, err, inventory.ErrSourceUnavailable)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("TransportError", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		client := upstream.NewClient("SE", upstream.Config{TimeoutSeconds: 1}, nil)
		var v any
		err := client.GetJSON(context.Background(), url, &v)
		assert.ErrorIs(t, err, inventory.ErrSourceUnavailable)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"broken"`))
		}))
		defer srv.Close()

		client := upstream.NewClient("SE", upstream.Config{}, nil)
		var v []map[string]any
		err := client.GetJSON(context.Background(), srv.URL, &v)
		assert.ErrorIs(t, err, inventory.ErrMalformedRecord)
	})
}

func TestClient_BreakerOpens(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := upstream.NewClient("NO", upstream.Config{BreakerFailures: 2, BreakerOpenSeconds: 60}, nil)
	var v any
	for i := 0; i < 2; i++ {
		assert.Error(t, client.GetJSON(context.Background(), srv.URL, &v))
	}

	err := client.GetJSON(context.Background(), srv.URL, &v)
	assert.ErrorIs(t, err, inventory.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "circuit breaker open")
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_CancelledRequestsDoNotTripBreaker(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= 3 {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := upstream.NewClient("NO", upstream.Config{BreakerFailures: 1, BreakerOpenSeconds: 60}, nil)
	var v struct {
		OK bool `json:"ok"`
	}
	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		err := client.GetJSON(ctx, srv.URL, &v)
		cancel()
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "circuit breaker open")
	}

	require.NoError(t, client.GetJSON(context.Background(), srv.URL, &v))
	assert.True(t, v.OK)
	assert.Equal(t, int32(4), hits.Load())
}
