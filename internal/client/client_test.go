package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ottermq/mbconsole/config"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Version:        "test",
		BrokerScheme:   "https",
		BrokerHost:     "localhost",
		BrokerPort:     "9000",
		ApiBasePath:    "/broker/v1.0",
		AuthScheme:     config.AuthSchemeBasic,
		RequestTimeout: 5 * time.Second,
	}
}

// newTestClient points a client at handler, mounted under the broker base path.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *metrics.MockRecorder) {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle("/broker/v1.0/", http.StripPrefix("/broker/v1.0", handler))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	rec := metrics.NewMockRecorder()
	conn := Connection{
		BaseURL:    srv.URL + "/broker/v1.0",
		AuthHeader: BasicAuth("admin", "admin"),
		Timeout:    5 * time.Second,
		UserAgent:  "mbconsole/test",
	}
	return New(conn, rec), rec
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewConnection(t *testing.T) {
	cfg := testConfig()

	conn := NewConnection(cfg, Credentials{Host: " broker.local ", Port: "9443", Username: "admin", Password: "secret"})
	assert.Equal(t, "https://broker.local:9443/broker/v1.0", conn.BaseURL)
	assert.Equal(t, "Basic YWRtaW46c2VjcmV0", conn.AuthHeader)
	assert.Equal(t, "mbconsole/test", conn.UserAgent)
	assert.Equal(t, "broker.local:9443", conn.Host())

	// Blank host falls back to the configured broker.
	conn = NewConnection(cfg, Credentials{Username: "admin", Password: "admin"})
	assert.Equal(t, "https://localhost:9000/broker/v1.0", conn.BaseURL)

	// Host without port uses the configured port.
	conn = NewConnection(cfg, Credentials{Host: "b"})
	assert.Equal(t, "https://b:9000/broker/v1.0", conn.BaseURL)

	cfg.AuthScheme = config.AuthSchemeBearer
	cfg.BearerToken = "tok"
	conn = NewConnection(cfg, Credentials{Username: "admin", Password: "admin"})
	assert.Equal(t, "Bearer tok", conn.AuthHeader)
}

func TestListExchanges(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/exchanges", r.URL.Path)
		assert.Equal(t, "Basic YWRtaW46YWRtaW4=", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "mbconsole/test", r.Header.Get("User-Agent"))
		writeJSON(w, http.StatusOK, []models.ExchangeMetadata{
			{Name: "amq.direct", Type: "direct", Durable: true},
			{Name: "amq.topic", Type: "topic", Durable: false},
		})
	})

	exchanges, err := c.ListExchanges(context.Background())
	require.NoError(t, err)
	require.Len(t, exchanges, 2)
	assert.Equal(t, "amq.direct", exchanges[0].Name)
	assert.True(t, exchanges[0].Durable)
	assert.Equal(t, 1, rec.CallCount(http.MethodGet, "/exchanges"))
}

func TestListExchangesEmptyBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	exchanges, err := c.ListExchanges(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, exchanges)
	assert.Empty(t, exchanges)
}

func TestGetExchangeEscapesName(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchanges/orders%2Feu%20west", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, map[string]any{"type": "topic", "durable": true})
	})

	exchange, err := c.GetExchange(context.Background(), "  orders/eu west ")
	require.NoError(t, err)
	assert.Equal(t, "orders/eu west", exchange.Name)
	assert.Equal(t, "topic", exchange.Type)
	assert.True(t, exchange.Durable)
}

func TestGetExchangeBlankName(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	_, err := c.GetExchange(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestListExchangeBindings(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchanges/amq.topic/bindings", r.URL.Path)
		writeJSON(w, http.StatusOK, []models.BindingSet{
			{BindingPattern: "orders.*", Bindings: []models.BoundQueue{{QueueName: "q1"}, {QueueName: "q2"}}},
		})
	})

	bindings, err := c.ListExchangeBindings(context.Background(), "amq.topic")
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, "orders.*", bindings[0].BindingPattern)
	assert.Len(t, bindings[0].Bindings, 2)
}

func TestCreateExchange(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/exchanges", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"name": "orders", "type": "direct", "durable": true}, body)
		w.WriteHeader(http.StatusCreated)
	})

	err := c.CreateExchange(context.Background(), models.CreateExchangeRequest{Name: "orders", Type: "direct", Durable: true})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.CallCount(http.MethodPost, "/exchanges"))
}

func TestCreateExchangeConflict(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Exchange already exists"})
	})

	err := c.CreateExchange(context.Background(), models.CreateExchangeRequest{Name: "orders", Type: "direct"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Exchange already exists", apiErr.Message)
	assert.Equal(t, http.StatusConflict, StatusCode(err))
}

func TestDeleteExchange(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/exchanges/orders", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("ifUnused"))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.DeleteExchange(context.Background(), "orders", true))
}

func TestQueues(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/queues":
			writeJSON(w, http.StatusOK, []models.QueueMetadata{{Name: "q1", Durable: true, AutoDelete: false}})
		case r.Method == http.MethodGet && r.URL.Path == "/queues/q1":
			writeJSON(w, http.StatusOK, models.QueueMetadata{ConsumerCount: 2, Durable: true, Capacity: 1000, Size: 7})
		case r.Method == http.MethodGet && r.URL.Path == "/queues/q1/consumers":
			writeJSON(w, http.StatusOK, []models.ConsumerMetadata{
				{ID: 1, IsExclusive: true, FlowEnabled: true, TransportProperties: models.TransportProperties{ConnectionID: 3, ChannelID: 4}},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/queues":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{"name": "q2", "durable": false, "autoDelete": true}, body)
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodDelete && r.URL.Path == "/queues/q1":
			assert.Equal(t, "false", r.URL.Query().Get("ifUnused"))
			assert.Equal(t, "true", r.URL.Query().Get("ifEmpty"))
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodDelete && r.URL.Path == "/queues/q1/messages":
			writeJSON(w, http.StatusOK, models.PurgeResult{NumberOfMessagesDeleted: 7})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	queues, err := c.ListQueues(ctx)
	require.NoError(t, err)
	require.Len(t, queues, 1)

	queue, err := c.GetQueue(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, "q1", queue.Name)
	assert.Equal(t, 2, queue.ConsumerCount)
	assert.Equal(t, 7, queue.Size)

	consumers, err := c.ListQueueConsumers(ctx, "q1")
	require.NoError(t, err)
	require.Len(t, consumers, 1)
	assert.Equal(t, 3, consumers[0].TransportProperties.ConnectionID)

	require.NoError(t, c.CreateQueue(ctx, models.CreateQueueRequest{Name: "q2", AutoDelete: true}))
	require.NoError(t, c.DeleteQueue(ctx, "q1", false, true))

	purged, err := c.PurgeQueue(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, 7, purged)

	_, err = c.GetQueue(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPingUnauthorized(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := c.Ping(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	rec := metrics.NewMockRecorder()
	c := New(Connection{BaseURL: url + "/broker/v1.0", Timeout: time.Second}, rec)

	_, err := c.ListExchanges(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, 0, rec.Calls[0].Status)
}

func TestBrokerTimeout(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/broker/v1.0/exchanges", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	defer close(release)

	rec := metrics.NewMockRecorder()
	c := New(Connection{BaseURL: srv.URL + "/broker/v1.0", Timeout: 50 * time.Millisecond}, rec)

	_, err := c.ListExchanges(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, 0, rec.Calls[0].Status)
}

func TestContextCancelled(t *testing.T) {
	release := make(chan struct{})
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.ListQueues(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInvalidBaseURL(t *testing.T) {
	c := New(Connection{BaseURL: "not a url"}, nil)
	_, err := c.ListQueues(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid broker url"))
}
