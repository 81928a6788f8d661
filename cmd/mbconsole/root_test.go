package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// startBroker serves a small management API and points the environment at it.
func startBroker(t *testing.T) *[]models.CreateExchangeRequest {
	t.Helper()
	var created []models.CreateExchangeRequest

	mux := http.NewServeMux()
	mux.HandleFunc("GET /broker/v1.0/exchanges", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.ExchangeMetadata{
			{Name: "amq.direct", Type: "direct", Durable: true},
			{Name: "amq.fanout", Type: "fanout", Durable: true},
			{Name: "orders", Type: "topic"},
		})
	})
	mux.HandleFunc("POST /broker/v1.0/exchanges", func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateExchangeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		created = append(created, req)
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /broker/v1.0/exchanges/{name}/bindings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.BindingSet{
			{BindingPattern: "orders.#", Bindings: []models.BoundQueue{{QueueName: "billing"}, {QueueName: "audit"}}},
			{BindingPattern: "refunds", Bindings: []models.BoundQueue{{QueueName: "billing"}}},
		})
	})
	mux.HandleFunc("GET /broker/v1.0/queues/{name}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("name") != "billing" {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "queue not found"})
			return
		}
		writeJSON(w, http.StatusOK, models.QueueMetadata{Name: "billing", Size: 3, Durable: true})
	})
	mux.HandleFunc("DELETE /broker/v1.0/queues/{name}", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ifUnused") == "true" {
			writeJSON(w, http.StatusConflict, map[string]string{"message": "queue has consumers"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("DELETE /broker/v1.0/queues/{name}/messages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.PurgeResult{NumberOfMessagesDeleted: 7})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)

	t.Setenv("MBCONSOLE_BROKER_SCHEME", "http")
	t.Setenv("MBCONSOLE_BROKER_HOST", host)
	t.Setenv("MBCONSOLE_BROKER_PORT", port)
	t.Setenv("MBCONSOLE_API_BASE_PATH", "/broker/v1.0")
	t.Setenv("MBCONSOLE_AUTH_SCHEME", "basic")
	t.Setenv("LOG_LEVEL", "error")
	return &created
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommandTree(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{
		{"serve"},
		{"list", "exchange"},
		{"list", "queue"},
		{"list", "consumer"},
		{"list", "binding"},
		{"show", "exchange"},
		{"show", "queue"},
		{"create", "exchange"},
		{"create", "queue"},
		{"delete", "exchange"},
		{"delete", "queue"},
		{"delete", "messages"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestListExchangesCSVWithFilter(t *testing.T) {
	startBroker(t)

	out, err := run(t, "list", "exchange", "--format", "csv", "--filter", "AMQ")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Type,Durable,Owner", lines[0])
	assert.Equal(t, "amq.direct,direct,true,", lines[1])
	assert.Equal(t, "amq.fanout,fanout,true,", lines[2])
}

func TestListExchangesPaged(t *testing.T) {
	startBroker(t)

	out, err := run(t, "list", "exchange", "--format", "csv", "--page-size", "2", "--page", "1")
	require.NoError(t, err)
	assert.Equal(t, "Name,Type,Durable,Owner\norders,topic,false,\n", out)

	out, err = run(t, "list", "exchange", "--format", "csv", "--page-size", "2", "--page", "5")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "list", "exchange", "--format", "csv", "--page-size", "2", "--page", strconv.Itoa(math.MaxInt))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListExchangesFilterColumn(t *testing.T) {
	startBroker(t)

	out, err := run(t, "list", "exchange", "--format", "csv", "--filter-column", "Type", "--filter", "top")
	require.NoError(t, err)
	assert.Equal(t, "Name,Type,Durable,Owner\norders,topic,false,\n", out)
}

func TestListBindingsRegroupsRows(t *testing.T) {
	startBroker(t)

	out, err := run(t, "list", "binding", "orders", "--format", "csv", "--filter", "billing")
	require.NoError(t, err)
	assert.Equal(t, "Queue,Pattern\nbilling,orders.#\nbilling,refunds\n", out)
}

func TestShowQueueNotFound(t *testing.T) {
	startBroker(t)

	_, err := run(t, "show", "queue", "missing")
	require.Error(t, err)

	var stderr bytes.Buffer
	assert.Equal(t, 1, exitCodeForError(err, &stderr))
	assert.Equal(t, "Error: broker returned 404: queue not found\n", stderr.String())
}

func TestCreateExchange(t *testing.T) {
	created := startBroker(t)

	out, err := run(t, "create", "exchange", "payments", "--type", "fanout", "--durable")
	require.NoError(t, err)
	assert.Equal(t, "Exchange payments created\n", out)
	require.Len(t, *created, 1)
	assert.Equal(t, models.CreateExchangeRequest{Name: "payments", Type: "fanout", Durable: true}, (*created)[0])
}

func TestCreateExchangeBlankNameIsUsageError(t *testing.T) {
	created := startBroker(t)

	_, err := run(t, "create", "exchange", "  ")
	require.Error(t, err)
	assert.Equal(t, exitUsage, exitCodeForError(err, &bytes.Buffer{}))
	assert.Empty(t, *created)
}

func TestDeleteQueueConflict(t *testing.T) {
	startBroker(t)

	out, err := run(t, "delete", "queue", "billing")
	require.NoError(t, err)
	assert.Equal(t, "Queue billing deleted\n", out)

	_, err = run(t, "delete", "queue", "billing", "--if-unused")
	require.Error(t, err)
	assert.Equal(t, "Error: broker returned 409: queue has consumers", describeError(err))
}

func TestDeleteMessages(t *testing.T) {
	startBroker(t)

	out, err := run(t, "delete", "messages", "billing")
	require.NoError(t, err)
	assert.Equal(t, "7 messages purged from billing\n", out)
}

func TestUnknownFormatAndScheme(t *testing.T) {
	startBroker(t)

	_, err := run(t, "list", "queue", "--format", "yaml")
	require.Error(t, err)
	assert.Equal(t, exitUsage, exitCodeForError(err, &bytes.Buffer{}))

	_, err = run(t, "list", "queue", "--scheme", "ftp")
	require.Error(t, err)
	assert.Equal(t, exitUsage, exitCodeForError(err, &bytes.Buffer{}))
}

func TestRunMainExitCodes(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 0, runMain(func() error { return nil }, &stderr))
	assert.Equal(t, 130, runMain(func() error { return context.Canceled }, &stderr))
	assert.Equal(t, 1, runMain(func() error { return errors.New("boom") }, &stderr))
	assert.Contains(t, stderr.String(), "Error: boom")

	stderr.Reset()
	assert.Equal(t, 3, runMain(func() error { return &exitError{code: 3, silent: true} }, &stderr))
	assert.Empty(t, stderr.String())
}
