package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ottermq/mbconsole/pkg/metrics"
	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout  = 30 * time.Second
	maxResponseSize = 4 << 20 // 4 MiB
)

// Client talks to one broker management API on behalf of one session.
type Client struct {
	conn     Connection
	http     *http.Client
	recorder metrics.Recorder
}

func New(conn Connection, recorder metrics.Recorder) *Client {
	timeout := conn.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if conn.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 operator opt-in
	}
	if recorder == nil {
		recorder = metrics.NewNoopRecorder()
	}
	return &Client{
		conn:     conn,
		http:     &http.Client{Timeout: timeout, Transport: transport},
		recorder: recorder,
	}
}

func (c *Client) Connection() Connection {
	return c.conn
}

// Ping checks that the broker answers and accepts the credentials.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/exchanges", "/exchanges", nil, nil, nil)
}

func (c *Client) endpoint(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.conn.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid broker url %q: %w", c.conn.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid broker url %q", c.conn.BaseURL)
	}
	// path is already escaped by resourcePath
	u.RawPath = strings.TrimRight(u.EscapedPath(), "/") + path
	u.Path, _ = url.PathUnescape(u.RawPath)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	u.Fragment = ""
	return u.String(), nil
}

// do sends one request. label is the route template used as the metrics endpoint.
func (c *Client) do(ctx context.Context, method, path, label string, query url.Values, in, out any) error {
	endpoint, err := c.endpoint(path, query)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.conn.AuthHeader != "" {
		req.Header.Set("Authorization", c.conn.AuthHeader)
	}
	if c.conn.UserAgent != "" {
		req.Header.Set("User-Agent", c.conn.UserAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.recorder.ObserveBrokerCall(method, label, 0, time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Debug().Err(err).Str("method", method).Str("url", endpoint).Msg("Broker request failed")
		return transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	c.recorder.ObserveBrokerCall(method, label, resp.StatusCode, time.Since(start))
	if err != nil {
		return transportError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(method, path, resp.StatusCode, raw)
		log.Debug().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg(apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// resourcePath joins a collection with a trimmed, escaped resource name and optional suffix.
func resourcePath(collection, name string, suffix ...string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	return collection + "/" + url.PathEscape(name) + strings.Join(suffix, ""), nil
}

// IsTransport reports whether err means the broker could not be reached at all.
// transportError wraps err in ErrTransport. An http.Client timeout also matches
// context.DeadlineExceeded.
func transportError(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %w: %v", ErrTransport, context.DeadlineExceeded, err)
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}

func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
