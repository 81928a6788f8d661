package amqpprobe

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const DefaultTimeout = 5 * time.Second

// ServerInfo is what the broker announces in connection.start.
type ServerInfo struct {
	Product  string
	Version  string
	Platform string
	Locales  []string
	Major    int
	Minor    int
}

// URL builds an amqp:// connection string for host:port with escaped credentials.
func URL(host, port, username, password string) string {
	u := url.URL{
		Scheme: "amqp",
		Host:   net.JoinHostPort(host, port),
		Path:   "/",
	}
	if username != "" {
		u.User = url.UserPassword(username, password)
	}
	return u.String()
}

// Redact hides the password of an amqp url for display.
func Redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Redacted()
}

// Probe opens an AMQP connection, reads the server properties and closes it again.
func Probe(ctx context.Context, amqpURL string) (*ServerInfo, error) {
	timeout := DefaultTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	dialer := &net.Dialer{Timeout: timeout}
	cfg := amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Properties: amqp.Table{
			"product":         "mbconsole",
			"connection_name": "mbconsole-probe",
		},
		Dial: func(network, addr string) (net.Conn, error) {
			conn, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			// bound the handshake as well as the dial
			if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
				conn.Close()
				return nil, err
			}
			return conn, nil
		},
	}

	log.Debug().Str("url", Redact(amqpURL)).Msg("Probing AMQP endpoint")
	conn, err := amqp.DialConfig(amqpURL, cfg)
	if err != nil {
		return nil, fmt.Errorf("amqp probe %s: %w", Redact(amqpURL), err)
	}
	defer conn.Close()

	return &ServerInfo{
		Product:  tableString(conn.Properties, "product"),
		Version:  tableString(conn.Properties, "version"),
		Platform: tableString(conn.Properties, "platform"),
		Locales:  conn.Locales,
		Major:    conn.Major,
		Minor:    conn.Minor,
	}, nil
}

func tableString(t amqp.Table, key string) string {
	v, ok := t[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
