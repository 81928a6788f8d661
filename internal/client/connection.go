package client

import (
	"encoding/base64"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/ottermq/mbconsole/config"
)

// Credentials are what an operator typed into the login form.
type Credentials struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Connection is the immutable request context every broker call is made with.
// Build one per session; never mutate it after construction.
type Connection struct {
	BaseURL     string
	AuthHeader  string
	InsecureTLS bool
	Timeout     time.Duration
	UserAgent   string
}

// NewConnection derives the broker base URL and auth header from the configuration
// and the session credentials. A blank host selects the configured default broker.
func NewConnection(cfg *config.Config, creds Credentials) Connection {
	return Connection{
		BaseURL:     baseURL(cfg, creds),
		AuthHeader:  authHeader(cfg, creds),
		InsecureTLS: cfg.InsecureTLS,
		Timeout:     cfg.RequestTimeout,
		UserAgent:   "mbconsole/" + cfg.Version,
	}
}

func baseURL(cfg *config.Config, creds Credentials) string {
	host := strings.TrimSpace(creds.Host)
	if host == "" {
		return strings.TrimRight(cfg.DefaultBrokerURL(), "/")
	}
	port := strings.TrimSpace(creds.Port)
	if port == "" {
		port = cfg.BrokerPort
	}
	return fmt.Sprintf("%s://%s%s", cfg.BrokerScheme, net.JoinHostPort(host, port), strings.TrimRight(cfg.ApiBasePath, "/"))
}

func authHeader(cfg *config.Config, creds Credentials) string {
	if cfg.AuthScheme == config.AuthSchemeBearer {
		return "Bearer " + cfg.BearerToken
	}
	return BasicAuth(creds.Username, creds.Password)
}

// BasicAuth builds an HTTP Basic Authorization header value.
func BasicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// Host returns the host:port part of the base URL, used for display and audit records.
func (c Connection) Host() string {
	rest := c.BaseURL
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
