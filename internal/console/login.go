package console

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/ottermq/mbconsole/config"
	"github.com/ottermq/mbconsole/internal/client"
	"github.com/ottermq/mbconsole/pkg/metrics"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingEndpoint    = errors.New("host and port are required")
)

type LoginState int

const (
	Anonymous LoginState = iota
	LoggedIn
)

func (s LoginState) String() string {
	if s == LoggedIn {
		return "LoggedIn"
	}
	return "Anonymous"
}

// Authenticator decides whether a set of credentials may open a session.
type Authenticator interface {
	Authenticate(ctx context.Context, creds client.Credentials) error
}

// StaticAuthenticator accepts one configured username/password pair.
type StaticAuthenticator struct {
	username string
	hash     []byte
}

func NewStaticAuthenticator(username, password string) (*StaticAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &StaticAuthenticator{username: username, hash: hash}, nil
}

func (a *StaticAuthenticator) Authenticate(_ context.Context, creds client.Credentials) error {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(a.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.hash, []byte(creds.Password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// BrokerAuthenticator accepts credentials the broker management API accepts.
type BrokerAuthenticator struct {
	cfg      *config.Config
	recorder metrics.Recorder
}

func NewBrokerAuthenticator(cfg *config.Config, recorder metrics.Recorder) *BrokerAuthenticator {
	return &BrokerAuthenticator{cfg: cfg, recorder: recorder}
}

func (a *BrokerAuthenticator) Authenticate(ctx context.Context, creds client.Credentials) error {
	api := client.New(client.NewConnection(a.cfg, creds), a.recorder)
	err := api.Ping(ctx)
	if errors.Is(err, client.ErrUnauthorized) {
		return ErrInvalidCredentials
	}
	return err
}

// NewAuthenticator picks the authenticator for the configured login mode.
func NewAuthenticator(cfg *config.Config, recorder metrics.Recorder) (Authenticator, error) {
	if cfg.LoginMode == config.LoginModeBroker {
		return NewBrokerAuthenticator(cfg, recorder), nil
	}
	return NewStaticAuthenticator(cfg.AdminUsername, cfg.AdminPassword)
}

type LoginForm struct {
	Username string
	Password string
	Host     string
	Port     string
}

// LoginGate is the login dialog state machine:
// Anonymous -> LoggedIn on a valid submit, back to Anonymous on logout,
// and Anonymous with ShowError set on an invalid submit.
type LoginGate struct {
	RequireEndpoint bool

	State       LoginState
	Credentials client.Credentials
	ShowError   bool
	MissingHost bool
	MissingPort bool
	Err         error

	auth Authenticator
}

func NewLoginGate(auth Authenticator, requireEndpoint bool) *LoginGate {
	return &LoginGate{auth: auth, RequireEndpoint: requireEndpoint}
}

// Submit checks the form and moves the gate to LoggedIn when it is accepted.
func (g *LoginGate) Submit(ctx context.Context, form LoginForm) bool {
	g.ShowError, g.MissingHost, g.MissingPort, g.Err = false, false, false, nil

	creds := client.Credentials{
		Host:     strings.TrimSpace(form.Host),
		Port:     strings.TrimSpace(form.Port),
		Username: strings.TrimSpace(form.Username),
		Password: form.Password,
	}

	if g.RequireEndpoint {
		g.MissingHost = creds.Host == ""
		g.MissingPort = creds.Port == ""
	}
	if creds.Username == "" || creds.Password == "" {
		return g.reject(ErrInvalidCredentials)
	}
	if g.MissingHost || g.MissingPort {
		return g.reject(ErrMissingEndpoint)
	}

	if err := g.auth.Authenticate(ctx, creds); err != nil {
		return g.reject(err)
	}

	g.State = LoggedIn
	g.Credentials = creds
	return true
}

func (g *LoginGate) reject(err error) bool {
	g.State = Anonymous
	g.Credentials = client.Credentials{}
	g.ShowError = true
	g.Err = err
	return false
}

// Logout forgets the credentials.
func (g *LoginGate) Logout() {
	g.State = Anonymous
	g.Credentials = client.Credentials{}
	g.ShowError, g.MissingHost, g.MissingPort, g.Err = false, false, false, nil
}
