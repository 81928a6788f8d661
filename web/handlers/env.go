package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/config"
	"github.com/ottermq/mbconsole/internal/amqpprobe"
	"github.com/ottermq/mbconsole/internal/client"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/internal/session"
	"github.com/ottermq/mbconsole/pkg/metrics"
	"github.com/ottermq/mbconsole/web/audit"
	"github.com/ottermq/mbconsole/web/middleware"
)

// Env is what the UI and API handlers share.
type Env struct {
	Config        *config.Config
	Sessions      *session.Store
	Tokens        *session.TokenIssuer
	Authenticator console.Authenticator
	Auditor       *audit.Auditor
	Recorder      metrics.Recorder
	StartTime     time.Time
	Features      []string

	// Probe dials the broker's AMQP port for the overview; nil uses amqpprobe.Probe.
	Probe func(ctx context.Context, url string) (*amqpprobe.ServerInfo, error)
}

func (e *Env) HasFeature(name string) bool {
	for _, f := range e.Features {
		if f == name {
			return true
		}
	}
	return false
}

// Actor identifies the operator behind the current request.
func Actor(c *fiber.Ctx) audit.Actor {
	sess := middleware.Session(c)
	who := audit.Actor{Username: sess.Credentials.Username}
	if b := middleware.Broker(c); b != nil {
		who.Broker = b.Connection().Host()
	}
	return who
}

// Login runs the login gate and opens a session when it accepts the form.
// The gate is returned in every case so callers can show which fields were rejected.
func (e *Env) Login(ctx context.Context, form console.LoginForm) (*console.LoginGate, string, session.Session, error) {
	gate := console.NewLoginGate(e.Authenticator, e.Config.RequireEndpoint)
	ok := gate.Submit(ctx, form)

	who := audit.Actor{Username: strings.TrimSpace(form.Username)}
	if !ok {
		who.Broker = client.NewConnection(e.Config, client.Credentials{Host: form.Host, Port: form.Port}).Host()
		e.Auditor.Login(ctx, who, gate.Err)
		return gate, "", session.Session{}, gate.Err
	}

	sess := e.Sessions.Create(gate.Credentials)
	who.Broker = client.NewConnection(e.Config, sess.Credentials).Host()
	token, err := e.Tokens.Issue(sess)
	if err != nil {
		e.Sessions.Delete(sess.ID)
		e.Auditor.Login(ctx, who, err)
		return gate, "", session.Session{}, err
	}
	e.Auditor.Login(ctx, who, nil)
	return gate, token, sess, nil
}

// Logout forgets the session and records it.
func (e *Env) Logout(ctx context.Context, sess session.Session) {
	e.Sessions.Delete(sess.ID)
	e.Auditor.Logout(ctx, audit.Actor{
		Username: sess.Credentials.Username,
		Broker:   client.NewConnection(e.Config, sess.Credentials).Host(),
	})
}

// RecordCreate audits a create attempt that got past form validation.
func (e *Env) RecordCreate(c *fiber.Ctx, kind, name string, err error) {
	if errors.Is(err, console.ErrValidation) {
		return
	}
	e.Auditor.Create(c.UserContext(), Actor(c), kind, strings.TrimSpace(name), err)
}
