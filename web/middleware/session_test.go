package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ottermq/mbconsole/config"
	"github.com/ottermq/mbconsole/internal/client"
	"github.com/ottermq/mbconsole/internal/session"
	"github.com/ottermq/mbconsole/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	app      *fiber.App
	sessions *session.Store
	tokens   *session.TokenIssuer
}

func newFixture(t *testing.T, unauthorized fiber.ErrorHandler) *fixture {
	t.Helper()
	f := &fixture{
		sessions: session.NewStore(time.Hour, time.Hour),
		tokens:   session.NewTokenIssuer("test-secret"),
	}
	t.Cleanup(func() { _ = f.sessions.Close() })

	cfg := &config.Config{
		BrokerScheme: "http", BrokerHost: "localhost", BrokerPort: "9000",
		ApiBasePath: "/broker/v1.0", AuthScheme: config.AuthSchemeBasic,
		RequestTimeout: time.Second, Version: "test",
	}

	f.app = fiber.New()
	f.app.Get("/protected", RequireSession(SessionConfig{
		Config:       cfg,
		Sessions:     f.sessions,
		Tokens:       f.tokens,
		Recorder:     metrics.NewMockRecorder(),
		Unauthorized: unauthorized,
	}), func(c *fiber.Ctx) error {
		if Broker(c) == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(Session(c).Credentials.Username + "@" + Broker(c).Connection().Host())
	})
	return f
}

func (f *fixture) login(t *testing.T) (session.Session, string) {
	t.Helper()
	sess := f.sessions.Create(client.Credentials{Host: "broker", Port: "9100", Username: "admin", Password: "admin"})
	token, err := f.tokens.Issue(sess)
	require.NoError(t, err)
	return sess, token
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestRequireSessionMissingToken(t *testing.T) {
	f := newFixture(t, nil)

	resp, err := f.app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body(t, resp), "error")
}

func TestRequireSessionBearerHeader(t *testing.T) {
	f := newFixture(t, nil)
	_, token := f.login(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin@broker:9100", body(t, resp))
}

func TestRequireSessionCookie(t *testing.T) {
	f := newFixture(t, nil)
	_, token := f.login(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireSessionDeletedSession(t *testing.T) {
	f := newFixture(t, nil)
	sess, token := f.login(t)
	f.sessions.Delete(sess.ID)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body(t, resp), session.ErrSessionNotFound.Error())
}

func TestRequireSessionForeignSignature(t *testing.T) {
	f := newFixture(t, nil)
	sess := f.sessions.Create(client.Credentials{Username: "admin", Password: "admin"})
	token, err := session.NewTokenIssuer("other-secret").Issue(sess)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireSessionForeignIssuer(t *testing.T) {
	f := newFixture(t, nil)
	sess, _ := f.login(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti": sess.ID,
		"iss": "elsewhere",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(f.tokens.Secret())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	f.app.Get("/peek", func(c *fiber.Ctx) error {
		if _, ok := SessionFromCookie(c, f.tokens, f.sessions); ok {
			return c.SendStatus(fiber.StatusOK)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	req = httptest.NewRequest(http.MethodGet, "/peek", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	resp, err = f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestUIUnauthorizedRedirects(t *testing.T) {
	f := newFixture(t, UIUnauthorized)

	resp, err := f.app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestSessionFromCookie(t *testing.T) {
	f := newFixture(t, nil)
	sess, token := f.login(t)

	f.app.Get("/peek", func(c *fiber.Ctx) error {
		got, ok := SessionFromCookie(c, f.tokens, f.sessions)
		if !ok {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.SendString(got.ID)
	})

	req := httptest.NewRequest(http.MethodGet, "/peek", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, body(t, resp))

	resp, err = f.app.Test(httptest.NewRequest(http.MethodGet, "/peek", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
