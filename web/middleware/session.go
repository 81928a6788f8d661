package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ottermq/mbconsole/config"
	"github.com/ottermq/mbconsole/internal/client"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/internal/session"
	"github.com/ottermq/mbconsole/pkg/metrics"
	"github.com/rs/zerolog/log"
)

const (
	sessionLocal = "session"
	brokerLocal  = "broker"
)

type SessionConfig struct {
	Config   *config.Config
	Sessions *session.Store
	Tokens   *session.TokenIssuer
	Recorder metrics.Recorder

	// Unauthorized answers a request that carries no live session.
	Unauthorized fiber.ErrorHandler
}

// RequireSession validates the session token found in the Authorization header or the
// session cookie, resolves it to a live session and stores a broker client built from
// that session's credentials for the handlers.
func RequireSession(sc SessionConfig) fiber.Handler {
	unauthorized := sc.Unauthorized
	if unauthorized == nil {
		unauthorized = APIUnauthorized
	}

	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: sc.Tokens.Secret()},
		TokenLookup: "header:Authorization,cookie:" + session.CookieName,
		ContextKey:  session.LocalsKey,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, _ := c.Locals(session.LocalsKey).(*jwt.Token)
			id, err := sc.Tokens.SessionID(token)
			if err != nil {
				return unauthorized(c, err)
			}
			sess, err := sc.Sessions.Get(id)
			if err != nil {
				return unauthorized(c, err)
			}
			c.Locals(sessionLocal, sess)
			c.Locals(brokerLocal, client.New(client.NewConnection(sc.Config, sess.Credentials), sc.Recorder))
			return c.Next()
		},
		ErrorHandler: unauthorized,
	})
}

// APIUnauthorized answers JSON clients with 401.
func APIUnauthorized(c *fiber.Ctx, err error) error {
	log.Debug().Err(err).Str("path", c.Path()).Msg("Rejected API request without session")
	msg := "Missing or invalid session token"
	if errors.Is(err, session.ErrSessionNotFound) {
		msg = err.Error()
	}
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: msg})
}

// UIUnauthorized sends browsers back to the login page.
func UIUnauthorized(c *fiber.Ctx, err error) error {
	log.Debug().Err(err).Str("path", c.Path()).Msg("Redirecting to login")
	ClearSessionCookie(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Broker returns the client for the current session. Only valid behind RequireSession.
func Broker(c *fiber.Ctx) *client.Client {
	b, _ := c.Locals(brokerLocal).(*client.Client)
	return b
}

func Session(c *fiber.Ctx) session.Session {
	sess, _ := c.Locals(sessionLocal).(session.Session)
	return sess
}
