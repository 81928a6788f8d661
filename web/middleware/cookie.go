package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/session"
)

func SetSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SessionFromCookie resolves the session cookie without rejecting the request.
func SessionFromCookie(c *fiber.Ctx, tokens *session.TokenIssuer, sessions *session.Store) (session.Session, bool) {
	raw := c.Cookies(session.CookieName)
	if raw == "" {
		return session.Session{}, false
	}
	claims, err := tokens.Parse(raw)
	if err != nil {
		return session.Session{}, false
	}
	sess, err := sessions.Get(claims.ID)
	if err != nil {
		return session.Session{}, false
	}
	return sess, true
}
