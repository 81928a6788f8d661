package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "mbconsole_session"
	LocalsKey  = "user"
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims carry the session id in jti and the operator name in sub.
type Claims struct {
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	issuer string
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), issuer: "mbconsole"}
}

func (ti *TokenIssuer) Secret() []byte {
	return ti.secret
}

func (ti *TokenIssuer) Issue(sess Session) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Subject:   sess.Credentials.Username,
			Issuer:    ti.issuer,
			IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (ti *TokenIssuer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(ti.issuer))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SessionID reads the session id out of a token whose signature the jwt middleware
// already checked. It applies the same issuer rule as Parse.
func (ti *TokenIssuer) SessionID(token *jwt.Token) (string, error) {
	if token == nil || !token.Valid || token.Claims == nil {
		return "", ErrInvalidToken
	}
	if iss, err := token.Claims.GetIssuer(); err != nil || iss != ti.issuer {
		return "", ErrInvalidToken
	}
	switch claims := token.Claims.(type) {
	case *Claims:
		if claims.ID != "" {
			return claims.ID, nil
		}
	case jwt.MapClaims:
		if id, ok := claims["jti"].(string); ok && id != "" {
			return id, nil
		}
	}
	return "", ErrInvalidToken
}
