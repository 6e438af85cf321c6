// Package session holds the signed-in identity the client attaches to
// outgoing requests. Credentials are injected into the client explicitly
// rather than read from ambient storage, so several clients with separate
// sessions can coexist (and be tested) in one process.
package session

import (
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/townbook/client-go/types"
)

// DefaultAvatar is substituted when a stored user has no avatar, so the
// persisted user always satisfies the guaranteed-avatar contract.
const DefaultAvatar = "https://cdn.townbook.app/avatars/default.png"

// Provider supplies the bearer token and current user for a client. A
// missing token is not an error; requests simply go out unauthenticated.
type Provider interface {
	Token() string
	CurrentUser() (types.AuthUser, bool)
}

// Anonymous is the zero session: no token, no user.
type Anonymous struct{}

func (Anonymous) Token() string                       { return "" }
func (Anonymous) CurrentUser() (types.AuthUser, bool) { return types.AuthUser{}, false }

// Static is a fixed in-memory session, mainly for tests and short-lived
// tools.
type Static struct {
	AuthToken string
	User      *types.AuthUser
}

func (s Static) Token() string { return s.AuthToken }

func (s Static) CurrentUser() (types.AuthUser, bool) {
	if s.User == nil {
		return types.AuthUser{}, false
	}
	return NormalizeUser(*s.User), true
}

// NormalizeUser enforces the stored-user invariant that Avatar is never
// empty.
func NormalizeUser(u types.AuthUser) types.AuthUser {
	if u.Avatar == "" {
		u.Avatar = DefaultAvatar
	}
	return u
}

// Claims is the subset of bearer-token claims the client cares about.
type Claims struct {
	UserID    string
	ExpiresAt time.Time
}

// ParseClaims decodes the claims of a bearer token without verifying the
// signature; the client is not the party that vouches for tokens, it only
// needs the identity and expiry hints inside.
func ParseClaims(token string) (Claims, error) {
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Claims{}, err
	}

	out := Claims{}
	switch id := claims["userId"].(type) {
	case string:
		out.UserID = id
	case float64:
		out.UserID = jwtNumberString(id)
	}
	if out.UserID == "" {
		if sub, ok := claims["sub"].(string); ok {
			out.UserID = sub
		}
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return out, nil
}

// Expired reports whether the token carries an exp claim in the past.
// Tokens without an exp claim never expire from the client's view.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

func jwtNumberString(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
