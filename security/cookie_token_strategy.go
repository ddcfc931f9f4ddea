package security

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/thundercloud/site-audit-service/secctx"
	"gopkg.in/square/go-jose.v2"
	"gopkg.in/square/go-jose.v2/jwt"
)

type sessionClaims struct {
	jwt.Claims
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

func NewCookieTokenStrategy(secret []byte) auth.Strategy {
	return &cookieTokenStrategyImpl{secret: secret}
}

type cookieTokenStrategyImpl struct {
	secret []byte
}

func (c cookieTokenStrategyImpl) Authenticate(ctx context.Context, r *http.Request) (auth.Info, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: session cookie not found")
	}

	jt, err := jwt.ParseSigned(cookie.Value)
	if err != nil {
		return nil, fmt.Errorf("token parse error: %w", err)
	}
	if len(jt.Headers) != 1 || jt.Headers[0].Algorithm != string(jose.HS256) {
		return nil, fmt.Errorf("authentication failed: unexpected session token algorithm")
	}

	var claims sessionClaims
	if err := jt.Claims(c.secret, &claims); err != nil {
		return nil, fmt.Errorf("claims extraction error: %w", err)
	}
	if err := claims.Validate(jwt.Expected{Time: time.Now()}); err != nil {
		return nil, fmt.Errorf("authentication failed, session token is not valid: %w", err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("authentication failed, session token has no subject")
	}

	userExtensions := auth.Extensions{}
	for _, role := range claims.Roles {
		userExtensions.Add(secctx.SystemRoleExt, role)
	}
	return auth.NewDefaultUser(claims.Name, claims.Subject, []string{}, userExtensions), nil
}
