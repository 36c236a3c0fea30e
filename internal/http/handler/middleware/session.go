package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"strokescan/internal/core"

	"go.uber.org/zap"
)

const SessionCookieName = "strokescan_session"

const sessionKey ctxKey = "session"

//counterfeiter:generate -o fake -fake-name SessionResolver . SessionResolver
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (core.Session, error)
}

// SessionCookie writes and clears the cookie carrying the session token.
type SessionCookie struct {
	TTL    time.Duration
	Secure bool
}

func (c SessionCookie) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type SessionMiddleware struct {
	logs     *zap.SugaredLogger
	resolver SessionResolver
	cookie   SessionCookie
}

func NewSessionMiddleware(logger *zap.SugaredLogger, resolver SessionResolver, cookie SessionCookie) *SessionMiddleware {
	return &SessionMiddleware{
		logs:     logger,
		resolver: resolver,
		cookie:   cookie,
	}
}

// Session resolves the session cookie and puts the session on the request
// context. Requests with a bad or expired token continue anonymously and
// have the cookie cleared.
func (m *SessionMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(SessionCookieName)
		if err != nil || c.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.resolver.ResolveSession(r.Context(), c.Value)
		if err != nil {
			if errors.Is(err, core.ErrInvalidSession) {
				m.cookie.Clear(w)
			}
			m.logs.Warnw("session not resolved",
				"error", err,
				"request_id", RequestIDFromContext(r.Context()))
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *SessionMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok || !session.IsAdmin() {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithSession(ctx context.Context, session core.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

func SessionFromContext(ctx context.Context) (core.Session, bool) {
	session, ok := ctx.Value(sessionKey).(core.Session)
	return session, ok
}
