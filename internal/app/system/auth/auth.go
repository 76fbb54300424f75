// Package auth manages the console's signed session cookie.
//
// Sessions only identify the operator using the console shell; the CRUD
// API performs no per-route authorization; access control is delegated
// to the managed backend per the product's scope.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

type ctxKey int

const userKey ctxKey = iota

// SessionUser is the identity stored in the session cookie.
type SessionUser struct {
	UID   string
	Email string
	Name  string
}

// SessionManager wraps the cookie store and the session settings.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds a cookie-backed session manager. An empty key
// is replaced with a random one, which invalidates sessions on restart
// and is only acceptable in development.
func NewSessionManager(key, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if name == "" {
		return nil, errors.New("session name must not be empty")
	}
	keyBytes := []byte(key)
	if len(keyBytes) == 0 {
		logger.Warn("no session key configured; generating a random key")
		keyBytes = securecookie.GenerateRandomKey(32)
		if keyBytes == nil {
			return nil, errors.New("could not generate session key")
		}
	}

	store := sessions.NewCookieStore(keyBytes)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store, name: name, log: logger}, nil
}

// SignIn writes the user into a fresh session cookie.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, u SessionUser) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values["uid"] = u.UID
	sess.Values["email"] = u.Email
	sess.Values["name"] = u.Name
	return sess.Save(r, w)
}

// SignOut expires the session cookie.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// LoadSessionUser is middleware that places the signed-in user, if any,
// into the request context. It never rejects a request.
func (m *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.store.Get(r, m.name)
		if err == nil {
			uid, _ := sess.Values["uid"].(string)
			if uid != "" {
				email, _ := sess.Values["email"].(string)
				name, _ := sess.Values["name"].(string)
				u := &SessionUser{UID: uid, Email: email, Name: name}
				r = r.WithContext(context.WithValue(r.Context(), userKey, u))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the signed-in user from the request context, or nil.
func CurrentUser(r *http.Request) *SessionUser {
	u, _ := r.Context().Value(userKey).(*SessionUser)
	return u
}

// WithTestUser injects a user into the request context, bypassing the
// session middleware. For handler tests only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userKey, u))
}
