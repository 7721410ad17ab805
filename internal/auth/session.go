package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName carries the session id.
const CookieName = "uptown_session"

// SessionManager stores authenticated principals in Redis keyed by a
// cookie-carried session id.
type SessionManager struct {
	client *redis.Client
	ttl    time.Duration
	secure bool
}

type sessionPayload struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// NewSessionManager constructs a SessionManager.
func NewSessionManager(client *redis.Client, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{client: client, ttl: ttl, secure: secure}
}

func (sm *SessionManager) key(id string) string {
	return "session:" + id
}

// Create persists a session for the user and sets the cookie.
func (sm *SessionManager) Create(ctx context.Context, w http.ResponseWriter, user User) (string, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(sessionPayload{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return "", err
	}
	if err := sm.client.Set(ctx, sm.key(id), payload, sm.ttl).Err(); err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   sm.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sm.ttl / time.Second),
	})
	return id, nil
}

// Load resolves the request's session cookie to a user. A missing or
// expired session yields a nil user without error.
func (sm *SessionManager) Load(ctx context.Context, r *http.Request) (*User, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, nil
		}
		return nil, err
	}
	raw, err := sm.client.Get(ctx, sm.key(cookie.Value)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var payload sessionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return &User{
		ID:    payload.UserID,
		Name:  payload.Name,
		Email: payload.Email,
		Role:  payload.Role,
	}, nil
}

// Destroy deletes the session and expires the cookie.
func (sm *SessionManager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	if err := sm.client.Del(ctx, sm.key(cookie.Value)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   sm.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return nil
}
