package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func testSessionManager(t *testing.T) *SessionManager {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionManager(client, time.Hour, false)
}

func TestSessionRoundTrip(t *testing.T) {
	sm := testSessionManager(t)
	rec := httptest.NewRecorder()

	user := User{ID: 7, Name: "Sara", Email: "sara@uptown.example", Role: RoleFinancialManager}
	_, err := sm.Create(context.Background(), rec, user)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	loaded, err := sm.Load(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, user, *loaded)
}

func TestSessionLoadWithoutCookie(t *testing.T) {
	sm := testSessionManager(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	loaded, err := sm.Load(context.Background(), req)
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestSessionDestroy(t *testing.T) {
	sm := testSessionManager(t)
	rec := httptest.NewRecorder()
	_, err := sm.Create(context.Background(), rec, User{ID: 1, Role: RoleAdmin})
	require.NoError(t, err)

	cookie := rec.Result().Cookies()[0]
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(cookie)

	require.NoError(t, sm.Destroy(context.Background(), httptest.NewRecorder(), req))

	loaded, err := sm.Load(context.Background(), req)
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "Sara", User{Name: " Sara ", Email: "s@x"}.DisplayName())
	require.Equal(t, "s@x", User{Name: "   ", Email: "s@x"}.DisplayName())
}
