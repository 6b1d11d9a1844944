package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/", nil)
}

// requestWithCookies builds the follow-up request a client would send after
// receiving the recorded response. When the response set the same cookie more
// than once, the last write wins, as in a real user agent.
func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	latest := map[string]*http.Cookie{}
	var order []string
	for _, c := range rec.Result().Cookies() {
		if _, seen := latest[c.Name]; !seen {
			order = append(order, c.Name)
		}
		latest[c.Name] = c
	}
	req := newRequest()
	for _, name := range order {
		req.AddCookie(latest[name])
	}
	return req
}

func TestCurrentAnonymousByDefault(t *testing.T) {
	s := NewSessions("test-secret")

	_, ok := s.Current(newRequest())
	assert.False(t, ok)
}

func TestSignInThenSignOut(t *testing.T) {
	s := NewSessions("test-secret")

	rec := httptest.NewRecorder()
	require.NoError(t, s.SignIn(rec, newRequest(), "u1", "alice"))

	req := requestWithCookies(t, rec)
	identity, ok := s.Current(req)
	require.True(t, ok)
	assert.Equal(t, "u1", identity.UserID)
	assert.Equal(t, "alice", identity.Username)

	rec2 := httptest.NewRecorder()
	require.NoError(t, s.SignOut(rec2, req))

	_, ok = s.Current(requestWithCookies(t, rec2))
	assert.False(t, ok)
}

func TestCurrentIgnoresTamperedCookie(t *testing.T) {
	s := NewSessions("test-secret")

	req := newRequest()
	req.AddCookie(&http.Cookie{Name: authSessionName, Value: "not-a-valid-session"})

	_, ok := s.Current(req)
	assert.False(t, ok)
}

func TestTakeFlashClearsSlot(t *testing.T) {
	s := NewSessions("test-secret")

	rec := httptest.NewRecorder()
	require.NoError(t, s.SetFlash(rec, newRequest(), FlashInfo, "olá"))

	rec2 := httptest.NewRecorder()
	flash, ok := s.TakeFlash(rec2, requestWithCookies(t, rec))
	require.True(t, ok)
	assert.Equal(t, Flash{Kind: FlashInfo, Text: "olá"}, flash)

	rec3 := httptest.NewRecorder()
	_, ok = s.TakeFlash(rec3, requestWithCookies(t, rec2))
	assert.False(t, ok)
}

func TestSetFlashOverwritesPendingMessage(t *testing.T) {
	s := NewSessions("test-secret")

	rec := httptest.NewRecorder()
	require.NoError(t, s.SetFlash(rec, newRequest(), FlashSuccess, "primeira"))

	rec2 := httptest.NewRecorder()
	require.NoError(t, s.SetFlash(rec2, requestWithCookies(t, rec), FlashWarning, "segunda"))

	rec3 := httptest.NewRecorder()
	flash, ok := s.TakeFlash(rec3, requestWithCookies(t, rec2))
	require.True(t, ok)
	assert.Equal(t, Flash{Kind: FlashWarning, Text: "segunda"}, flash)
}

func TestSignOutKeepsPendingFlash(t *testing.T) {
	s := NewSessions("test-secret")

	rec := httptest.NewRecorder()
	req := newRequest()
	require.NoError(t, s.SignIn(rec, req, "u1", "alice"))
	require.NoError(t, s.SetFlash(rec, req, FlashInfo, "Você saiu com sucesso."))
	require.NoError(t, s.SignOut(rec, req))

	next := requestWithCookies(t, rec)
	_, ok := s.Current(next)
	assert.False(t, ok)

	rec2 := httptest.NewRecorder()
	flash, ok := s.TakeFlash(rec2, next)
	require.True(t, ok)
	assert.Equal(t, FlashInfo, flash.Kind)
}
