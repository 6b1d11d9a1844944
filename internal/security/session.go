package security

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	authSessionName  = "energytrack_auth"
	flashSessionName = "energytrack_flash"
)

// Flash kinds, matching the alert classes the views render.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash is a one-shot status message shown on the next rendered page.
type Flash struct {
	Kind string
	Text string
}

// Identity is the authenticated side of the session state. A session with no
// Identity is anonymous.
type Identity struct {
	UserID   string
	Username string
}

// Sessions tracks per-client authentication state and the flash mailbox in
// signed cookies. The flash lives in its own cookie so that destroying the
// auth session (logout, account deletion) does not swallow the pending
// message.
type Sessions struct {
	store *sessions.CookieStore
}

func NewSessions(secret string) *Sessions {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.MaxAge = 30 * 24 * 60 * 60
	return &Sessions{store: store}
}

// Current returns the authenticated identity, or ok=false for an anonymous
// session. A cookie that fails to decode counts as anonymous.
func (s *Sessions) Current(r *http.Request) (Identity, bool) {
	session, err := s.store.Get(r, authSessionName)
	if err != nil {
		return Identity{}, false
	}
	userID, ok := session.Values["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, false
	}
	username, _ := session.Values["username"].(string)
	return Identity{UserID: userID, Username: username}, true
}

func (s *Sessions) SignIn(w http.ResponseWriter, r *http.Request, userID, username string) error {
	session, _ := s.store.Get(r, authSessionName)
	session.Values["user_id"] = userID
	session.Values["username"] = username
	return session.Save(r, w)
}

// SignOut destroys the server-recognized session state: the cookie is expired
// and its values dropped, returning the client to anonymous.
func (s *Sessions) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, authSessionName)
	for k := range session.Values {
		delete(session.Values, k)
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// SetFlash stores a message in the single-slot mailbox, replacing any pending
// one.
func (s *Sessions) SetFlash(w http.ResponseWriter, r *http.Request, kind, text string) error {
	session, _ := s.store.Get(r, flashSessionName)
	session.Values["kind"] = kind
	session.Values["text"] = text
	return session.Save(r, w)
}

// TakeFlash reads and clears the pending message in one step. ok is false when
// the mailbox is empty.
func (s *Sessions) TakeFlash(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	session, _ := s.store.Get(r, flashSessionName)
	kind, _ := session.Values["kind"].(string)
	text, _ := session.Values["text"].(string)
	if kind == "" && text == "" {
		return Flash{}, false
	}
	delete(session.Values, "kind")
	delete(session.Values, "text")
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return Flash{}, false
	}
	return Flash{Kind: kind, Text: text}, true
}
