package handlers

import (
	"log"
	"net/http"

	"energytrack/internal/db"
	"energytrack/internal/security"
)

type AccountHandler struct {
	db       *db.DB
	sessions *security.Sessions
	views    Renderer
}

func NewAccountHandler(db *db.DB, sessions *security.Sessions, views Renderer) *AccountHandler {
	return &AccountHandler{
		db:       db,
		sessions: sessions,
		views:    views,
	}
}

func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireUser(h.sessions, w, r, "Faça login para acessar seu perfil.")
	if !ok {
		return
	}
	renderPage(h.views, h.sessions, w, r, "perfil", map[string]any{"Username": identity.Username})
}

// Delete removes the account and everything it owns, then ends the session.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireUser(h.sessions, w, r, "Faça login para excluir sua conta.")
	if !ok {
		return
	}

	if err := h.db.DeleteAccount(r.Context(), identity.UserID); err != nil {
		log.Printf("Failed to delete account: %v", err)
		http.Error(w, "Erro interno do servidor.", http.StatusInternalServerError)
		return
	}

	h.sessions.SetFlash(w, r, security.FlashInfo, "Sua conta foi excluída com sucesso.")
	if err := h.sessions.SignOut(w, r); err != nil {
		log.Printf("Failed to destroy session: %v", err)
		http.Error(w, "Erro ao excluir a conta.", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
