package handlers

import (
	"errors"
	"log"
	"net/http"

	"energytrack/internal/db"
	"energytrack/internal/security"
)

type AuthHandler struct {
	db       *db.DB
	sessions *security.Sessions
	views    Renderer
}

func NewAuthHandler(db *db.DB, sessions *security.Sessions, views Renderer) *AuthHandler {
	return &AuthHandler{
		db:       db,
		sessions: sessions,
		views:    views,
	}
}

// ShowLogin renders the entry page.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	renderPage(h.views, h.sessions, w, r, "login", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.db.GetUserByUsername(r.Context(), username)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		log.Printf("Failed to look up user: %v", err)
		http.Error(w, "Erro interno do servidor.", http.StatusInternalServerError)
		return
	}
	if err != nil || !security.CheckPassword(user.PasswordHash, password) {
		h.sessions.SetFlash(w, r, security.FlashDanger, "Usuário ou senha incorretos.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := h.sessions.SignIn(w, r, user.ID, user.Username); err != nil {
		log.Printf("Failed to save session: %v", err)
		http.Error(w, "Erro interno do servidor.", http.StatusInternalServerError)
		return
	}

	h.sessions.SetFlash(w, r, security.FlashSuccess, "Login bem-sucedido!")
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	renderPage(h.views, h.sessions, w, r, "cadastro", nil)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	accepted, err := parseAcceptance(r.FormValue("acceptPrivacy"))
	if err != nil || !accepted {
		h.sessions.SetFlash(w, r, security.FlashWarning,
			"Você deve aceitar a Política de Privacidade para se cadastrar.")
		http.Redirect(w, r, "/cadastro", http.StatusSeeOther)
		return
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		http.Error(w, "Erro interno do servidor.", http.StatusInternalServerError)
		return
	}

	if _, err := h.db.CreateUser(r.Context(), username, hash); err != nil {
		if errors.Is(err, db.ErrDuplicateUser) {
			h.sessions.SetFlash(w, r, security.FlashWarning, "Usuário já existe.")
			http.Redirect(w, r, "/cadastro", http.StatusSeeOther)
			return
		}
		log.Printf("Failed to create user: %v", err)
		http.Error(w, "Erro interno do servidor.", http.StatusInternalServerError)
		return
	}

	h.sessions.SetFlash(w, r, security.FlashSuccess, "Cadastro realizado com sucesso!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireUser(h.sessions, w, r, "Você precisa fazer login primeiro.")
	if !ok {
		return
	}
	renderPage(h.views, h.sessions, w, r, "home", map[string]any{"Username": identity.Username})
}

// Logout destroys the session. Safe to call when already anonymous.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.SetFlash(w, r, security.FlashInfo, "Você saiu com sucesso.")
	if err := h.sessions.SignOut(w, r); err != nil {
		log.Printf("Failed to destroy session: %v", err)
		http.Error(w, "Erro ao sair do sistema.", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) PrivacyPolicy(w http.ResponseWriter, r *http.Request) {
	renderPage(h.views, h.sessions, w, r, "privacy_policy", nil)
}
