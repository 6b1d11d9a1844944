package handlers

import (
	"log"
	"net/http"

	"energytrack/internal/db"
	"energytrack/internal/security"
)

type DeviceHandler struct {
	db       *db.DB
	sessions *security.Sessions
	views    Renderer
}

func NewDeviceHandler(db *db.DB, sessions *security.Sessions, views Renderer) *DeviceHandler {
	return &DeviceHandler{
		db:       db,
		sessions: sessions,
		views:    views,
	}
}

func (h *DeviceHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(h.sessions, w, r, "Faça login para cadastrar dispositivos."); !ok {
		return
	}
	renderPage(h.views, h.sessions, w, r, "cadastrar_dispositivo", nil)
}

func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireUser(h.sessions, w, r, "Faça login para cadastrar dispositivos.")
	if !ok {
		return
	}

	name := r.FormValue("nome")
	hours, hoursErr := parseNumber(r.FormValue("horas"))
	power, powerErr := parseNumber(r.FormValue("potencia"))
	if hoursErr != nil || powerErr != nil {
		h.sessions.SetFlash(w, r, security.FlashWarning,
			"Horas e potência devem ser números válidos.")
		http.Redirect(w, r, "/cadastrar_dispositivo", http.StatusSeeOther)
		return
	}

	if _, err := h.db.CreateDevice(r.Context(), identity.UserID, name, hours, power); err != nil {
		log.Printf("Failed to create device: %v", err)
		http.Error(w, "Erro interno do servidor.", http.StatusInternalServerError)
		return
	}

	h.sessions.SetFlash(w, r, security.FlashSuccess, "Dispositivo cadastrado com sucesso!")
	http.Redirect(w, r, "/consultar_dispositivos", http.StatusSeeOther)
}

func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireUser(h.sessions, w, r, "Faça login para acessar os dispositivos.")
	if !ok {
		return
	}

	devices, err := h.db.ListDevicesByOwner(r.Context(), identity.UserID)
	if err != nil {
		log.Printf("Failed to list devices: %v", err)
		http.Error(w, "Erro interno do servidor.", http.StatusInternalServerError)
		return
	}

	renderPage(h.views, h.sessions, w, r, "consultar_dispositivos", map[string]any{"Devices": devices})
}
