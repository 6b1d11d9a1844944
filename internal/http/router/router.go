package router

import (
	"energytrack/internal/db"
	"energytrack/internal/http/handlers"
	"energytrack/internal/security"

	"github.com/gorilla/mux"
)

func Setup(database *db.DB, sessions *security.Sessions, views handlers.Renderer) *mux.Router {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(database, sessions, views)
	deviceHandler := handlers.NewDeviceHandler(database, sessions, views)
	accountHandler := handlers.NewAccountHandler(database, sessions, views)

	r.HandleFunc("/", authHandler.ShowLogin).Methods("GET")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/cadastro", authHandler.ShowRegister).Methods("GET")
	r.HandleFunc("/cadastrar", authHandler.Register).Methods("POST")
	r.HandleFunc("/home", authHandler.Home).Methods("GET")
	r.HandleFunc("/logout", authHandler.Logout).Methods("GET")
	r.HandleFunc("/privacy_policy", authHandler.PrivacyPolicy).Methods("GET")

	r.HandleFunc("/cadastrar_dispositivo", deviceHandler.ShowForm).Methods("GET")
	r.HandleFunc("/cadastrar_dispositivo", deviceHandler.Create).Methods("POST")
	r.HandleFunc("/consultar_dispositivos", deviceHandler.List).Methods("GET")

	r.HandleFunc("/perfil", accountHandler.Profile).Methods("GET")
	r.HandleFunc("/excluir_conta", accountHandler.Delete).Methods("POST")

	return r
}
