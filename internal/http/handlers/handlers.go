package handlers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"energytrack/internal/security"
)

// Renderer is the templating collaborator: it renders a named view with a bag
// of parameters.
type Renderer interface {
	Render(w http.ResponseWriter, name string, data map[string]any) error
}

var errInvalidNumber = errors.New("invalid numeric field")

// requireUser gates the protected routes. Anonymous clients get a warning
// flash and a redirect to the login page; this is the application's only
// access control.
func requireUser(s *security.Sessions, w http.ResponseWriter, r *http.Request, message string) (security.Identity, bool) {
	identity, ok := s.Current(r)
	if ok {
		return identity, true
	}
	s.SetFlash(w, r, security.FlashWarning, message)
	http.Redirect(w, r, "/", http.StatusFound)
	return security.Identity{}, false
}

// renderPage takes the pending flash, if any, into the data bag and renders
// the view.
func renderPage(v Renderer, s *security.Sessions, w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if flash, ok := s.TakeFlash(w, r); ok {
		data["Flash"] = flash
	}
	if err := v.Render(w, name, data); err != nil {
		log.Printf("Failed to render %s: %v", name, err)
	}
}

// parseAcceptance interprets the privacy-policy checkbox. Browsers send "on"
// for a checked box and omit the field entirely otherwise; any other value is
// malformed and rejected.
func parseAcceptance(value string) (bool, error) {
	switch value {
	case "":
		return false, nil
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("malformed checkbox value %q", value)
}

// parseNumber coerces a form field to a finite float64. NaN and infinities
// count as invalid.
func parseNumber(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errInvalidNumber
	}
	return f, nil
}
