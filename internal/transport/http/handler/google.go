package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Kush146/note-app-Backend/internal/application/auth"
)

// GoogleHandler handles the Google sign-in redirect flow. Its failure mode is
// browser-facing: errors redirect back to the client app's login page rather
// than returning JSON, because the caller mid-flow is a browser, not an API
// consumer.
type GoogleHandler struct {
	svc          auth.Service
	clientAppURL string
}

func NewGoogleHandler(svc auth.Service, clientAppURL string) *GoogleHandler {
	return &GoogleHandler{svc: svc, clientAppURL: clientAppURL}
}

// Login redirects the browser to the Google consent page.
func (h *GoogleHandler) Login(w http.ResponseWriter, r *http.Request) {
	authURL, err := h.svc.GoogleAuthURL()
	if err != nil {
		slog.Error("google auth url failed", "err", err)
		http.Redirect(w, r, h.clientAppURL+"/login", http.StatusFound)
		return
	}
	http.Redirect(w, r, authURL, http.StatusFound)
}

// Callback handles the provider redirect: exchanges the code, mints a session
// token and hands the browser back to the client app with the token in the
// query string.
func (h *GoogleHandler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Warn("google callback without code", "error", r.URL.Query().Get("error"))
		http.Redirect(w, r, h.clientAppURL+"/login", http.StatusFound)
		return
	}
	token, err := h.svc.GoogleCallback(r.Context(), code)
	if err != nil {
		slog.Error("google callback failed", "err", err)
		http.Redirect(w, r, h.clientAppURL+"/login", http.StatusFound)
		return
	}
	http.Redirect(w, r, h.clientAppURL+"/dashboard?token="+url.QueryEscape(token), http.StatusFound)
}
