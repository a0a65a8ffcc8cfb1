package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Kush146/note-app-Backend/internal/application/auth"
	"github.com/Kush146/note-app-Backend/internal/domain"
	"github.com/Kush146/note-app-Backend/internal/pkg/validate"
)

// AuthHandler handles the OTP login endpoints.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// SendOTP emails a one-time code to the requested address. Delivery and
// storage failures look identical to the client so deliverability of an
// address is never confirmed or denied.
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req auth.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.SendOTP(r.Context(), req); err != nil {
		slog.Error("send otp failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, MessageEnvelope{Message: "Failed to send OTP"})
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "OTP sent successfully"})
}

// VerifyOTP checks the submitted code and returns a session token. Both
// rejection paths use 400 with a message that never distinguishes an expired
// code from a wrong one.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req auth.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.svc.VerifyOTP(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusBadRequest, "OTP not found")
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusBadRequest, "Invalid or expired OTP")
		default:
			slog.Error("otp verification failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Server error during verification")
		}
		return
	}
	writeJSON(w, http.StatusOK, TokenEnvelope{Token: token})
}
