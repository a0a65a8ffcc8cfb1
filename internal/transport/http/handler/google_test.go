package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kush146/note-app-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const clientApp = "http://localhost:3000"

func TestGoogleLogin_RedirectsToProvider(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("GoogleAuthURL").Return("https://accounts.google.com/o/oauth2/auth?state=abc", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google", nil)
	rr := httptest.NewRecorder()
	NewGoogleHandler(svc, clientApp).Login(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Contains(t, rr.Header().Get("Location"), "accounts.google.com")
}

func TestGoogleCallback_NoCode_RedirectsToLogin(t *testing.T) {
	svc := &mockAuthSvc{}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?error=access_denied", nil)
	rr := httptest.NewRecorder()
	NewGoogleHandler(svc, clientApp).Callback(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, clientApp+"/login", rr.Header().Get("Location"))
	svc.AssertNotCalled(t, "GoogleCallback", mock.Anything, mock.Anything)
}

func TestGoogleCallback_NoEmail_RedirectsToLogin(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("GoogleCallback", mock.Anything, "code-123").Return("", domain.ErrUnauthorized)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=code-123", nil)
	rr := httptest.NewRecorder()
	NewGoogleHandler(svc, clientApp).Callback(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, clientApp+"/login", rr.Header().Get("Location"))
}

func TestGoogleCallback_Success_RedirectsToDashboardWithToken(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("GoogleCallback", mock.Anything, "code-123").Return("session-token", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=code-123", nil)
	rr := httptest.NewRecorder()
	NewGoogleHandler(svc, clientApp).Callback(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, clientApp+"/dashboard?token=session-token", rr.Header().Get("Location"))
}
