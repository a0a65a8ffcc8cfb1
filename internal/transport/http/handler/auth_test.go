package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kush146/note-app-Backend/internal/application/auth"
	"github.com/Kush146/note-app-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) SendOTP(ctx context.Context, req auth.SendOTPRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAuthSvc) VerifyOTP(ctx context.Context, req auth.VerifyOTPRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockAuthSvc) GoogleAuthURL() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockAuthSvc) GoogleCallback(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

// --- SendOTP ---

func TestSendOTP_OK(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("SendOTP", mock.Anything, auth.SendOTPRequest{Email: "u@x.com"}).Return(nil)

	rr := postJSON(t, NewAuthHandler(svc).SendOTP, map[string]string{"email": "u@x.com"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "OTP sent successfully")
	svc.AssertExpectations(t)
}

func TestSendOTP_MissingEmail(t *testing.T) {
	svc := &mockAuthSvc{}
	rr := postJSON(t, NewAuthHandler(svc).SendOTP, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "SendOTP", mock.Anything, mock.Anything)
}

func TestSendOTP_InvalidEmail(t *testing.T) {
	svc := &mockAuthSvc{}
	rr := postJSON(t, NewAuthHandler(svc).SendOTP, map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSendOTP_DeliveryFailure_GenericError(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("SendOTP", mock.Anything, mock.Anything).Return(assert.AnError)

	rr := postJSON(t, NewAuthHandler(svc).SendOTP, map[string]string{"email": "u@x.com"})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to send OTP")
	// The underlying cause must not leak.
	assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
}

// --- VerifyOTP ---

func TestVerifyOTP_OK_ReturnsToken(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, auth.VerifyOTPRequest{Email: "u@x.com", OTP: "123456"}).
		Return("session-token", nil)

	rr := postJSON(t, NewAuthHandler(svc).VerifyOTP, map[string]string{"email": "u@x.com", "otp": "123456"})

	assert.Equal(t, http.StatusOK, rr.Code)
	var env TokenEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, "session-token", env.Token)
}

func TestVerifyOTP_NotFound(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, mock.Anything).Return("", domain.ErrNotFound)

	rr := postJSON(t, NewAuthHandler(svc).VerifyOTP, map[string]string{"email": "u@x.com", "otp": "123456"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "OTP not found")
}

func TestVerifyOTP_InvalidOrExpired(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, mock.Anything).Return("", domain.ErrUnauthorized)

	rr := postJSON(t, NewAuthHandler(svc).VerifyOTP, map[string]string{"email": "u@x.com", "otp": "999999"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid or expired OTP")
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	svc := &mockAuthSvc{}
	rr := postJSON(t, NewAuthHandler(svc).VerifyOTP, map[string]string{"email": "u@x.com"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "VerifyOTP", mock.Anything, mock.Anything)
}

func TestVerifyOTP_InfrastructureFailure(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyOTP", mock.Anything, mock.Anything).Return("", assert.AnError)

	rr := postJSON(t, NewAuthHandler(svc).VerifyOTP, map[string]string{"email": "u@x.com", "otp": "123456"})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Server error during verification")
}
