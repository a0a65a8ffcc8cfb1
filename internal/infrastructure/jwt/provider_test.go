package jwtinfra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_EmptySecret(t *testing.T) {
	_, err := NewProvider("", time.Hour)
	assert.Error(t, err)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	p, err := NewProvider("test-secret", time.Hour)
	require.NoError(t, err)

	signed, err := p.Sign("a@b.com", "")
	require.NoError(t, err)

	claims, err := p.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Empty(t, claims.Name)
}

func TestSignVerify_NameClaim(t *testing.T) {
	p, err := NewProvider("test-secret", time.Hour)
	require.NoError(t, err)

	signed, err := p.Sign("a@b.com", "Ada Lovelace")
	require.NoError(t, err)

	claims, err := p.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "Ada Lovelace", claims.Name)
}

func TestVerify_ExpiredToken(t *testing.T) {
	expired, err := NewProvider("test-secret", -time.Hour)
	require.NoError(t, err)
	signed, err := expired.Sign("a@b.com", "")
	require.NoError(t, err)

	p, err := NewProvider("test-secret", time.Hour)
	require.NoError(t, err)
	_, err = p.Verify(signed)
	assert.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	p1, err := NewProvider("secret-one", time.Hour)
	require.NoError(t, err)
	signed, err := p1.Sign("a@b.com", "")
	require.NoError(t, err)

	p2, err := NewProvider("secret-two", time.Hour)
	require.NoError(t, err)
	_, err = p2.Verify(signed)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	p, err := NewProvider("test-secret", time.Hour)
	require.NoError(t, err)
	_, err = p.Verify("not-a-jwt")
	assert.Error(t, err)
}
