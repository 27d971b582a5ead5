package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-service/pkg/util"
)

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestGateAuthenticate(t *testing.T) {
	t.Parallel()

	const secret = "gate-secret"
	tm := NewTokenManager(secret, 30)
	gate := NewGate(tm)

	valid, _, err := tm.Issue(42, false)
	require.NoError(t, err)

	expired := signTestToken(t, secret, &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	foreign := signTestToken(t, "other-secret", &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	noID := signTestToken(t, secret, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name     string
		header   string
		wantCode string
		wantID   int64
	}{
		{name: "missing header", header: "", wantCode: util.CodeAuthMissingBearer},
		{name: "wrong scheme", header: "Basic " + valid, wantCode: util.CodeAuthMissingBearer},
		{name: "empty token", header: "Bearer ", wantCode: util.CodeAuthMissingBearer},
		{name: "no space", header: "Bearer" + valid, wantCode: util.CodeAuthMissingBearer},
		{name: "expired", header: "Bearer " + expired, wantCode: util.CodeAuthTokenExpired},
		{name: "wrong secret", header: "Bearer " + foreign, wantCode: util.CodeAuthInvalidToken},
		{name: "garbage", header: "Bearer junk", wantCode: util.CodeAuthInvalidToken},
		{name: "valid but no id claim", header: "Bearer " + noID, wantCode: util.CodeAuthClaimShape},
		{name: "valid", header: "Bearer " + valid, wantID: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := gate.Authenticate(tt.header)
			if tt.wantCode != "" {
				requireCode(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, userID)
		})
	}
}

func TestGateAuthenticate_SchemeCaseInsensitive(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("gate-secret", 30)
	gate := NewGate(tm)

	token, _, err := tm.Issue(7, false)
	require.NoError(t, err)

	userID, err := gate.Authenticate("bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}
