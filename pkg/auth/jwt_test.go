package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestExpiration(t *testing.T) {
	svc, err := NewJWTService("secret", 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, svc.Expiration())

	svc, err = NewJWTService("secret", 0)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.Expiration())
}

func TestGenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService("secret", time.Hour)
	require.NoError(t, err)

	token, expires, err := svc.GenerateToken("session-42")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-42", claims.SessionID)
	assert.Equal(t, "session-42", claims.Subject)
}

func TestValidateRejectsOtherSecret(t *testing.T) {
	a, _ := NewJWTService("secret-a", time.Hour)
	b, _ := NewJWTService("secret-b", time.Hour)

	token, _, err := a.GenerateToken("s")
	require.NoError(t, err)

	_, err = b.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpired(t *testing.T) {
	svc, _ := NewJWTService("secret", time.Hour)

	past := time.Now().Add(-2 * time.Hour)
	claims := SessionClaims{
		SessionID: "s",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
			Issuer:    issuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, _ := NewJWTService("secret", time.Hour)
	token, _, _ := svc.GenerateToken("session-7")

	r := gin.New()
	r.GET("/me", SessionMiddleware(svc), func(c *gin.Context) {
		c.String(http.StatusOK, GetSessionID(c))
	})

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer " + token, http.StatusOK, "session-7"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Token " + token, http.StatusUnauthorized, ""},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}
