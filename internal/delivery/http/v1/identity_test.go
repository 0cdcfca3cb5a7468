package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelinov/go-task-api/internal/models"
)

func newResolverContext(authorization string) *gin.Context {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if authorization != "" {
		c.Request.Header.Set("Authorization", authorization)
	}
	return c
}

func signToken(t *testing.T, key []byte, claims jwt.RegisteredClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestStaticResolver(t *testing.T) {
	resolver := NewStaticResolver(testUserID)

	userID, err := resolver.Resolve(newResolverContext(""))
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

func TestBearerResolver(t *testing.T) {
	signingKey := []byte("test-signing-key")

	validToken := signToken(t, signingKey, jwt.RegisteredClaims{
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	foreignToken := signToken(t, []byte("another-key"), jwt.RegisteredClaims{
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	subjectlessToken := signToken(t, signingKey, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expiredToken := signToken(t, signingKey, jwt.RegisteredClaims{
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	tests := []struct {
		name          string
		authorization string
		wantUserID    string
		wantErr       bool
	}{
		{name: "valid token", authorization: "Bearer " + validToken, wantUserID: testUserID},
		{name: "missing header", wantErr: true},
		{name: "not a bearer scheme", authorization: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "wrong signing key", authorization: "Bearer " + foreignToken, wantErr: true},
		{name: "no subject claim", authorization: "Bearer " + subjectlessToken, wantErr: true},
		{name: "expired token", authorization: "Bearer " + expiredToken, wantErr: true},
	}

	resolver := NewBearerResolver(signingKey)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := resolver.Resolve(newResolverContext(tt.authorization))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUserID, userID)
		})
	}
}

func TestCurrentUserID_RejectsBadContextValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "non-string value", value: 42},
		{name: "empty string", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			handler := &handlerImpl{logger: zerolog.Nop()}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set(userIDCtxKey, tt.value)

			userID, ok := handler.currentUserID(c)
			assert.False(t, ok)
			assert.Empty(t, userID)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestIdentityMiddleware_ResolverFailure(t *testing.T) {
	router := setupRouter(&stubTaskService{t: t}, NewBearerResolver([]byte("key")), true)

	w := doRequest(router, http.MethodGet, "/tasks", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentityMiddleware_BearerEndToEnd(t *testing.T) {
	signingKey := []byte("test-signing-key")
	token := signToken(t, signingKey, jwt.RegisteredClaims{
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	var gotUserID string
	stub := &stubTaskService{t: t, listFn: func(_ context.Context, userID string) ([]*models.Task, error) {
		gotUserID = userID
		return []*models.Task{}, nil
	}}
	router := setupRouter(stub, NewBearerResolver(signingKey), true)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testUserID, gotUserID)
}
