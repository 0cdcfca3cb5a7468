package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDCtxKey = "user_id"

var (
	errMissingAuthHeader = errors.New("authorization header required")
	errInvalidAuthHeader = errors.New("invalid authorization header")
)

// Resolver produces the owner identity for a request. Every query the
// service issues is filtered by this value, so swapping implementations
// is the only change needed to move from the placeholder identity to
// real token verification.
type Resolver interface {
	Resolve(c *gin.Context) (string, error)
}

// StaticResolver pins every request to one fixed user. It stands in for
// an external identity provider.
type StaticResolver struct {
	userID string
}

func NewStaticResolver(userID string) StaticResolver {
	return StaticResolver{userID: userID}
}

func (r StaticResolver) Resolve(*gin.Context) (string, error) {
	return r.userID, nil
}

// BearerResolver reads the user id from the subject claim of a signed
// bearer token.
type BearerResolver struct {
	signingKey []byte
}

func NewBearerResolver(signingKey []byte) BearerResolver {
	return BearerResolver{signingKey: signingKey}
}

func (r BearerResolver) Resolve(c *gin.Context) (string, error) {
	const authHeader = "Authorization"
	header := c.GetHeader(authHeader)
	if header == "" {
		return "", errMissingAuthHeader
	}

	const bearerPrefix = "Bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix {
		return "", errInvalidAuthHeader
	}

	claims, err := r.parseToken(parts[1])
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}

	return claims.Subject, nil
}

func (r BearerResolver) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return r.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse token claims")
	}
	return claims, nil
}

func (h *handlerImpl) HandleIdentityMiddleware(c *gin.Context) {
	userID, err := h.resolver.Resolve(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to resolve user identity")
		abort(c, newStatusTextError(http.StatusUnauthorized))
		return
	}

	c.Set(userIDCtxKey, userID)
	c.Next()
}

// HandleStoreGuardMiddleware fails store-backed routes fast instead of
// attempting a doomed remote call.
func (h *handlerImpl) HandleStoreGuardMiddleware(c *gin.Context) {
	if !h.storeReady {
		h.logger.Warn().Msg("store route hit without a configured store")
		abort(c, newStoreUnavailableError())
		return
	}
	c.Next()
}

func (h *handlerImpl) currentUserID(c *gin.Context) (string, bool) {
	userIDValue, exists := c.Get(userIDCtxKey)
	if !exists {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newStatusTextError(http.StatusUnauthorized))
		return "", false
	}

	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		h.logger.Error().Msg("user id in context is not a string")
		abort(c, newStatusTextError(http.StatusUnauthorized))
		return "", false
	}

	return userID, true
}
