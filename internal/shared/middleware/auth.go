package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/response"
	"brashfox-backend/pkg/jwt"
)

const identityKey = "identity"

// AuthRequired rejects requests without a valid bearer access token and puts
// the caller's Identity in the context.
func AuthRequired(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authenticate(c, jwtManager)
		if !ok {
			return
		}
		if identity == nil {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// AuthOptional resolves the Identity when a bearer token is present. Requests
// without a token proceed anonymously; a malformed or expired token is still
// rejected.
func AuthOptional(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authenticate(c, jwtManager)
		if !ok {
			return
		}
		if identity != nil {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

// authenticate parses the Authorization header. It returns ok=false after
// writing an error response; identity is nil for anonymous requests.
func authenticate(c *gin.Context, jwtManager *jwt.Manager) (*permission.Identity, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, true
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Unauthorized(c, "invalid authorization header format")
		c.Abort()
		return nil, false
	}

	claims, err := jwtManager.ValidateAccessToken(parts[1])
	if err != nil {
		response.Unauthorized(c, "invalid token")
		c.Abort()
		return nil, false
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		response.Unauthorized(c, "invalid user ID in token")
		c.Abort()
		return nil, false
	}

	return &permission.Identity{
		UserID:   userID,
		Username: claims.Username,
		IsStaff:  claims.IsStaff,
	}, true
}

// Identity returns the authenticated principal, or nil for anonymous
// requests.
func Identity(c *gin.Context) *permission.Identity {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := v.(*permission.Identity)
	if !ok {
		return nil
	}
	return identity
}
