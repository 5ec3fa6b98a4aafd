// internal/api/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"job-board-api/internal/identity"
	"job-board-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userCtx = "currentUser" // Key to store the resolved user in context

// UserResolver is the slice of identity.Resolver the middleware needs.
type UserResolver interface {
	Resolve(ctx context.Context, profile identity.ExternalProfile) (*models.User, error)
}

// sessionClaims is the token payload the external authentication collaborator
// puts in the session cookie: the opaque subject plus a profile bundle.
type sessionClaims struct {
	Username        string `json:"username,omitempty"`
	Email           string `json:"email,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	jwt.RegisteredClaims
}

// resolveSession reads and verifies the session cookie, then resolves the
// subject to a local user. Returns nil without error when no cookie is
// present; any malformed or unverifiable cookie is an error.
func resolveSession(c *gin.Context, resolver UserResolver, secret, cookieName string) (*models.User, error) {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie == "" {
		return nil, nil
	}

	token, err := jwt.ParseWithClaims(cookie, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid session claims")
	}

	return resolver.Resolve(c.Request.Context(), identity.ExternalProfile{
		Subject:         claims.Subject,
		Username:        claims.Username,
		Email:           claims.Email,
		FirstName:       claims.FirstName,
		LastName:        claims.LastName,
		ProfileImageURL: claims.ProfileImageURL,
	})
}

// RequireAuth creates a Gin middleware that rejects any request without a
// valid session with 401. The resolved user is stored in the request context
// for downstream handlers.
func RequireAuth(resolver UserResolver, secret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveSession(c, resolver, secret, cookieName)
		if err != nil {
			log.Printf("Auth middleware: session rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(userCtx, user)
		c.Next()
	}
}

// OptionalAuth creates a Gin middleware that resolves the session when one is
// present but lets unauthenticated requests through untouched.
func OptionalAuth(resolver UserResolver, secret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveSession(c, resolver, secret, cookieName)
		if err != nil {
			log.Printf("Auth middleware: ignoring invalid session: %v", err)
		}
		if user != nil {
			c.Set(userCtx, user)
		}
		c.Next()
	}
}

// CurrentUser returns the resolved user from the request context, or an error
// if the request was not authenticated.
func CurrentUser(c *gin.Context) (*models.User, error) {
	userAny, exists := c.Get(userCtx)
	if !exists {
		return nil, errors.New("user not found in context")
	}

	user, ok := userAny.(*models.User)
	if !ok {
		return nil, errors.New("user in context is of invalid type")
	}

	return user, nil
}
