package middleware

import (
	"context"
	"strings"

	"vlog-hub/internal/entity"
	"vlog-hub/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	actorKey  = "actor"
	tokenKey  = "token"
	userIDKey = "user_id"
)

// ActorResolver turns a bearer token into the acting user.
type ActorResolver interface {
	ResolveActor(ctx context.Context, token string) (*entity.Actor, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the resolved actor on the context.
func AuthMiddleware(resolver ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithError(c, apperror.New(apperror.CodeUnauthorized, "Authorization token required"))
			return
		}

		actor, err := resolver.ResolveActor(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, err)
			return
		}

		SetActor(c, actor, token)
		c.Next()
	}
}

// OptionalAuth resolves the actor when a valid bearer token is present and
// lets the request through either way.
func OptionalAuth(resolver ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if actor, err := resolver.ResolveActor(c.Request.Context(), token); err == nil {
				SetActor(c, actor, token)
			}
		}
		c.Next()
	}
}

// SetActor stores the authenticated actor and the token it was resolved
// from on the request context.
func SetActor(c *gin.Context, actor *entity.Actor, token string) {
	c.Set(actorKey, actor)
	c.Set(tokenKey, token)
	c.Set(userIDKey, actor.ID)
}

// ActorFrom returns the actor stored by the auth middleware, or nil.
func ActorFrom(c *gin.Context) *entity.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*entity.Actor)
	return actor
}

func TokenFrom(c *gin.Context) string {
	return c.GetString(tokenKey)
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func abortWithError(c *gin.Context, err error) {
	code := apperror.CodeOf(err)
	c.AbortWithStatusJSON(code.HTTPStatus(), gin.H{"error": apperror.PublicMessage(err), "code": code})
}
