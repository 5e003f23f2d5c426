package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qs-lzh/movie-catalog/internal/auth"
)

const identityContextKey = "identity"

// RequireAuth extracts the bearer token from the Authorization header,
// verifies it and attaches the recovered Identity to the request context.
// Signature and expiry failures share one message so a caller can't tell
// which check failed.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			respondError(ctx, 401, "Access token required")
			ctx.Abort()
			return
		}

		identity, err := tokens.Verify(parts[1])
		if err != nil {
			respondError(ctx, 403, "Invalid or expired token")
			ctx.Abort()
			return
		}

		ctx.Set(identityContextKey, identity)
		ctx.Next()
	}
}

// RequirePermission checks the static access policy for the identity
// attached by RequireAuth. Runs strictly before any movie handler.
func RequirePermission(action auth.Action) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := IdentityFromContext(ctx)
		if !ok {
			respondError(ctx, 401, "Authentication required")
			ctx.Abort()
			return
		}
		if !auth.Allowed(identity.Role, action) {
			respondError(ctx, 403, "Permission denied")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

func IdentityFromContext(ctx *gin.Context) (*auth.Identity, bool) {
	value, exists := ctx.Get(identityContextKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok
}
