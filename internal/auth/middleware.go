package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quizhub/internal/dto"
	"quizhub/internal/model"
	"quizhub/internal/repository"
)

// CallerKey holds the username the admin gate resolved for this request.
const CallerKey = "caller_username"

// RequireAdmin gates a route group on the caller's role. The token only
// asserts identity; the role is read fresh from the store so a demoted admin
// loses access immediately.
func RequireAdmin(issuer *TokenIssuer, users repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required."})
			return
		}

		claims, err := issuer.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Warn().Err(err).Msg("Admin gate: invalid session token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required."})
			return
		}

		user, err := users.FindByUsername(claims.Username)
		if err != nil || user.Role != model.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access required."})
			return
		}

		ctx.Set(CallerKey, user.Username)
		ctx.Next()
	}
}
