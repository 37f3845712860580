package routes

import (
	"net/http"
	"strings"

	"assistec_os/internal/adapter/http/handlers"
	"assistec_os/pkg"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the authenticated user's id, injected by the session
// middleware that fronts this service. Authentication itself happens there;
// here we only require the identity to be present.
const UserIDHeader = "X-Usuario-ID"

func RequireUsuario() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			appErr := pkg.NewDomainErrorSimple("NAO_AUTENTICADO", "Não autenticado", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(handlers.ContextUserKey, userID)
		c.Next()
	}
}
