package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"cavilia/internal/handler/httperr"
	"cavilia/internal/pkg/config"
	"cavilia/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// CronAuth guards the dispatch trigger with a shared bearer secret. The
// comparison is constant time; an unauthorized request is rejected before any
// dispatch work runs.
func CronAuth(cfg config.CronConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Secret)) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("invalid cron secret"), "Unauthorized", nil)
			return
		}
		c.Next()
	}
}
