//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cavilia/internal/handler/middleware"
	"cavilia/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCronTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/cron/reminders", middleware.CronAuth(config.CronConfig{Secret: secret}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestCronAuth(t *testing.T) {
	testCases := []struct {
		name           string
		authorization  string
		expectedStatus int
	}{
		{name: "correct secret passes", authorization: "Bearer cron-secret", expectedStatus: http.StatusOK},
		{name: "missing header", authorization: "", expectedStatus: http.StatusUnauthorized},
		{name: "wrong secret", authorization: "Bearer wrong", expectedStatus: http.StatusUnauthorized},
		{name: "missing bearer prefix", authorization: "cron-secret", expectedStatus: http.StatusUnauthorized},
		{name: "lowercase scheme", authorization: "bearer cron-secret", expectedStatus: http.StatusUnauthorized},
	}

	router := newCronTestRouter("cron-secret")

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/cron/reminders", nil)
			if tc.authorization != "" {
				req.Header.Set("Authorization", tc.authorization)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}
