package api

import (
	"net/http"

	resdto "cavilia/internal/handler/dto/response"
	"cavilia/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CronHandler struct {
	dispatchUsecase *commands.DispatchUsecase
}

func NewCronHandler(dispatchUsecase *commands.DispatchUsecase) *CronHandler {
	return &CronHandler{dispatchUsecase: dispatchUsecase}
}

// @Summary Dispatch due reminders
// @Description Sends every reminder whose send-at has passed. Idempotent under overlapping triggers.
// @Tags cron
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DispatchResponse
// @Failure 401 {object} httperr.Response
// @Router /cron/reminders [post]
func (h *CronHandler) DispatchReminders(c *gin.Context) {
	result, err := h.dispatchUsecase.DispatchDue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.DispatchResponse{Sent: result.Sent, Failed: result.Failed})
}
