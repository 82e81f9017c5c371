package api

import (
	"net/http"

	reqdto "cavilia/internal/handler/dto/request"
	resdto "cavilia/internal/handler/dto/response"
	"cavilia/internal/usecase/commands"
	"cavilia/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleUsecase *commands.ScheduleBlocksUsecase
	scheduleQueries *queries.ScheduleQueries
}

func NewScheduleHandler(scheduleUsecase *commands.ScheduleBlocksUsecase, scheduleQueries *queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		scheduleQueries: scheduleQueries,
	}
}

// @Summary Get schedule blocks
// @Description Day-offs and blocked time slots
// @Tags schedule
// @Produce json
// @Success 200 {object} resdto.ScheduleBlocksResponse
// @Router /schedule [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	view, err := h.scheduleQueries.GetScheduleBlocks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleBlocksView(view))
}

// @Summary Replace schedule blocks
// @Description Replaces the whole agenda with the submitted picture
// @Tags schedule
// @Accept json
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /schedule [put]
func (h *ScheduleHandler) ReplaceSchedule(c *gin.Context) {
	var req reqdto.ReplaceScheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.scheduleUsecase.Replace(c.Request.Context(), req.ToView()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
