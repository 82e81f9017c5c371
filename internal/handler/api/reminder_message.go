package api

import (
	"errors"
	"net/http"

	reqdto "cavilia/internal/handler/dto/request"
	resdto "cavilia/internal/handler/dto/response"
	"cavilia/internal/usecase/commands"
	"cavilia/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReminderMessageHandler struct {
	templateUsecase *commands.TemplateUsecase
	scheduleQueries *queries.ScheduleQueries
}

func NewReminderMessageHandler(templateUsecase *commands.TemplateUsecase, scheduleQueries *queries.ScheduleQueries) *ReminderMessageHandler {
	return &ReminderMessageHandler{
		templateUsecase: templateUsecase,
		scheduleQueries: scheduleQueries,
	}
}

// @Summary Get reminder message template
// @Description Current template; falls back to the default text when never saved
// @Tags reminder-message
// @Produce json
// @Success 200 {object} resdto.TemplateResponse
// @Router /reminder-message [get]
func (h *ReminderMessageHandler) GetTemplate(c *gin.Context) {
	message, err := h.scheduleQueries.GetReminderTemplate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.TemplateResponse{Message: message})
}

// @Summary Save reminder message template
// @Description Applies to reminders scheduled from now on; queued reminders keep their frozen text
// @Tags reminder-message
// @Accept json
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /reminder-message [put]
func (h *ReminderMessageHandler) SaveTemplate(c *gin.Context) {
	var req reqdto.SaveTemplateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.templateUsecase.Save(c.Request.Context(), req.Message); err != nil {
		if errors.Is(err, commands.ErrInvalidTemplateInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Template message cannot be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
