package api

import (
	"errors"
	"net/http"

	reqdto "cavilia/internal/handler/dto/request"
	resdto "cavilia/internal/handler/dto/response"
	"cavilia/internal/usecase/commands"
	"cavilia/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReminderRuleHandler struct {
	ruleUsecase *commands.ReminderRuleUsecase
	ruleQueries *queries.ReminderRuleQueries
}

func NewReminderRuleHandler(ruleUsecase *commands.ReminderRuleUsecase, ruleQueries *queries.ReminderRuleQueries) *ReminderRuleHandler {
	return &ReminderRuleHandler{
		ruleUsecase: ruleUsecase,
		ruleQueries: ruleQueries,
	}
}

// @Summary List reminder rules
// @Tags reminder-rules
// @Produce json
// @Success 200 {array} resdto.ReminderRuleResponse
// @Router /reminder-settings [get]
func (h *ReminderRuleHandler) ListRules(c *gin.Context) {
	views, err := h.ruleQueries.ListRules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.ReminderRuleResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromRuleView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create reminder rule
// @Description Simple (unit + quantity) or composite (days/hours/minutes) offset before the appointment
// @Tags reminder-rules
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRuleRequest true "Rule"
// @Success 201 {object} resdto.CreatedRuleResponse
// @Failure 400 {object} map[string]string
// @Router /reminder-settings [post]
func (h *ReminderRuleHandler) CreateRule(c *gin.Context) {
	var req reqdto.CreateRuleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.ruleUsecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidRuleInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder rule"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedRuleResponse{ID: id})
}

// @Summary Toggle reminder rule
// @Tags reminder-rules
// @Accept json
// @Param id path string true "Rule ID"
// @Param request body reqdto.ToggleRuleRequest true "Active flag"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /reminder-settings/{id} [patch]
func (h *ReminderRuleHandler) ToggleRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rule ID format"})
		return
	}

	var req reqdto.ToggleRuleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.ruleUsecase.SetActive(c.Request.Context(), id, req.Active); err != nil {
		if errors.Is(err, commands.ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder rule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete reminder rule
// @Tags reminder-rules
// @Param id path string true "Rule ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /reminder-settings/{id} [delete]
func (h *ReminderRuleHandler) DeleteRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rule ID format"})
		return
	}

	if err := h.ruleUsecase.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder rule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
