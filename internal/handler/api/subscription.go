package api

import (
	"errors"
	"net/http"

	reqdto "cavilia/internal/handler/dto/request"
	"cavilia/internal/pkg/config"
	"cavilia/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUsecase *commands.SubscriptionUsecase
	pushCfg             config.PushConfig
}

func NewSubscriptionHandler(subscriptionUsecase *commands.SubscriptionUsecase, pushCfg config.PushConfig) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUsecase: subscriptionUsecase,
		pushCfg:             pushCfg,
	}
}

// @Summary VAPID public key
// @Description Key the browser needs to create a push subscription
// @Tags push
// @Produce json
// @Success 200 {object} map[string]string
// @Router /push/public-key [get]
func (h *SubscriptionHandler) GetPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"publicKey": h.pushCfg.VAPIDPublicKey})
}

// @Summary Register push subscription
// @Description Stores the browser subscription under the client's phone; re-registering replaces the previous one
// @Tags push
// @Accept json
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /push/subscribe [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req reqdto.RegisterSubscriptionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.subscriptionUsecase.Register(c.Request.Context(), req.ToInput()); err != nil {
		if errors.Is(err, commands.ErrInvalidSubscription) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove push subscription
// @Tags push
// @Param phone path string true "Client phone"
// @Success 204
// @Router /push/subscribe/{phone} [delete]
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	if err := h.subscriptionUsecase.Unregister(c.Request.Context(), c.Param("phone")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
