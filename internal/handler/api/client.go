package api

import (
	"net/http"

	resdto "cavilia/internal/handler/dto/response"
	"cavilia/internal/infra"
	"cavilia/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientQueries *queries.ClientQueries
}

func NewClientHandler(clientQueries *queries.ClientQueries) *ClientHandler {
	return &ClientHandler{clientQueries: clientQueries}
}

// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} resdto.ClientResponse
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	views, err := h.clientQueries.ListClients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.ClientResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromClientView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get client by phone
// @Tags clients
// @Produce json
// @Param phone path string true "Client phone"
// @Success 200 {object} resdto.ClientResponse
// @Failure 404 {object} map[string]string
// @Router /clients/{phone} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	view, err := h.clientQueries.GetClient(c.Request.Context(), c.Param("phone"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientView(view))
}
