package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Message           string `json:"message"`
	DatabaseConnected bool   `json:"database_connected"`
}

// HandleHealth answers regardless of store reachability.
func (h *handlerImpl) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Message:           "Welcome to the task API",
		DatabaseConnected: h.storeReady,
	})
}
