package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	apiName    = "Helium Localization Manager API"
	apiVersion = "1.0.0"
)

// HandleRoot serves the liveness banner.
func (h *Handler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, rootResponse{
		Message: apiName,
		Version: apiVersion,
		Status:  "running",
	})
}

// HandleHealth probes the datastore. It always answers 200 so that
// orchestration probes can tell "process up, datastore down" from
// "process down".
func (h *Handler) HandleHealth(c *gin.Context) {
	report := h.healthUseCase.Check(c.Request.Context())

	resp := healthResponse{Timestamp: report.Timestamp}
	if report.Healthy {
		resp.Status = "healthy"
		resp.Database = "connected"
	} else {
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		resp.Error = report.Error
	}
	c.JSON(http.StatusOK, resp)
}
