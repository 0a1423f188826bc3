package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helium/pkg/langtag"
)

// HandleLocalizations serves GET /localizations/:project_id/:locale as a
// flat key -> value map. Datastore failures still answer 200 with the error
// embedded in the payload.
func (h *Handler) HandleLocalizations(c *gin.Context) {
	projectID := c.Param("project_id")
	locale := langtag.Normalize(c.Param("locale"))

	localizations := h.localizationUseCase.Localizations(c.Request.Context(), projectID, locale)

	c.JSON(http.StatusOK, localizationsResponse{
		ProjectID:     projectID,
		Locale:        locale,
		Localizations: localizations,
	})
}
