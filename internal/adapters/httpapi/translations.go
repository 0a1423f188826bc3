package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"helium/internal/domain"
)

// HandleUpdateTranslation serves PUT /translations/:translation_id.
func (h *Handler) HandleUpdateTranslation(c *gin.Context) {
	translationID := c.Param("translation_id")

	var req updateTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeUnprocessable(c, err)
		return
	}

	receipt, err := h.translationUseCase.UpdateTranslation(c.Request.Context(), translationID, *req.Value, req.UpdatedBy)
	if err != nil {
		if errors.Is(err, domain.ErrTranslationNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Detail: fmt.Sprintf("Translation with ID %s not found", translationID)})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, updateTranslationResponse{
		Success:       true,
		Message:       "Translation updated successfully",
		TranslationID: receipt.TranslationID,
		UpdatedBy:     receipt.UpdatedBy,
		Timestamp:     receipt.UpdatedAt,
	})
}

// HandleBulkUpdate serves PUT /translations/bulk. Row failures are reported
// per id; only an empty or malformed payload is rejected outright.
func (h *Handler) HandleBulkUpdate(c *gin.Context) {
	var req bulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeUnprocessable(c, err)
		return
	}

	report, err := h.translationUseCase.BulkUpdate(c.Request.Context(), req.Updates, req.UpdatedBy)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bulkUpdateResponse{
		Success:   true,
		Message:   "Bulk update completed",
		Summary:   report.Summary,
		Results:   report.Results,
		UpdatedBy: report.UpdatedBy,
		Timestamp: report.Timestamp,
	})
}
