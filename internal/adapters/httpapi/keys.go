package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helium/internal/domain"
	"helium/internal/ports/input"
)

// HandleListKeys serves GET /translation-keys with search, category filter
// and pagination.
func (h *Handler) HandleListKeys(c *gin.Context) {
	query := input.ListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	var err error
	if query.Limit, err = intQuery(c, "limit", input.DefaultListLimit); err != nil {
		writeError(c, err)
		return
	}
	if query.Offset, err = intQuery(c, "offset", 0); err != nil {
		writeError(c, err)
		return
	}

	items, total, err := h.keyUseCase.ListKeys(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listKeysResponse{Items: items, Total: total})
}

// HandleGetKey serves GET /translation-keys/:key_id.
func (h *Handler) HandleGetKey(c *gin.Context) {
	keyID := c.Param("key_id")

	key, err := h.keyUseCase.GetKey(c.Request.Context(), keyID)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Detail: fmt.Sprintf("Translation key with ID %s not found", keyID)})
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, key)
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name + " must be an integer")
	}
	return v, nil
}
