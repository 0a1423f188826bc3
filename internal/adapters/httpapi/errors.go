package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"helium/internal/domain"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// writeError maps a domain error to its transport status code. Not-found
// cases that want a contextual message are handled in the handlers; every
// other outcome goes through here.
func writeError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: ve.Reason})
	case errors.Is(err, domain.ErrKeyNotFound), errors.Is(err, domain.ErrTranslationNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrDatabaseUnavailable):
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "Database connection not available. Please check configuration."})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: err.Error()})
	}
}

func writeUnprocessable(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: "invalid request body: " + err.Error()})
}
