package handlers

import (
	"errors"
	"net/http"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"

	"github.com/gin-gonic/gin"
)

// renderError maps catalogue errors to HTTP statuses and writes the
// error body. Unknown errors never leak internals to the caller.
func renderError(c *gin.Context, err error) {
	var customErr *models.CustomError
	if !errors.As(err, &customErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	status := http.StatusBadRequest
	switch {
	case errors.Is(err, consts.ErrorClientNotFound), errors.Is(err, consts.ErrorLoanNotFound):
		status = http.StatusNotFound
	case errors.Is(err, consts.ErrorPaymentInProgress):
		status = http.StatusConflict
	case errors.Is(err, consts.ErrorSequenceUnavailable):
		status = http.StatusInternalServerError
	}

	body := gin.H{
		"error": customErr.Message,
		"code":  customErr.Code,
	}
	if len(customErr.Fields) > 0 {
		body["fields"] = customErr.Fields
	}
	c.JSON(status, body)
}
