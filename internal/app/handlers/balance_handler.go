package handlers

import (
	"net/http"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	balanceService services.BalanceServiceInterface
}

func NewBalanceHandler(balanceService services.BalanceServiceInterface) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

func (h *BalanceHandler) GetBalance(c *gin.Context) {
	response, err := h.balanceService.Balance(c.Request.Context(), c.Param("id"), c.Query("date"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
