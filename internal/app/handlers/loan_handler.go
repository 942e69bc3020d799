package handlers

import (
	"net/http"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loanService services.LoanServiceInterface
}

func NewLoanHandler(loanService services.LoanServiceInterface) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var request models.CreateLoanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		renderError(c, consts.ErrorMissingRequiredFields.WithField("body", err.Error()))
		return
	}

	response, err := h.loanService.CreateLoan(c.Request.Context(), request)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
