package handlers

import (
	"net/http"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentHandler(paymentService services.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var request models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		renderError(c, consts.ErrorMissingRequiredFields.WithField("body", err.Error()))
		return
	}

	response, err := h.paymentService.RecordPayment(c.Request.Context(), c.Param("id"), request)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
