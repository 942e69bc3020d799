package handlers

import (
	"net/http"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/services"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService services.ClientServiceInterface
}

func NewClientHandler(clientService services.ClientServiceInterface) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var request models.CreateClientRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		renderError(c, consts.ErrorMissingRequiredFields.WithField("body", err.Error()))
		return
	}

	response, err := h.clientService.CreateClient(c.Request.Context(), request)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	response, err := h.clientService.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
