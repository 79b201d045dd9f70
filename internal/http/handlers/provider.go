package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minamhq/minam-backend/internal/http/response"
	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/services"
	"github.com/minamhq/minam-backend/internal/types"
)

type ProviderHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewProviderHandler(log *logger.Logger, catalog services.CatalogService) *ProviderHandler {
	return &ProviderHandler{
		log:     log.With("handler", "ProviderHandler"),
		catalog: catalog,
	}
}

func (h *ProviderHandler) Create(c *gin.Context) {
	var input types.ProviderCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	provider := h.catalog.CreateProvider(c.Request.Context(), input)
	response.RespondOK(c, provider)
}

func (h *ProviderHandler) List(c *gin.Context) {
	response.RespondOK(c, h.catalog.ListProviders(c.Request.Context()))
}
