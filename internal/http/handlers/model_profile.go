package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minamhq/minam-backend/internal/http/response"
	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/services"
	"github.com/minamhq/minam-backend/internal/types"
)

type ModelProfileHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewModelProfileHandler(log *logger.Logger, catalog services.CatalogService) *ModelProfileHandler {
	return &ModelProfileHandler{
		log:     log.With("handler", "ModelProfileHandler"),
		catalog: catalog,
	}
}

func (h *ModelProfileHandler) Create(c *gin.Context) {
	var input types.ModelProfileCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	profile := h.catalog.CreateModelProfile(c.Request.Context(), input)
	response.RespondOK(c, profile)
}

func (h *ModelProfileHandler) List(c *gin.Context) {
	response.RespondOK(c, h.catalog.ListModelProfiles(c.Request.Context()))
}
