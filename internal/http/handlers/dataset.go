package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/minamhq/minam-backend/internal/http/response"
	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/services"
	"github.com/minamhq/minam-backend/internal/types"
)

type DatasetHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewDatasetHandler(log *logger.Logger, catalog services.CatalogService) *DatasetHandler {
	return &DatasetHandler{
		log:     log.With("handler", "DatasetHandler"),
		catalog: catalog,
	}
}

func (h *DatasetHandler) Create(c *gin.Context) {
	var input types.DatasetCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	ds := h.catalog.CreateDataset(c.Request.Context(), input)
	response.RespondOK(c, ds)
}

func (h *DatasetHandler) List(c *gin.Context) {
	response.RespondOK(c, h.catalog.ListDatasets(c.Request.Context()))
}

// Preview returns the first rows of a dataset. An unknown or malformed id
// yields an empty list, not an error.
func (h *DatasetHandler) Preview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondOK(c, []types.Row{})
		return
	}
	response.RespondOK(c, h.catalog.PreviewDataset(c.Request.Context(), id))
}
