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

type ProductHandler struct {
	log     *logger.Logger
	publish services.PublishService
	query   services.QueryService
}

func NewProductHandler(log *logger.Logger, publish services.PublishService, query services.QueryService) *ProductHandler {
	return &ProductHandler{
		log:     log.With("handler", "ProductHandler"),
		publish: publish,
		query:   query,
	}
}

func (h *ProductHandler) Publish(c *gin.Context) {
	var req types.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	product, apiErr := h.publish.Publish(c.Request.Context(), req)
	if apiErr != nil {
		response.RespondAPIError(c, apiErr)
		return
	}
	response.RespondOK(c, product)
}

func (h *ProductHandler) List(c *gin.Context) {
	response.RespondOK(c, h.publish.ListProducts(c.Request.Context()))
}

// Query is the consumer read path. Unknown or malformed product ids yield an
// empty row list, never an error.
func (h *ProductHandler) Query(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondOK(c, []types.Row{})
		return
	}
	var req services.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	response.RespondOK(c, h.query.Query(c.Request.Context(), id, req))
}
