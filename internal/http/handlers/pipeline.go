package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minamhq/minam-backend/internal/http/response"
	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/services"
	"github.com/minamhq/minam-backend/internal/types"
)

type PipelineHandler struct {
	log      *logger.Logger
	pipeline services.PipelineService
}

func NewPipelineHandler(log *logger.Logger, pipeline services.PipelineService) *PipelineHandler {
	return &PipelineHandler{
		log:      log.With("handler", "PipelineHandler"),
		pipeline: pipeline,
	}
}

func (h *PipelineHandler) Run(c *gin.Context) {
	var req types.PipelineRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	proposalID, proposal, apiErr := h.pipeline.Run(c.Request.Context(), req)
	if apiErr != nil {
		response.RespondAPIError(c, apiErr)
		return
	}
	response.RespondOK(c, types.PipelineRunResult{
		ProposalID: proposalID,
		Result:     proposal,
	})
}
