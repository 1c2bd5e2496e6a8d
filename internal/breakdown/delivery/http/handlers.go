package http

import (
	"github.com/gin-gonic/gin"

	"focusflow/pkg/response"
)

// Decompose godoc
// @Summary     Break a task into steps
// @Description Asks the model to split a vague task into 3-7 concrete steps with minute estimates.
// @Tags        Breakdown
// @Accept      json
// @Produce     json
// @Param       body body decomposeReq true "Task to decompose"
// @Success     200 {array}  stepResp
// @Failure     400 {object} response.ErrorBody "Invalid body"
// @Failure     429 {object} response.ErrorBody "Rate limited"
// @Failure     502 {object} response.ErrorBody "Model call or parse failure"
// @Failure     503 {object} response.ErrorBody "No API key configured"
// @Router      /api/breakdown [POST]
func (h *handler) Decompose(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDecomposeReq(c)
	if err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	output, err := h.uc.Decompose(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Decompose: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStepsResp(output))
}
