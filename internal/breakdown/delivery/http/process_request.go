package http

import (
	"github.com/gin-gonic/gin"
)

func (h handler) processDecomposeReq(c *gin.Context) (decomposeReq, error) {
	ctx := c.Request.Context()

	var req decomposeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "breakdown.delivery.http.processDecomposeReq: %v", err)
		return decomposeReq{}, err
	}

	return req, nil
}
