package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processStartReq binds the start session request body. An empty body is
// fine: the use case falls back to the placeholder title.
func (h *handler) processStartReq(c *gin.Context) (startReq, error) {
	var req startReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return startReq{}, nil
		}
		return req, err
	}
	return req, nil
}

// processListReq binds the list query parameters. An unparsable or
// absent limit falls back to the default page size.
func (h *handler) processListReq(c *gin.Context) listReq {
	req := listReq{Limit: 20}
	_ = c.ShouldBindQuery(&req)
	return req
}
