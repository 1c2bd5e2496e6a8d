package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "focusflow/pkg/errors"
)

// OK sends 200 with the payload as-is. Handlers shape their own bodies;
// this package only decides status codes and the error envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error renders an error as {"detail": message} with the status carried
// by the HTTPError. Anything that is not an HTTPError is treated as an
// unexpected failure and rendered as 500 without leaking the message.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.AbortWithStatusJSON(httpErr.Status, ErrorBody{Detail: httpErr.Message})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody{Detail: "internal server error"})
}

// BadRequest is a shortcut for 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{Detail: message})
}
