package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
)

// Error writes a domain failure with the status code its kind maps to.
// Unknown errors are reported as 500 without leaking internals.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch errorz.KindOf(err) {
	case errorz.KindNotFound:
		status, message = http.StatusNotFound, err.Error()
	case errorz.KindConflict:
		status, message = http.StatusConflict, err.Error()
	case errorz.KindForbidden:
		status, message = http.StatusForbidden, err.Error()
	case errorz.KindInvalidArgument:
		status, message = http.StatusBadRequest, err.Error()
	case errorz.KindUnavailable:
		status, message = http.StatusServiceUnavailable, "storage temporarily unavailable"
	}

	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}
