package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newValidationError(message string) apiError {
	return newAPIError(http.StatusUnprocessableEntity, message)
}

func newNotFoundError() apiError {
	return newAPIError(http.StatusNotFound, "task not found")
}

// newStoreError deliberately hides the underlying store failure from the
// client; the cause is logged server-side.
func newStoreError() apiError {
	return newStatusTextError(http.StatusInternalServerError)
}

func newStoreUnavailableError() apiError {
	return newAPIError(http.StatusServiceUnavailable, "store connection not configured")
}
