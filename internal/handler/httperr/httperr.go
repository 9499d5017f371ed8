package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the uniform error envelope: a stable user-presentable message
// plus the upstream/internal detail for diagnosability.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Details: details}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
