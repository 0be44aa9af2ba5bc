package shared

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/service"
)

// RespondError writes an error response and logs the original error
// when present.
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// MappedHandlerError binds one domain error to a business code and
// client message.
type MappedHandlerError struct {
	Target  error
	Code    int
	Message string
}

// RespondWithMappedError resolves a domain error against the rules.
// Illegal transitions always surface with both states in the message
// so operators see exactly what was refused.
func RespondWithMappedError(c *gin.Context, err error, rules []MappedHandlerError, fallbackCode int, fallbackMsg string) {
	if errors.Is(err, service.ErrIllegalTransition) {
		response.Error(c, response.CodeIllegalTransition, err.Error())
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			RespondError(c, rule.Code, rule.Message, nil)
			return
		}
	}
	RespondError(c, fallbackCode, fallbackMsg, err)
}
