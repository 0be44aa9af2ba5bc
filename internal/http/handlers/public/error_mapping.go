package public

import (
	"github.com/gin-gonic/gin"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/service"
)

var orderCreateErrorRules = []shared.MappedHandlerError{
	{Target: service.ErrEmptyOrder, Code: response.CodeBadRequest, Message: "order must contain at least one item"},
	{Target: service.ErrInvalidQuantity, Code: response.CodeBadRequest, Message: "item quantity must be positive"},
	{Target: service.ErrLocationNotFound, Code: response.CodeNotFound, Message: "location not found"},
	{Target: service.ErrLocationInactive, Code: response.CodeBadRequest, Message: "location is not accepting orders"},
	{Target: service.ErrProductNotFound, Code: response.CodeBadRequest, Message: "unknown product in order"},
	{Target: service.ErrProductUnavailable, Code: response.CodeBadRequest, Message: "product is not orderable"},
}

func respondOrderCreateError(c *gin.Context, err error) {
	shared.RespondWithMappedError(c, err, orderCreateErrorRules, response.CodeInternal, "failed to create order")
}
