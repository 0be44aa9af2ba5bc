package staff

import (
	"github.com/gin-gonic/gin"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/service"
)

var orderWorkflowErrorRules = []shared.MappedHandlerError{
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Message: "order not found"},
	{Target: service.ErrOrderItemNotFound, Code: response.CodeNotFound, Message: "order item not found"},
	{Target: service.ErrVersionConflict, Code: response.CodeConflict, Message: "order was modified concurrently, reload and retry"},
	{Target: service.ErrStatusUnknown, Code: response.CodeBadRequest, Message: "unknown status"},
	{Target: service.ErrNoCourierAssigned, Code: response.CodeBadRequest, Message: "order has no assigned courier"},
	{Target: service.ErrCourierMismatch, Code: response.CodeForbidden, Message: "order is assigned to another courier"},
	{Target: service.ErrCourierNotFound, Code: response.CodeBadRequest, Message: "courier not found"},
	{Target: service.ErrLocationNotFound, Code: response.CodeNotFound, Message: "location not found"},
	{Target: service.ErrLocationInactive, Code: response.CodeBadRequest, Message: "location is not active"},
}

func respondOrderWorkflowError(c *gin.Context, err error) {
	shared.RespondWithMappedError(c, err, orderWorkflowErrorRules, response.CodeInternal, "order operation failed")
}

var catalogErrorRules = []shared.MappedHandlerError{
	{Target: service.ErrLocationNotFound, Code: response.CodeNotFound, Message: "location not found"},
	{Target: service.ErrLocationInactive, Code: response.CodeBadRequest, Message: "location is not active"},
	{Target: service.ErrCategoryNotFound, Code: response.CodeNotFound, Message: "category not found"},
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Message: "product not found"},
}

func respondCatalogError(c *gin.Context, err error) {
	shared.RespondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "catalog operation failed")
}

var userAdminErrorRules = []shared.MappedHandlerError{
	{Target: service.ErrUserNotFound, Code: response.CodeNotFound, Message: "user not found"},
	{Target: service.ErrEmailTaken, Code: response.CodeConflict, Message: "email is already registered"},
	{Target: service.ErrRoleUnknown, Code: response.CodeBadRequest, Message: "unknown role"},
	{Target: service.ErrLocationNotFound, Code: response.CodeBadRequest, Message: "unknown location"},
}

func respondUserAdminError(c *gin.Context, err error) {
	shared.RespondWithMappedError(c, err, userAdminErrorRules, response.CodeInternal, "user operation failed")
}

var inventoryErrorRules = []shared.MappedHandlerError{
	{Target: service.ErrSupplyNotFound, Code: response.CodeNotFound, Message: "inventory supply not found"},
	{Target: service.ErrLocationNotFound, Code: response.CodeNotFound, Message: "location not found"},
	{Target: service.ErrEmptyOrder, Code: response.CodeBadRequest, Message: "supply must contain at least one item"},
	{Target: service.ErrInvalidQuantity, Code: response.CodeBadRequest, Message: "item quantity must be positive"},
	{Target: service.ErrStatusUnknown, Code: response.CodeBadRequest, Message: "unknown supply status"},
}

func respondInventoryError(c *gin.Context, err error) {
	shared.RespondWithMappedError(c, err, inventoryErrorRules, response.CodeInternal, "inventory operation failed")
}

var earningErrorRules = []shared.MappedHandlerError{
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Message: "order not found"},
	{Target: service.ErrCourierNotFound, Code: response.CodeBadRequest, Message: "courier not found"},
	{Target: service.ErrStatusUnknown, Code: response.CodeBadRequest, Message: "unknown earning type"},
}

func respondEarningError(c *gin.Context, err error) {
	shared.RespondWithMappedError(c, err, earningErrorRules, response.CodeInternal, "earning operation failed")
}
