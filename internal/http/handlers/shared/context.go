package shared

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/logger"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/service"
)

// UserContextKey is where the auth middleware stores the loaded user.
const UserContextKey = "user"

// RequestLog returns a logger carrying the request id.
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// CurrentUser reads the authenticated user from the context. Responds
// unauthorized and returns false when the middleware did not run.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		response.Unauthorized(c, "authentication required")
		return nil, false
	}
	user, ok := value.(*models.User)
	if !ok || user == nil {
		response.Unauthorized(c, "authentication required")
		return nil, false
	}
	return user, true
}

// ActorFrom builds the workflow principal for the authenticated user.
func ActorFrom(user *models.User) service.Actor {
	if user == nil {
		return service.SystemActor
	}
	return service.Actor{
		UserID:       user.ID,
		Capabilities: user.RoleNames(),
	}
}
