package staff

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/models"
)

func currentUser(c *gin.Context) (*models.User, bool) {
	return shared.CurrentUser(c)
}

// requireLocationAccess verifies the user is assigned to the location.
// Managers and HR pass for any location.
func requireLocationAccess(c *gin.Context, user *models.User, locationID uuid.UUID) bool {
	if user.WorksAt(locationID.String()) {
		return true
	}
	response.Forbidden(c, "no access to this location")
	return false
}
