package staff

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/repository"
	"github.com/VPodolski/MakiMora/internal/service"
)

// CreateUserRequest is the staff account creation body.
type CreateUserRequest struct {
	Email       string   `json:"email" binding:"required"`
	Password    string   `json:"password" binding:"required,min=8"`
	FirstName   string   `json:"first_name" binding:"required"`
	LastName    string   `json:"last_name" binding:"required"`
	Phone       string   `json:"phone"`
	Roles       []string `json:"roles" binding:"required"`
	LocationIDs []string `json:"location_ids"`
}

// UpdateUserRequest is the partial staff account update body.
type UpdateUserRequest struct {
	FirstName   *string  `json:"first_name"`
	LastName    *string  `json:"last_name"`
	Phone       *string  `json:"phone"`
	IsActive    *bool    `json:"is_active"`
	Roles       []string `json:"roles"`
	LocationIDs []string `json:"location_ids"`
}

func parseLocationIDs(c *gin.Context, raw []string) ([]uuid.UUID, bool) {
	if raw == nil {
		return nil, true
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(strings.TrimSpace(value))
		if err != nil {
			response.BadRequest(c, "invalid location id")
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// CreateUser adds a staff account.
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	locationIDs, ok := parseLocationIDs(c, req.LocationIDs)
	if !ok {
		return
	}

	user, err := h.UserService.CreateUser(service.CreateUserInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Roles:       req.Roles,
		LocationIDs: locationIDs,
	})
	if err != nil {
		respondUserAdminError(c, err)
		return
	}
	response.Success(c, user)
}

// GetUser returns one staff account.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.UserService.GetUser(id)
	if err != nil {
		respondUserAdminError(c, err)
		return
	}
	response.Success(c, user)
}

// ListUsers returns a filtered page of staff accounts.
func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	locationID, ok := shared.ParseUUIDQuery(c, "location_id")
	if !ok {
		return
	}

	users, total, err := h.UserService.ListUsers(repository.UserListFilter{
		Page:       page,
		PageSize:   pageSize,
		Keyword:    strings.TrimSpace(c.Query("keyword")),
		Role:       strings.TrimSpace(c.Query("role")),
		LocationID: locationID,
		OnlyActive: c.DefaultQuery("only_active", "false") == "true",
	})
	if err != nil {
		respondUserAdminError(c, err)
		return
	}
	response.SuccessWithPage(c, users, total, page, pageSize)
}

// UpdateUser applies partial updates to a staff account.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	locationIDs, ok := parseLocationIDs(c, req.LocationIDs)
	if !ok {
		return
	}

	user, err := h.UserService.UpdateUser(id, service.UpdateUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		IsActive:    req.IsActive,
		Roles:       req.Roles,
		LocationIDs: locationIDs,
	})
	if err != nil {
		respondUserAdminError(c, err)
		return
	}
	response.Success(c, user)
}

// DeactivateUser disables a staff account.
func (h *Handler) DeactivateUser(c *gin.Context) {
	id, ok := shared.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.UserService.DeactivateUser(id); err != nil {
		respondUserAdminError(c, err)
		return
	}
	response.Success(c, nil)
}
