package public

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/VPodolski/MakiMora/internal/http/handlers/shared"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/service"
)

// LoginRequest is the staff credential submission.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token and the account profile.
type LoginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Login authenticates a staff account and issues a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	token, user, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, "invalid email or password")
		case errors.Is(err, service.ErrUserDisabled):
			response.Forbidden(c, "account is disabled")
		default:
			shared.RespondError(c, response.CodeInternal, "login failed", err)
		}
		return
	}

	response.Success(c, LoginResponse{
		Token: token,
		User:  user,
	})
}
