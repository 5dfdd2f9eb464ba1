package routes

import (
	"net/http"

	"github.com/arpitsharma-bit/peextrap/internal/contracts"
	"github.com/arpitsharma-bit/peextrap/internal/domain/auth"
	"github.com/arpitsharma-bit/peextrap/internal/domain/user"
	appErrors "github.com/arpitsharma-bit/peextrap/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var body contracts.RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	newUser := user.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	}

	ctx := c.Request.Context()
	if err := h.AuthService.Register(ctx, &newUser, body.Timezone); err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(newUser.Id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AuthResponse{
		Message: "Account created",
		Token:   token,
		User: contracts.UserResponse{
			Id:    newUser.Id.String(),
			Name:  newUser.Name,
			Email: newUser.Email,
		},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var body contracts.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AuthService.Login(ctx, auth.Login{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity.Id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{
		Message: "Logged in",
		Token:   token,
		User: contracts.UserResponse{
			Id:    entity.Id.String(),
			Name:  entity.Name,
			Email: entity.Email,
		},
	})
}

func (h *Handler) GoogleLogin(c *gin.Context) {
	var body contracts.GoogleAuthRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AuthService.GoogleLogin(ctx, body.Credential)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity.Id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{
		Message: "Logged in with Google",
		Token:   token,
		User: contracts.UserResponse{
			Id:    entity.Id.String(),
			Name:  entity.Name,
			Email: entity.Email,
		},
	})
}

// Logout exists for API symmetry; tokens are stateless, the client
// just discards its copy.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Logged out"})
}
