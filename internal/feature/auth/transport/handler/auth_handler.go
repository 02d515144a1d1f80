// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/transport/http/dto"
	"account_backend/internal/feature/auth/usecase"
	"account_backend/internal/platform/http/response"
	jwtmw "account_backend/internal/platform/jwt"
	"account_backend/internal/platform/logger"
)

// ProfileMessage is the fixed message of the profile endpoint.
const ProfileMessage = "Profile endpoint - authenticated"

// AuthUsecase defines the authentication operations the handler needs.
// Following Go convention, the interface is defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, req usecase.RegisterRequest) (*usecase.AuthResponse, error)
	Login(ctx context.Context, req usecase.LoginRequest) (*usecase.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*usecase.RefreshResponse, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register.
// - 400 on binding errors, invalid values or an email already in use
// - 201 with the token pair on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	tokens, err := h.auth.Register(c.Request.Context(), usecase.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	logger.FromGin(c).WithField("email", req.Email).Info("user registration successful")
	c.JSON(http.StatusCreated, tokens)
}

// Login handles POST /auth/login.
// - 400 on binding errors
// - 401 on bad credentials
// - 200 with the token pair on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	tokens, err := h.auth.Login(c.Request.Context(), usecase.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	logger.FromGin(c).WithField("email", req.Email).Info("user login successful")
	c.JSON(http.StatusOK, tokens)
}

// Refresh handles POST /auth/refresh.
// - 400 when the token is missing
// - 401 for any invalid, expired or malformed token
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	out, err := h.auth.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Profile handles GET /auth/profile. It must run behind jwtmw.AuthRequired.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ProfileRes{UserID: userID, Message: ProfileMessage})
}
