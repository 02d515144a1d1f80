// Package handler provides the HTTP handlers for the user feature.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/user/transport/http/dto"
	"account_backend/internal/feature/user/usecase"
	"account_backend/internal/platform/http/response"
	"account_backend/internal/platform/logger"
)

// Consumer-side interfaces, one per use case.
type (
	CreateUser interface {
		Execute(ctx context.Context, req usecase.CreateUserRequest) (*usecase.UserResponse, error)
	}
	GetUser interface {
		Execute(ctx context.Context, id string) (*usecase.UserResponse, error)
	}
	ListUsers interface {
		Execute(ctx context.Context, req usecase.ListUsersRequest) (*usecase.PaginatedUserResponse, error)
	}
	UpdateUser interface {
		Execute(ctx context.Context, req usecase.UpdateUserRequest) (*usecase.UserResponse, error)
	}
	DeleteUser interface {
		Execute(ctx context.Context, id string) error
	}
)

// UserHandler serves the /users resource.
type UserHandler struct {
	create CreateUser
	get    GetUser
	list   ListUsers
	update UpdateUser
	delete DeleteUser
}

func NewUserHandler(create CreateUser, get GetUser, list ListUsers, update UpdateUser, del DeleteUser) *UserHandler {
	return &UserHandler{create: create, get: get, list: list, update: update, delete: del}
}

// Create handles POST /users and returns 201 with the sanitized user.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	user, err := h.create.Execute(c.Request.Context(), usecase.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	logger.FromGin(c).WithField("user_id", user.ID).Info("user created")
	c.JSON(http.StatusCreated, user)
}

// List handles GET /users?page=&limit=.
// Missing or unparsable values are passed as zero and fall back to the defaults.
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	out, err := h.list.Execute(c.Request.Context(), usecase.ListUsersRequest{Page: page, Limit: limit})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:id with a partial body.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	user, err := h.update.Execute(c.Request.Context(), usecase.UpdateUserRequest{
		UserID:   c.Param("id"),
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:id and returns 204.
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	logger.FromGin(c).WithField("user_id", id).Info("user deleted")
	c.Status(http.StatusNoContent)
}
