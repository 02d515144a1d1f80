// Package dto defines request bodies for the user feature's HTTP transport layer.
package dto

// CreateUserReq is the body of POST /users.
type CreateUserReq struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateUserReq is the body of PUT /users/:id. Every field is optional.
type UpdateUserReq struct {
	Name     *string `json:"name" binding:"omitempty,min=3,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}
