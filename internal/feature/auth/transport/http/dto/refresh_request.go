package dto

// RefreshReq represents the request for token refresh.
type RefreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ProfileRes is returned by /auth/profile.
type ProfileRes struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}
