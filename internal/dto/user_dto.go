package dto

import "github.com/longkerdandy/burger-backend/internal/models"

type UserUpdateRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Profile  string `json:"profile"`
}

type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Profile  string `json:"profile,omitempty"`
}

func UserResponseFrom(user *models.User) *UserResponse {
	return &UserResponse{
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Avatar:   user.Avatar,
		Nickname: user.Nickname,
		Profile:  user.Profile,
	}
}
