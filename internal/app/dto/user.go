package dto

import "staybook/internal/domain/user"

type CreateUserRequest struct {
	Name string `json:"name"`
}

type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name}
}
