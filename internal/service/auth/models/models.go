package models

import (
	slotModels "github.com/m04kA/SMC-TimeslotService/internal/service/timeslots/models"
)

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse ответ с токеном доступа и данными пользователя
type AuthResponse struct {
	Token string                  `json:"token"`
	User  slotModels.UserResponse `json:"user"`
}
