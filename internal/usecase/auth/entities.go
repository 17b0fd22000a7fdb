package auth

import "studentloan-backend/internal/domain/customer"

type RegisterInput struct {
	Name       string `json:"name" validate:"required,max=128"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Phone      string `json:"phone" validate:"required,max=32"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
	University string `json:"university" validate:"omitempty,max=128"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	UserID     string        `json:"user_id"`
	CustomerID string        `json:"customer_id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	University *string       `json:"university"`
	Role       customer.Role `json:"role"`
}

type Session struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

func toUserDTO(u *customer.User) UserDTO {
	return UserDTO{
		UserID:     u.UserID,
		CustomerID: u.CustomerID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		University: u.University,
		Role:       u.Role,
	}
}
