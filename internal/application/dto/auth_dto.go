package dto

import "time"

// RegisterRequest cadastro público de um novo cliente.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	CNPJ     string `json:"cnpj" validate:"required,cnpj_digits"`
	Phone    string `json:"phone" validate:"required,min=8"`
}

// LoginRequest credenciais; Redirect é o destino pedido antes do login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Redirect string `json:"redirect"`
}

// AuthResponse token de sessão e para onde o front-end deve seguir.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Redirect  string       `json:"redirect"`
	User      UserResponse `json:"user"`
}

// ForgotPasswordRequest pedido de link de redefinição.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest troca a senha com o token recebido por e-mail.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}
