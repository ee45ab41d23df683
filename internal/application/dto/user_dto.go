package dto

import "time"

// UserResponse perfil sem dados sensíveis.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CNPJ      string    `json:"cnpj"`
	Phone     string    `json:"phone"`
	ClientID  string    `json:"clientId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateUserStatusRequest PATCH /api/admin/users/:id/status.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ativo inativo aguardando_aprovacao"`
}

// UpdateUserRoleRequest PATCH /api/admin/users/:id/role.
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin equipe cliente"`
}

// UpdateProfileRequest edição do próprio perfil.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

// ChangePasswordRequest troca de senha pelo próprio usuário.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}
