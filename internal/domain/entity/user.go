package entity

import "time"

// Papéis de usuário.
const (
	RoleAdmin   = "admin"
	RoleEquipe  = "equipe"
	RoleCliente = "cliente"
)

// Status de usuário e de cliente.
const (
	StatusAtivo               = "ativo"
	StatusInativo             = "inativo"
	StatusAguardandoAprovacao = "aguardando_aprovacao"
)

// IsValidRole indica se o papel é conhecido.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEquipe, RoleCliente:
		return true
	}
	return false
}

// IsValidStatus indica se o status de usuário/cliente é conhecido.
func IsValidStatus(status string) bool {
	switch status {
	case StatusAtivo, StatusInativo, StatusAguardandoAprovacao:
		return true
	}
	return false
}

// User representa um usuário do portal. Nunca é apagado fisicamente.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string // admin, equipe, cliente
	Status       string // ativo, inativo, aguardando_aprovacao
	CNPJ         string
	Phone        string
	ClientID     string // vazio enquanto não vinculado a um Client
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsStaff indica admin ou equipe.
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleEquipe
}

// DisplayName devolve o nome, o e-mail ou fallback, nessa ordem.
func (u *User) DisplayName(fallback string) string {
	if u == nil {
		return fallback
	}
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return fallback
}
