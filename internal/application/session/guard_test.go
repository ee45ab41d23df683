package session

import (
	"testing"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func authed(role, status string) *Session {
	return &Session{State: Authenticated, User: &entity.User{ID: "u1", Role: role, Status: status}}
}

func TestDecide(t *testing.T) {
	adminArea := AreaRoles(AreaAdmin)
	appArea := AreaRoles(AreaApp)

	tests := []struct {
		name    string
		session *Session
		path    string
		roles   []string
		want    Decision
	}{
		{"sessão nil carrega", nil, "/admin", adminArea, Decision{Kind: Loading}},
		{"perfil ausente carrega", &Session{State: ProfileMissing}, "/admin", adminArea, Decision{Kind: Loading}},
		{"anônimo vai para login", &Session{State: Anonymous}, "/admin/orders", adminArea,
			Decision{Kind: Redirect, Location: "/login?redirect=%2Fadmin%2Forders"}},
		{"pendente vai para /pending", authed(entity.RoleCliente, entity.StatusAguardandoAprovacao), "/app", appArea,
			Decision{Kind: Redirect, Location: "/pending"}},
		{"pendente em /pending renderiza", authed(entity.RoleCliente, entity.StatusAguardandoAprovacao), "/pending", nil,
			Decision{Kind: Render}},
		{"inativo vai para login com erro", authed(entity.RoleCliente, entity.StatusInativo), "/app", appArea,
			Decision{Kind: Redirect, Location: "/login?error=account_disabled"}},
		{"cliente no admin volta para /app", authed(entity.RoleCliente, entity.StatusAtivo), "/admin", adminArea,
			Decision{Kind: Redirect, Location: "/app"}},
		{"equipe no app vai para /admin", authed(entity.RoleEquipe, entity.StatusAtivo), "/app", appArea,
			Decision{Kind: Redirect, Location: "/admin"}},
		{"admin no app renderiza", authed(entity.RoleAdmin, entity.StatusAtivo), "/app", appArea, Decision{Kind: Render}},
		{"equipe no admin renderiza", authed(entity.RoleEquipe, entity.StatusAtivo), "/admin", adminArea, Decision{Kind: Render}},
		{"sem papéis exigidos renderiza", authed(entity.RoleCliente, entity.StatusAtivo), "/profile", nil, Decision{Kind: Render}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.session, tt.path, tt.roles))
		})
	}
}

func TestAreaRoles_Desconhecida(t *testing.T) {
	assert.Nil(t, AreaRoles("outra"))
	assert.ElementsMatch(t, []string{entity.RoleAdmin, entity.RoleEquipe}, AreaRoles(AreaAdmin))
}
