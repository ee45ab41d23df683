package session

import (
	"net/url"
	"strings"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// Kind tipo da decisão do guard.
type Kind string

const (
	Render   Kind = "render"
	Redirect Kind = "redirect"
	Loading  Kind = "loading"
)

// Decision resultado do guard. Location só vale para Redirect.
type Decision struct {
	Kind     Kind
	Location string
}

// Áreas protegidas do portal.
const (
	AreaAdmin = "admin"
	AreaApp   = "app"
)

var areaRoles = map[string][]string{
	AreaAdmin: {entity.RoleAdmin, entity.RoleEquipe},
	AreaApp:   {entity.RoleCliente, entity.RoleAdmin},
}

// AreaRoles papéis aceitos na área; nil para área desconhecida (qualquer papel).
func AreaRoles(area string) []string {
	return areaRoles[area]
}

// Decide avalia, em ordem: sessão resolvendo, sem sessão, pendente,
// inativo, papel não permitido. Um perfil ausente conta como sessão ainda
// resolvendo.
func Decide(s *Session, path string, allowedRoles []string) Decision {
	if s == nil || s.State == ProfileMissing {
		return Decision{Kind: Loading}
	}
	if s.State != Authenticated || s.User == nil {
		return Decision{Kind: Redirect, Location: "/login?redirect=" + url.QueryEscape(path)}
	}
	u := s.User
	if u.Status == entity.StatusAguardandoAprovacao && !strings.HasPrefix(path, "/pending") {
		return Decision{Kind: Redirect, Location: "/pending"}
	}
	if u.Status == entity.StatusInativo {
		return Decision{Kind: Redirect, Location: "/login?error=account_disabled"}
	}
	if len(allowedRoles) > 0 && !contains(allowedRoles, u.Role) {
		if u.Role == entity.RoleCliente {
			return Decision{Kind: Redirect, Location: "/app"}
		}
		return Decision{Kind: Redirect, Location: "/admin"}
	}
	return Decision{Kind: Render}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
