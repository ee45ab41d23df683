// Package session resolve a sessão a partir do token e decide o acesso às áreas do portal.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/jhoicas/portal-b2b/pkg/jwt"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

// ProfileTTL tempo de vida do perfil em cache.
const ProfileTTL = 5 * time.Minute

// State estado da sessão.
type State string

const (
	Anonymous      State = "anonymous"
	Authenticated  State = "authenticated"
	ProfileMissing State = "profile_missing"
)

// Session resultado da resolução. User só vem em Authenticated; Claims em
// Authenticated e ProfileMissing.
type Session struct {
	State  State
	Claims *jwt.Claims
	User   *entity.User
}

// Service resolve tokens em sessões, com cache de perfis.
type Service struct {
	users     repository.UserRepository
	cache     ports.ProfileCache
	blacklist ports.TokenBlacklist
	secret    string
	log       *logger.Logger
}

var _ ports.SessionInvalidator = (*Service)(nil)

// NewService constrói o serviço.
func NewService(users repository.UserRepository, cache ports.ProfileCache, blacklist ports.TokenBlacklist, secret string, log *logger.Logger) *Service {
	return &Service{users: users, cache: cache, blacklist: blacklist, secret: secret, log: log.Component("session")}
}

// Resolve token vazio, inválido ou revogado é sessão anônima; erros só de infraestrutura.
func (s *Service) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return &Session{State: Anonymous}, nil
	}
	claims, err := jwt.Parse(s.secret, token)
	if err != nil {
		return &Session{State: Anonymous}, nil
	}
	return s.FromClaims(ctx, claims)
}

// FromClaims resolve a sessão de um token já validado.
func (s *Service) FromClaims(ctx context.Context, claims *jwt.Claims) (*Session, error) {
	if claims.ID != "" {
		revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("session: blacklist: %w", err)
		}
		if revoked {
			return &Session{State: Anonymous}, nil
		}
	}
	user, err := s.Profile(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &Session{State: ProfileMissing, Claims: claims}, nil
	}
	return &Session{State: Authenticated, Claims: claims, User: user}, nil
}

// Profile devolve o perfil do cache ou do banco; (nil, nil) se não existir.
func (s *Service) Profile(ctx context.Context, userID string) (*entity.User, error) {
	if u, ok, err := s.cache.Get(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("cache de perfil indisponível")
	} else if ok {
		return u, nil
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("session: carregar perfil: %w", err)
	}
	if u == nil {
		return nil, nil
	}
	if err := s.cache.Set(ctx, u, ProfileTTL); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("falha ao gravar perfil em cache")
	}
	return u, nil
}

// Invalidate descarta o perfil em cache após qualquer alteração do usuário.
func (s *Service) Invalidate(ctx context.Context, userID string) {
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("falha ao invalidar perfil em cache")
	}
}
