package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/jhoicas/portal-b2b/pkg/br"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

// PasswordResetSender envia o link de redefinição para um e-mail cadastrado.
type PasswordResetSender interface {
	RequestReset(ctx context.Context, email string) error
}

// ClientUseCase cadastro de clientes pelo back-office.
type ClientUseCase struct {
	clients  repository.ClientRepository
	tx       ports.ClientTxRunner
	sessions ports.SessionInvalidator
	cnpj     ports.CNPJLookup
	resets   PasswordResetSender
	log      *logger.Logger
	now      func() time.Time
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(
	clients repository.ClientRepository,
	tx ports.ClientTxRunner,
	sessions ports.SessionInvalidator,
	cnpj ports.CNPJLookup,
	resets PasswordResetSender,
	log *logger.Logger,
) *ClientUseCase {
	return &ClientUseCase{
		clients:  clients,
		tx:       tx,
		sessions: sessions,
		cnpj:     cnpj,
		resets:   resets,
		log:      log.Component("clients"),
		now:      time.Now,
	}
}

// List busca por razão social, nome fantasia ou CNPJ (com ou sem máscara).
func (uc *ClientUseCase) List(ctx context.Context, search string) ([]dto.ClientResponse, error) {
	term := strings.TrimSpace(search)
	if digits := br.OnlyDigits(term); len(digits) >= 8 && strings.Map(keepCNPJChars, term) == term {
		term = digits
	}
	list, err := uc.clients.List(ctx, term)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ClientFromEntity(c))
	}
	return out, nil
}

// Get devolve o cliente ou ErrNotFound.
func (uc *ClientUseCase) Get(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ClientFromEntity(c)
	return &out, nil
}

// Create cadastra o cliente. Com UserID, aprova o usuário pendente na mesma
// transação: cria o cliente, vincula o usuário e o ativa.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientRequest) (*dto.ClientResponse, error) {
	now := uc.now()
	c := &entity.Client{ID: uuid.NewString(), CreatedAt: now}
	applyClient(c, in, now)

	if in.UserID == "" {
		if err := uc.clients.Create(ctx, c); err != nil {
			return nil, err
		}
		out := dto.ClientFromEntity(c)
		return &out, nil
	}

	err := uc.tx.RunClients(ctx, func(clients repository.ClientRepository, users repository.UserRepository) error {
		u, err := users.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUserNotFound
		}
		if err := clients.Create(ctx, c); err != nil {
			return err
		}
		u.ClientID = c.ID
		u.Status = entity.StatusAtivo
		u.UpdatedAt = now
		return users.Update(ctx, u)
	})
	if err != nil {
		return nil, fmt.Errorf("aprovar cadastro: %w", err)
	}
	uc.sessions.Invalidate(ctx, in.UserID)
	uc.log.Info().Str("client_id", c.ID).Str("user_id", in.UserID).Msg("cadastro aprovado")
	out := dto.ClientFromEntity(c)
	return &out, nil
}

// Update sobrescreve os dados cadastrais.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	applyClient(c, in, uc.now())
	if err := uc.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	out := dto.ClientFromEntity(c)
	return &out, nil
}

// Delete remove o cliente definitivamente. Os usuários vinculados perdem o vínculo
// e têm o perfil em cache descartado.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	var linked []*entity.User
	err := uc.tx.RunClients(ctx, func(clients repository.ClientRepository, users repository.UserRepository) error {
		list, err := users.ListByClientID(ctx, id)
		if err != nil {
			return err
		}
		if err := clients.Delete(ctx, id); err != nil {
			return err
		}
		linked = list
		return nil
	})
	if err != nil {
		return err
	}
	for _, u := range linked {
		uc.sessions.Invalidate(ctx, u.ID)
	}
	return nil
}

// LookupCNPJ consulta o CNPJ no provedor público para pré-preencher o cadastro.
func (uc *ClientUseCase) LookupCNPJ(ctx context.Context, raw string) (*dto.CNPJLookupResponse, error) {
	digits, ok := br.NormalizeCNPJ(raw)
	if !ok {
		return nil, domain.NewValidationError("cnpj", "CNPJ deve ter 14 dígitos.")
	}
	info, err := uc.cnpj.Lookup(ctx, digits)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, domain.ErrNotFound
	}
	address := strings.TrimSpace(strings.Join(nonEmpty(info.Logradouro, info.Numero, info.Complemento, info.Bairro), ", "))
	return &dto.CNPJLookupResponse{
		CNPJ:         digits,
		CNPJValid:    br.IsValidCNPJ(digits),
		RazaoSocial:  info.RazaoSocial,
		NomeFantasia: info.NomeFantasia,
		CEP:          br.NormalizeCEP(info.CEP),
		UF:           info.UF,
		City:         info.Municipio,
		Address:      address,
		Email:        strings.ToLower(info.Email),
		Phone:        info.Telefone,
	}, nil
}

// SendPasswordReset envia o link de redefinição para o e-mail do cliente.
func (uc *ClientUseCase) SendPasswordReset(ctx context.Context, id string) error {
	c, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(c.Email) == "" {
		return domain.NewValidationError("email", "Este cliente não possui um email cadastrado.")
	}
	return uc.resets.RequestReset(ctx, c.Email)
}

func (uc *ClientUseCase) load(ctx context.Context, id string) (*entity.Client, error) {
	c, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func applyClient(c *entity.Client, in dto.ClientRequest, now time.Time) {
	c.RazaoSocial = strings.TrimSpace(in.RazaoSocial)
	c.NomeFantasia = strings.TrimSpace(in.NomeFantasia)
	c.CNPJ = br.OnlyDigits(in.CNPJ)
	c.InscricaoEstadual = strings.TrimSpace(in.InscricaoEstadual)
	c.Email = strings.ToLower(strings.TrimSpace(in.Email))
	c.Phone = strings.TrimSpace(in.Phone)
	c.ContactName = strings.TrimSpace(in.ContactName)
	c.CEP = br.NormalizeCEP(in.CEP)
	c.Address = strings.TrimSpace(in.Address)
	c.City = strings.TrimSpace(in.City)
	c.UF = strings.ToUpper(strings.TrimSpace(in.UF))
	c.PriceTableID = in.PriceTableID
	c.PaymentMethod = in.PaymentMethod
	c.Carrier = in.Carrier
	c.CreditLimit = in.CreditLimit
	c.Notes = in.Notes
	c.Status = in.Status
	if c.Status == "" {
		c.Status = entity.StatusAtivo
	}
	c.UpdatedAt = now
}

func keepCNPJChars(r rune) rune {
	switch {
	case r >= '0' && r <= '9', r == '.', r == '/', r == '-':
		return r
	}
	return -1
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
