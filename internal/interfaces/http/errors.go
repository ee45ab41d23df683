package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/cart"
	"github.com/rs/zerolog/log"
)

// Códigos de erro devolvidos em dto.ErrorResponse.
const (
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeInvalidBody         = "INVALID_BODY"
	CodeValidation          = "VALIDATION"
	CodeNotFound            = "NOT_FOUND"
	CodeDuplicate           = "DUPLICATE"
	CodeConflict            = "CONFLICT"
	CodeInvalidTransition   = "INVALID_TRANSITION"
	CodeEmptyCart           = "EMPTY_CART"
	CodeRecentLoginRequired = "REQUIRES_RECENT_LOGIN"
	CodeRequestInProgress   = "REQUEST_IN_PROGRESS"
	CodeUnavailable         = "UNAVAILABLE"
	CodeProfileMissing      = "PROFILE_MISSING"
	CodeInternal            = "INTERNAL"
)

const internalMessage = "Ocorreu um erro inesperado. Tente novamente."

var errInvalidBody = errors.New("corpo inválido")

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// A ordem importa: ErrEmailAlreadyExists antes de ErrDuplicate etc.
var errorMappings = []errorMapping{
	{errInvalidBody, fiber.StatusBadRequest, CodeInvalidBody, "Corpo da requisição inválido."},
	{domain.ErrEmptyCart, fiber.StatusBadRequest, CodeEmptyCart, "Seu carrinho está vazio."},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, CodeUnauthorized, "E-mail ou senha incorretos."},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, CodeUnauthorized, "Faça login para continuar."},
	{domain.ErrAccountDisabled, fiber.StatusForbidden, CodeForbidden, "Sua conta está desativada."},
	{domain.ErrRecentLoginNeeded, fiber.StatusForbidden, CodeRecentLoginRequired,
		"Para alterar o e-mail, é necessário fazer logout e login novamente por motivos de segurança."},
	{domain.ErrForbidden, fiber.StatusForbidden, CodeForbidden, "Você não tem permissão para esta ação."},
	{domain.ErrUserNotFound, fiber.StatusNotFound, CodeNotFound, "Usuário não encontrado."},
	{domain.ErrNotFound, fiber.StatusNotFound, CodeNotFound, "Recurso não encontrado."},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, CodeDuplicate, "Este e-mail já está em uso."},
	{domain.ErrDuplicate, fiber.StatusConflict, CodeDuplicate, "Registro duplicado."},
	{domain.ErrInvalidTransition, fiber.StatusConflict, CodeInvalidTransition, "Transição de status não permitida."},
	{domain.ErrRequestInProgress, fiber.StatusConflict, CodeRequestInProgress, "Este pedido já está sendo processado."},
	{cart.ErrUnsupportedVersion, fiber.StatusConflict, CodeConflict,
		"Seu carrinho foi salvo por uma versão mais nova do portal. Atualize a página."},
	{domain.ErrConflict, fiber.StatusConflict, CodeConflict, "Conflito com o estado atual do recurso."},
	{domain.ErrUnavailable, fiber.StatusServiceUnavailable, CodeUnavailable, "Serviço indisponível no momento."},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, CodeValidation, "Dados inválidos."},
}

// respondError traduz erros de domínio em status HTTP e ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	return respondErrorWith(c, err, internalMessage)
}

// respondErrorWith como respondError, com mensagem própria para erros internos.
func respondErrorWith(c *fiber.Ctx, err error, internalMsg string) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: ve.Message})
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.message})
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("erro interno na requisição")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: internalMsg})
}

// FiberErrorHandler erros não tratados pelos handlers (rota inexistente, panic recuperado).
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		switch fe.Code {
		case fiber.StatusNotFound:
			code = CodeNotFound
		case fiber.StatusMethodNotAllowed, fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge:
			code = CodeInvalidBody
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return respondError(c, err)
}
