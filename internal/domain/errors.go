package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("e-mail já cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrAccountDisabled    = errors.New("conta desativada")
	ErrWeakPassword       = errors.New("senha fraca")
	ErrRecentLoginNeeded  = errors.New("login recente necessário")
	ErrInvalidTransition  = errors.New("transição de status inválida")
	ErrEmptyCart          = errors.New("carrinho vazio")
	ErrRequestInProgress  = errors.New("requisição já em processamento")
	ErrUnavailable        = errors.New("serviço indisponível")
)

// ValidationError erro de validação com mensagem pronta para o usuário.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is faz errors.Is(err, ErrInvalidInput) valer para qualquer ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError cria um ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
