package dto

// ErrorResponse corpo de erro HTTP. Redirect vem preenchido quando o guard de rota recusa o acesso.
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// IDResponse resposta mínima de criação.
type IDResponse struct {
	ID string `json:"id"`
}
