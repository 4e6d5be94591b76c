package dto

// MessageResponse corpo de sucesso simples.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse corpo de erro com mensagem única (401, 409, 500).
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse corpo de erro 400: lista ordenada de todas as regras
// violadas, nunca apenas a primeira.
type ValidationErrorResponse struct {
	Errors []string `json:"error"`
}

// AddressResponse saída da consulta de CEP (proxy do serviço externo).
type AddressResponse struct {
	CEP          string `json:"cep"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}
