package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o e-mail já está cadastrado")
	ErrCNPJAlreadyExists  = errors.New("o CNPJ já está cadastrado")
	ErrDuplicate          = errors.New("registro duplicado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflito com o estado atual")
)
