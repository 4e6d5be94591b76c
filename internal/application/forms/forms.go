// Package forms compõe os validadores de campo de pkg/brdoc em validações de
// formulário inteiro. Cada verificação roda em ordem fixa e nenhuma corta as
// demais: o resultado carrega todas as regras violadas, na ordem de checagem.
package forms

import (
	"github.com/abrasel/portal-associados-api/internal/application/dto"
	"github.com/abrasel/portal-associados-api/pkg/brdoc"
)

// Result resultado agregado de um formulário.
type Result struct {
	Valid  bool
	Errors []string
}

// Register valida o formulário de cadastro de associado. Ordem das checagens:
// e-mail, política de senha (todos os motivos), confirmação de senha, CNPJ,
// CEP, telefone, tipos de negócio.
func Register(in dto.RegisterRequest) Result {
	var errs []string

	if in.Email == "" {
		errs = append(errs, "Email é obrigatório")
	} else if !brdoc.IsEmail(in.Email) {
		errs = append(errs, "Email inválido")
	}

	errs = append(errs, brdoc.CheckPassword(in.Password)...)

	if in.Password != in.ConfirmPassword {
		errs = append(errs, "As senhas não coincidem")
	}

	if in.CNPJ == "" {
		errs = append(errs, "CNPJ é obrigatório")
	} else if !brdoc.IsCNPJ(in.CNPJ) {
		errs = append(errs, "CNPJ inválido")
	}

	if in.CEP == "" {
		errs = append(errs, "CEP é obrigatório")
	} else if !brdoc.IsCEP(in.CEP) {
		errs = append(errs, "CEP inválido")
	}

	if in.Phone == "" {
		errs = append(errs, "Telefone é obrigatório")
	} else if !brdoc.IsPhone(in.Phone) {
		errs = append(errs, "Telefone inválido")
	}

	if len(in.BusinessTypes) == 0 {
		errs = append(errs, "Selecione pelo menos um tipo de negócio")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Login valida o formulário de login: e-mail com forma válida e senha presente.
// Login não reaplica a política de força da senha.
func Login(in dto.LoginRequest) Result {
	var errs []string

	if in.Email == "" {
		errs = append(errs, "E-mail é obrigatório")
	} else if !brdoc.IsEmail(in.Email) {
		errs = append(errs, "E-mail inválido")
	}

	if in.Password == "" {
		errs = append(errs, "Senha é obrigatória")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
