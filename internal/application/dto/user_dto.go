package dto

import (
	"time"

	"github.com/abrasel/portal-associados-api/internal/domain/entity"
)

// RegisterRequest corpo do cadastro de associado. A senha chega em texto e é
// hasheada no use case; a validação de forma acontece em application/forms.
type RegisterRequest struct {
	Email           string   `json:"email"`
	Name            string   `json:"name"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirmPassword"`
	CEP             string   `json:"cep"`
	Address         string   `json:"address"`
	Number          string   `json:"number"`
	Neighborhood    string   `json:"neighborhood"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Phone           string   `json:"phone"`
	CNPJ            string   `json:"cnpj"`
	BusinessTypes   []string `json:"businessTypes"`
}

// LoginRequest corpo do login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest atualização parcial pelo painel do supervisor. UserID pode
// ser o id de associado, de supervisor ou o id base; campos nulos não são tocados.
type UpdateUserRequest struct {
	UserID   string  `json:"userId" validate:"required"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=ASSOCIATE SUPERVISOR"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// DeleteUserRequest remoção pelo painel do supervisor; mesma resolução de id.
type DeleteUserRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// AccountResponse conta hidratada devolvida ao cliente. Não existe campo de
// senha: nem hash nem texto saem da camada de aplicação. Os campos de
// associado e de supervisor são mutuamente exclusivos (omitempty).
type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Campos de associado
	CEP           string   `json:"cep,omitempty"`
	Address       string   `json:"address,omitempty"`
	Number        string   `json:"number,omitempty"`
	Neighborhood  string   `json:"neighborhood,omitempty"`
	City          string   `json:"city,omitempty"`
	State         string   `json:"state,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	CNPJ          string   `json:"cnpj,omitempty"`
	BusinessTypes []string `json:"businessTypes,omitempty"`
	IsActive      *bool    `json:"isActive,omitempty"`

	// Campos de supervisor
	Permissions []string `json:"permissions,omitempty"`
}

// NewAccountResponse projeta a união Account na resposta pública, expondo o id
// da linha de subtipo como id da conta.
func NewAccountResponse(a entity.Account) AccountResponse {
	out := AccountResponse{
		ID:        a.SubtypeID(),
		Email:     a.User.Email,
		Name:      a.User.Name,
		Role:      a.User.Role,
		CreatedAt: a.User.CreatedAt,
		UpdatedAt: a.User.UpdatedAt,
	}
	if a.Associate != nil {
		out.CEP = a.Associate.CEP
		out.Address = a.Associate.Address
		out.Number = a.Associate.Number
		out.Neighborhood = a.Associate.Neighborhood
		out.City = a.Associate.City
		out.State = a.Associate.State
		out.Phone = a.Associate.Phone
		out.CNPJ = a.Associate.CNPJ
		out.BusinessTypes = a.Associate.BusinessTypes
		active := a.Associate.IsActive
		out.IsActive = &active
	}
	if a.Supervisor != nil {
		out.Permissions = a.Supervisor.Permissions
	}
	return out
}

// RegisterResponse saída do cadastro (201).
type RegisterResponse struct {
	Message string          `json:"message"`
	User    AccountResponse `json:"user"`
}

// LoginResponse saída do login com token de sessão.
type LoginResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    AccountResponse `json:"user"`
}

// UsersResponse saída da listagem do roster.
type UsersResponse struct {
	Users []AccountResponse `json:"users"`
}
