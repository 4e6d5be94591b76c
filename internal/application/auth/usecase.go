package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/abrasel/portal-associados-api/internal/application/dto"
	"github.com/abrasel/portal-associados-api/internal/application/ports"
	"github.com/abrasel/portal-associados-api/internal/domain"
	"github.com/abrasel/portal-associados-api/internal/domain/entity"
	"github.com/abrasel/portal-associados-api/internal/domain/repository"
	"github.com/abrasel/portal-associados-api/pkg/jwt"
)

// JWTConfig configuração para emissão do token de sessão.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: cadastro de associado e login.
type AuthUseCase struct {
	users       repository.UserRepository
	associates  repository.AssociateRepository
	supervisors repository.SupervisorRepository
	tx          ports.TxRunner
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(
	users repository.UserRepository,
	associates repository.AssociateRepository,
	supervisors repository.SupervisorRepository,
	tx ports.TxRunner,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		users:       users,
		associates:  associates,
		supervisors: supervisors,
		tx:          tx,
		jwtCfg:      jwtCfg,
	}
}

// RegisterAssociate cria usuário base (role=ASSOCIATE) e linha de associado na
// mesma transação: nunca existe um sem o outro. A senha é hasheada com bcrypt
// antes de qualquer escrita. Violações de unicidade saem como
// domain.ErrEmailAlreadyExists / domain.ErrCNPJAlreadyExists.
func (uc *AuthUseCase) RegisterAssociate(ctx context.Context, in dto.RegisterRequest) (*dto.AccountResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash da senha: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         entity.RoleAssociate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	associate := &entity.Associate{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		CEP:           in.CEP,
		Address:       in.Address,
		Number:        in.Number,
		Neighborhood:  in.Neighborhood,
		City:          in.City,
		State:         in.State,
		Phone:         in.Phone,
		CNPJ:          in.CNPJ,
		BusinessTypes: in.BusinessTypes,
		IsActive:      true,
	}

	err = uc.tx.Run(ctx, func(
		users repository.UserRepository,
		associates repository.AssociateRepository,
		_ repository.SupervisorRepository,
	) error {
		if err := users.Create(user); err != nil {
			return err
		}
		return associates.Create(associate)
	})
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	out := dto.NewAccountResponse(entity.Account{User: *user, Associate: associate})
	return &out, nil
}

// Login verifica e-mail/senha e devolve token + conta hidratada pelo papel.
// E-mail inexistente e senha errada produzem o mesmo domain.ErrInvalidCredentials,
// sem distinção, para não permitir enumeração de cadastros.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	// O hash não sai daqui: a conta hidratada segue sem senha.
	user.PasswordHash = ""

	account := entity.Account{User: *user}
	switch user.Role {
	case entity.RoleAssociate:
		associate, err := uc.associates.FindByUserID(user.ID)
		if err != nil {
			return nil, err
		}
		if associate == nil {
			return nil, fmt.Errorf("usuário %s sem linha de associado: %w", user.ID, domain.ErrConflict)
		}
		account.Associate = associate
	case entity.RoleSupervisor:
		supervisor, err := uc.supervisors.FindByUserID(user.ID)
		if err != nil {
			return nil, err
		}
		if supervisor == nil {
			return nil, fmt.Errorf("usuário %s sem linha de supervisor: %w", user.ID, domain.ErrConflict)
		}
		account.Supervisor = supervisor
	default:
		return nil, fmt.Errorf("papel desconhecido %q: %w", user.Role, domain.ErrConflict)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewAccountResponse(account),
	}, nil
}
