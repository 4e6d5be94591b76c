package usecase

import (
	"context"

	"github.com/abrasel/portal-associados-api/internal/application/dto"
	"github.com/abrasel/portal-associados-api/internal/application/ports"
	"github.com/abrasel/portal-associados-api/internal/domain"
	"github.com/abrasel/portal-associados-api/internal/domain/repository"
)

// RosterUseCase operações do painel do supervisor sobre o cadastro de usuários:
// listagem, atualização parcial e remoção. As operações de escrita aceitam o id
// de associado, de supervisor ou o id base; todos resolvem para o mesmo usuário.
type RosterUseCase struct {
	accounts repository.AccountRepository
	tx       ports.TxRunner
}

// NewRosterUseCase constrói o caso de uso do roster.
func NewRosterUseCase(accounts repository.AccountRepository, tx ports.TxRunner) *RosterUseCase {
	return &RosterUseCase{accounts: accounts, tx: tx}
}

// List devolve todas as contas, mais recentes primeiro. Falhas de consulta são
// propagadas: lista vazia significa cadastro vazio, nunca erro mascarado.
func (uc *RosterUseCase) List() ([]dto.AccountResponse, error) {
	accounts, err := uc.accounts.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.NewAccountResponse(a))
	}
	return out, nil
}

// Update aplica apenas os campos presentes: name/email/role na tabela base e
// isActive na linha de associado do usuário resolvido. Quando o alvo é um
// supervisor, isActive não casa nenhuma linha e segue como no-op. Todas as
// escritas compartilham uma transação.
func (uc *RosterUseCase) Update(ctx context.Context, in dto.UpdateUserRequest) error {
	baseID, err := uc.accounts.ResolveUserID(in.UserID)
	if err != nil {
		return err
	}

	return uc.tx.Run(ctx, func(
		users repository.UserRepository,
		associates repository.AssociateRepository,
		_ repository.SupervisorRepository,
	) error {
		if in.Name != nil || in.Email != nil || in.Role != nil {
			if err := users.UpdateProfile(baseID, in.Name, in.Email, in.Role); err != nil {
				return err
			}
		}
		if in.IsActive != nil {
			if err := associates.SetActive(baseID, *in.IsActive); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete remove o usuário base resolvido; a linha de subtipo cai em cascata no
// banco. Nenhuma linha afetada significa id inexistente e a transação é
// desfeita com domain.ErrUserNotFound.
func (uc *RosterUseCase) Delete(ctx context.Context, in dto.DeleteUserRequest) error {
	baseID, err := uc.accounts.ResolveUserID(in.UserID)
	if err != nil {
		return err
	}

	return uc.tx.Run(ctx, func(
		users repository.UserRepository,
		_ repository.AssociateRepository,
		_ repository.SupervisorRepository,
	) error {
		affected, err := users.Delete(baseID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}
