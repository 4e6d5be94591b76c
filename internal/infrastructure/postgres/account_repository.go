package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abrasel/portal-associados-api/internal/domain"
	"github.com/abrasel/portal-associados-api/internal/domain/entity"
	"github.com/abrasel/portal-associados-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo lado de leitura do roster sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository constrói o adaptador de leitura de contas.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// List devolve todas as contas com o subtipo do papel hidratado, mais recentes
// primeiro. Erros de consulta são propagados ao chamador.
func (r *AccountRepo) List() ([]entity.Account, error) {
	query := `
		SELECT u.id, u.email, u.name, u.role, u.created_at, u.updated_at,
		       a.id, a.cep, a.address, a.number, a.neighborhood, a.city, a.state,
		       a.phone, a.cnpj, a.business_types, a.is_active,
		       s.id, s.permissions
		FROM users u
		LEFT JOIN associates a ON a.user_id = u.id
		LEFT JOIN supervisors s ON s.user_id = u.id
		ORDER BY u.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var list []entity.Account
	for rows.Next() {
		var (
			acc entity.Account

			aID, aCEP, aAddress, aNumber, aNeighborhood *string
			aCity, aState, aPhone, aCNPJ, aTypes        *string
			aActive                                     *bool

			sID, sPerms *string
		)
		if err := rows.Scan(
			&acc.User.ID, &acc.User.Email, &acc.User.Name, &acc.User.Role,
			&acc.User.CreatedAt, &acc.User.UpdatedAt,
			&aID, &aCEP, &aAddress, &aNumber, &aNeighborhood, &aCity, &aState,
			&aPhone, &aCNPJ, &aTypes, &aActive,
			&sID, &sPerms,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}

		// Discriminação por papel: só o subtipo correspondente é hidratado,
		// mesmo que o LEFT JOIN traga linha do outro lado.
		switch acc.User.Role {
		case entity.RoleAssociate:
			if aID != nil {
				a := &entity.Associate{
					ID:           *aID,
					UserID:       acc.User.ID,
					CEP:          deref(aCEP),
					Address:      deref(aAddress),
					Number:       deref(aNumber),
					Neighborhood: deref(aNeighborhood),
					City:         deref(aCity),
					State:        deref(aState),
					Phone:        deref(aPhone),
					CNPJ:         deref(aCNPJ),
					IsActive:     aActive != nil && *aActive,
				}
				if aTypes != nil {
					if err := json.Unmarshal([]byte(*aTypes), &a.BusinessTypes); err != nil {
						return nil, fmt.Errorf("decodificar business_types: %w", err)
					}
				}
				acc.Associate = a
			}
		case entity.RoleSupervisor:
			if sID != nil {
				s := &entity.Supervisor{ID: *sID, UserID: acc.User.ID}
				if sPerms != nil {
					if err := json.Unmarshal([]byte(*sPerms), &s.Permissions); err != nil {
						return nil, fmt.Errorf("decodificar permissions: %w", err)
					}
				}
				acc.Supervisor = s
			}
		}
		list = append(list, acc)
	}
	return list, rows.Err()
}

// ResolveUserID mapeia um id de associado, de supervisor ou o id base para o
// id base dono, numa única consulta. Ordem de sondagem: associado, supervisor,
// base.
func (r *AccountRepo) ResolveUserID(id string) (string, error) {
	query := `
		SELECT COALESCE(
			(SELECT user_id FROM associates  WHERE id = $1),
			(SELECT user_id FROM supervisors WHERE id = $1),
			(SELECT id      FROM users       WHERE id = $1)
		)`
	var baseID *string
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&baseID); err != nil {
		return "", fmt.Errorf("resolve user id: %w", err)
	}
	if baseID == nil {
		return "", domain.ErrUserNotFound
	}
	return *baseID, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
