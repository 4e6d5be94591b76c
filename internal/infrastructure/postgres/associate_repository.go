package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/abrasel/portal-associados-api/internal/domain"
	"github.com/abrasel/portal-associados-api/internal/domain/entity"
	"github.com/abrasel/portal-associados-api/internal/domain/repository"
)

var _ repository.AssociateRepository = (*AssociateRepo)(nil)

// AssociateRepo implementação do porto AssociateRepository sobre PostgreSQL (usável com pool ou tx).
type AssociateRepo struct {
	q Querier
}

// NewAssociateRepository constrói o adaptador do subtipo associado.
func NewAssociateRepository(q Querier) *AssociateRepo {
	return &AssociateRepo{q: q}
}

// Create persiste a linha de associado; business_types vai serializado como JSON.
func (r *AssociateRepo) Create(a *entity.Associate) error {
	types, err := json.Marshal(a.BusinessTypes)
	if err != nil {
		return fmt.Errorf("serializar business_types: %w", err)
	}
	query := `
		INSERT INTO associates (id, user_id, cep, address, number, neighborhood, city, state, phone, cnpj, business_types, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		a.ID, a.UserID, a.CEP, a.Address, a.Number, a.Neighborhood,
		a.City, a.State, a.Phone, a.CNPJ, string(types), a.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			if uniqueConstraint(err) == "associates_cnpj_key" {
				return domain.ErrCNPJAlreadyExists
			}
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert associate: %w", err)
	}
	return nil
}

// FindByUserID obtém a linha de associado pelo id do usuário base; (nil, nil) quando não existe.
func (r *AssociateRepo) FindByUserID(userID string) (*entity.Associate, error) {
	query := `
		SELECT id, user_id, cep, address, number, neighborhood, city, state, phone, cnpj, business_types, is_active
		FROM associates WHERE user_id = $1`
	var (
		a     entity.Associate
		types string
	)
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&a.ID, &a.UserID, &a.CEP, &a.Address, &a.Number, &a.Neighborhood,
		&a.City, &a.State, &a.Phone, &a.CNPJ, &types, &a.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get associate by user: %w", err)
	}
	if err := json.Unmarshal([]byte(types), &a.BusinessTypes); err != nil {
		return nil, fmt.Errorf("decodificar business_types: %w", err)
	}
	return &a, nil
}

// SetActive marca is_active pelo id do usuário base. Zero linhas afetadas
// (usuário é supervisor) não é erro, mantendo o contrato de atualização.
func (r *AssociateRepo) SetActive(userID string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE associates SET is_active = $2 WHERE user_id = $1`, userID, active)
	if err != nil {
		return fmt.Errorf("update is_active: %w", err)
	}
	return nil
}
