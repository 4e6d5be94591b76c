package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/abrasel/portal-associados-api/internal/domain/entity"
	"github.com/abrasel/portal-associados-api/internal/domain/repository"
)

var _ repository.SupervisorRepository = (*SupervisorRepo)(nil)

// SupervisorRepo implementação do porto SupervisorRepository sobre PostgreSQL (usável com pool ou tx).
type SupervisorRepo struct {
	q Querier
}

// NewSupervisorRepository constrói o adaptador do subtipo supervisor.
func NewSupervisorRepository(q Querier) *SupervisorRepo {
	return &SupervisorRepo{q: q}
}

// Create persiste a linha de supervisor; permissions vai serializado como JSON.
func (r *SupervisorRepo) Create(s *entity.Supervisor) error {
	perms, err := json.Marshal(s.Permissions)
	if err != nil {
		return fmt.Errorf("serializar permissions: %w", err)
	}
	query := `INSERT INTO supervisors (id, user_id, permissions) VALUES ($1, $2, $3)`
	if _, err := r.q.Exec(context.Background(), query, s.ID, s.UserID, string(perms)); err != nil {
		return fmt.Errorf("insert supervisor: %w", err)
	}
	return nil
}

// FindByUserID obtém a linha de supervisor pelo id do usuário base; (nil, nil) quando não existe.
func (r *SupervisorRepo) FindByUserID(userID string) (*entity.Supervisor, error) {
	query := `SELECT id, user_id, permissions FROM supervisors WHERE user_id = $1`
	var (
		s     entity.Supervisor
		perms string
	)
	err := r.q.QueryRow(context.Background(), query, userID).Scan(&s.ID, &s.UserID, &perms)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supervisor by user: %w", err)
	}
	if err := json.Unmarshal([]byte(perms), &s.Permissions); err != nil {
		return nil, fmt.Errorf("decodificar permissions: %w", err)
	}
	return &s, nil
}
