package repository

import "github.com/abrasel/portal-associados-api/internal/domain/entity"

// SupervisorRepository porta de persistência do subtipo supervisor.
type SupervisorRepository interface {
	Create(s *entity.Supervisor) error
	// FindByUserID devolve (nil, nil) quando o usuário não tem linha de supervisor.
	FindByUserID(userID string) (*entity.Supervisor, error)
}
