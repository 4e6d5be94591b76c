package repository

import "github.com/abrasel/portal-associados-api/internal/domain/entity"

// AssociateRepository porta de persistência do subtipo associado.
type AssociateRepository interface {
	// Create persiste a linha de associado. Devolve domain.ErrCNPJAlreadyExists
	// em violação de unicidade do CNPJ.
	Create(a *entity.Associate) error
	// FindByUserID devolve (nil, nil) quando o usuário não tem linha de associado.
	FindByUserID(userID string) (*entity.Associate, error)
	// SetActive marca is_active pelo id do usuário base. Quando o alvo é um
	// supervisor nenhuma linha casa e a chamada é um no-op.
	SetActive(userID string, active bool) error
}
