package ports

import (
	"context"

	"github.com/abrasel/portal-associados-api/internal/domain/repository"
)

// TxRunner executa fn com repositórios atados a uma única transação: commit se
// fn devolver nil, rollback em qualquer outro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		associates repository.AssociateRepository,
		supervisors repository.SupervisorRepository,
	) error) error
}
