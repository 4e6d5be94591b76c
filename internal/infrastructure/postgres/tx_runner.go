package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abrasel/portal-associados-api/internal/application/ports"
	"github.com/abrasel/portal-associados-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. O Rollback adiado cobre todos os caminhos de saída,
// inclusive panics.
func (r *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	associates repository.AssociateRepository,
	supervisors repository.SupervisorRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	users := NewUserRepository(tx)
	associates := NewAssociateRepository(tx)
	supervisors := NewSupervisorRepository(tx)

	if err := fn(users, associates, supervisors); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
