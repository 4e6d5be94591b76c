package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema do portal: identidade base em users e um subtipo 1:1 por papel.
// business_types e permissions são arrays serializados como JSON em texto.
// ON DELETE CASCADE garante que remover o usuário base leva o subtipo junto.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	email      TEXT UNIQUE NOT NULL,
	name       TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	role       TEXT NOT NULL CHECK (role IN ('ASSOCIATE', 'SUPERVISOR')),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS associates (
	id           TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	cep          TEXT NOT NULL,
	address      TEXT NOT NULL,
	number       TEXT,
	neighborhood TEXT NOT NULL,
	city         TEXT NOT NULL,
	state        TEXT NOT NULL,
	phone        TEXT NOT NULL,
	cnpj         TEXT UNIQUE NOT NULL,
	business_types TEXT NOT NULL,
	is_active    BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS supervisors (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	permissions TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users (email);
CREATE INDEX IF NOT EXISTS idx_associates_cnpj ON associates (cnpj);
CREATE INDEX IF NOT EXISTS idx_associates_user_id ON associates (user_id);
CREATE INDEX IF NOT EXISTS idx_supervisors_user_id ON supervisors (user_id);
`

// Migrate cria as tabelas e índices se ainda não existirem (idempotente).
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("aplicar schema: %w", err)
	}
	return nil
}
