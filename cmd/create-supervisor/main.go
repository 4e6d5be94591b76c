// create-supervisor cria uma conta de supervisor (administrador do portal)
// direto no banco, com o conjunto padrão de permissões. Recusa e-mail já
// cadastrado.
//
// Uso: go run ./cmd/create-supervisor -email admin@exemplo.com.br -name "Nome" -password "senha"
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/abrasel/portal-associados-api/internal/domain/entity"
	"github.com/abrasel/portal-associados-api/internal/domain/repository"
	"github.com/abrasel/portal-associados-api/internal/infrastructure/postgres"
	"github.com/abrasel/portal-associados-api/pkg/brdoc"
	"github.com/abrasel/portal-associados-api/pkg/config"
)

// Permissões concedidas a um supervisor recém-criado.
var defaultPermissions = []string{
	"manage_users",
	"view_reports",
	"system_admin",
	"create_associates",
	"edit_associates",
	"delete_associates",
	"view_analytics",
}

func main() {
	email := flag.String("email", "", "e-mail do supervisor")
	name := flag.String("name", "", "nome do supervisor")
	password := flag.String("password", "", "senha inicial")
	flag.Parse()

	if *email == "" || *name == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "uso: create-supervisor -email ... -name ... -password ...")
		os.Exit(2)
	}
	if !brdoc.IsEmail(*email) {
		fail("e-mail inválido: %s", *email)
	}
	if errs := brdoc.CheckPassword(*password); len(errs) > 0 {
		fail("senha fraca: %v", errs)
	}

	cfg, err := config.Load()
	if err != nil {
		fail("carregar configuração: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexão ao PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fail("migração do schema: %v", err)
	}

	users := postgres.NewUserRepository(pool)
	existing, err := users.FindByEmail(*email)
	if err != nil {
		fail("consultar e-mail: %v", err)
	}
	if existing != nil {
		fail("usuário já existe: %s", *email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fail("hash da senha: %v", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        *email,
		Name:         *name,
		PasswordHash: string(hash),
		Role:         entity.RoleSupervisor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	supervisor := &entity.Supervisor{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Permissions: defaultPermissions,
	}

	txRunner := postgres.NewTxRunner(pool)
	err = txRunner.Run(ctx, func(
		users repository.UserRepository,
		_ repository.AssociateRepository,
		supervisors repository.SupervisorRepository,
	) error {
		if err := users.Create(user); err != nil {
			return err
		}
		return supervisors.Create(supervisor)
	})
	if err != nil {
		fail("criar supervisor: %v", err)
	}

	fmt.Println("supervisor criado com sucesso")
	fmt.Println("email:", *email)
	fmt.Println("nome:", *name)
	fmt.Println("altere a senha no primeiro acesso")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
