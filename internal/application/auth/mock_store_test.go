package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/abrasel/portal-associados-api/internal/domain"
	"github.com/abrasel/portal-associados-api/internal/domain/entity"
	"github.com/abrasel/portal-associados-api/internal/domain/repository"
)

// memStore banco em memória compartilhado pelos facets de repositório dos
// testes. O fakeTxRunner tira um snapshot antes de cada callback e o restaura
// quando fn falha, imitando o rollback transacional.
type memStore struct {
	users       []entity.User
	associates  []entity.Associate
	supervisors []entity.Supervisor
}

func (s *memStore) snapshot() memStore {
	return memStore{
		users:       append([]entity.User(nil), s.users...),
		associates:  append([]entity.Associate(nil), s.associates...),
		supervisors: append([]entity.Supervisor(nil), s.supervisors...),
	}
}

// ── facets de repositório ────────────────────────────────────────────────────

type memUsers struct{ s *memStore }

func (r memUsers) Create(u *entity.User) error {
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r memUsers) FindByEmail(email string) (*entity.User, error) {
	for i := range r.s.users {
		if r.s.users[i].Email == email {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r memUsers) FindByID(id string) (*entity.User, error) {
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r memUsers) UpdateProfile(id string, name, email, role *string) error {
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			if name != nil {
				r.s.users[i].Name = *name
			}
			if email != nil {
				r.s.users[i].Email = *email
			}
			if role != nil {
				r.s.users[i].Role = *role
			}
			return nil
		}
	}
	return nil
}

func (r memUsers) Delete(id string) (int64, error) {
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			r.s.users = append(r.s.users[:i], r.s.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memAssociates struct{ s *memStore }

func (r memAssociates) Create(a *entity.Associate) error {
	for _, existing := range r.s.associates {
		if existing.CNPJ == a.CNPJ {
			return domain.ErrCNPJAlreadyExists
		}
	}
	r.s.associates = append(r.s.associates, *a)
	return nil
}

func (r memAssociates) FindByUserID(userID string) (*entity.Associate, error) {
	for i := range r.s.associates {
		if r.s.associates[i].UserID == userID {
			a := r.s.associates[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r memAssociates) SetActive(userID string, active bool) error {
	for i := range r.s.associates {
		if r.s.associates[i].UserID == userID {
			r.s.associates[i].IsActive = active
		}
	}
	return nil
}

type memSupervisors struct{ s *memStore }

func (r memSupervisors) Create(sv *entity.Supervisor) error {
	r.s.supervisors = append(r.s.supervisors, *sv)
	return nil
}

func (r memSupervisors) FindByUserID(userID string) (*entity.Supervisor, error) {
	for i := range r.s.supervisors {
		if r.s.supervisors[i].UserID == userID {
			sv := r.s.supervisors[i]
			return &sv, nil
		}
	}
	return nil, nil
}

// seedSupervisor insere direto no memStore um supervisor com senha hasheada,
// como o cmd/create-supervisor faria.
func seedSupervisor(t *testing.T, s *memStore, email, password string, perms []string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	now := time.Now()
	userID := uuid.New().String()
	s.users = append(s.users, entity.User{
		ID: userID, Email: email, Name: "Supervisor",
		PasswordHash: string(hash), Role: entity.RoleSupervisor,
		CreatedAt: now, UpdatedAt: now,
	})
	s.supervisors = append(s.supervisors, entity.Supervisor{
		ID: uuid.New().String(), UserID: userID, Permissions: perms,
	})
}

// fakeTxRunner executa fn contra o memStore com rollback por snapshot.
type fakeTxRunner struct{ s *memStore }

func (t fakeTxRunner) Run(_ context.Context, fn func(
	users repository.UserRepository,
	associates repository.AssociateRepository,
	supervisors repository.SupervisorRepository,
) error) error {
	saved := t.s.snapshot()
	if err := fn(memUsers{t.s}, memAssociates{t.s}, memSupervisors{t.s}); err != nil {
		*t.s = saved
		return err
	}
	return nil
}
