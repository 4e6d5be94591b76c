package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/abrasel/portal-associados-api/internal/application/auth"
	"github.com/abrasel/portal-associados-api/internal/application/ports"
	"github.com/abrasel/portal-associados-api/internal/application/usecase"
	"github.com/abrasel/portal-associados-api/internal/domain"
	"github.com/abrasel/portal-associados-api/internal/domain/entity"
	"github.com/abrasel/portal-associados-api/internal/domain/repository"
	apphttp "github.com/abrasel/portal-associados-api/internal/interfaces/http"
	"github.com/abrasel/portal-associados-api/pkg/brdoc"
)

// ──────────────────────────────────────────────────────────────────────────────
// Banco em memória
// ──────────────────────────────────────────────────────────────────────────────

// memStore guarda as três tabelas em slices. Os facets abaixo dão a cada porta
// de repositório sua visão da mesma base, como as implementações de postgres
// compartilham o mesmo pool.
type memStore struct {
	users       []entity.User
	associates  []entity.Associate
	supervisors []entity.Supervisor
}

type memUsers struct{ s *memStore }

func (m memUsers) Create(u *entity.User) error {
	for _, existing := range m.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	m.s.users = append(m.s.users, *u)
	return nil
}

func (m memUsers) FindByEmail(email string) (*entity.User, error) {
	for i := range m.s.users {
		if m.s.users[i].Email == email {
			u := m.s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m memUsers) FindByID(id string) (*entity.User, error) {
	for i := range m.s.users {
		if m.s.users[i].ID == id {
			u := m.s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m memUsers) UpdateProfile(id string, name, email, role *string) error {
	for i := range m.s.users {
		if m.s.users[i].ID != id {
			continue
		}
		if name != nil {
			m.s.users[i].Name = *name
		}
		if email != nil {
			m.s.users[i].Email = *email
		}
		if role != nil {
			m.s.users[i].Role = *role
		}
		return nil
	}
	return nil
}

func (m memUsers) Delete(id string) (int64, error) {
	for i := range m.s.users {
		if m.s.users[i].ID == id {
			userID := m.s.users[i].ID
			m.s.users = append(m.s.users[:i], m.s.users[i+1:]...)
			// Cascata dos subtipos, como o ON DELETE CASCADE do schema.
			for j := range m.s.associates {
				if m.s.associates[j].UserID == userID {
					m.s.associates = append(m.s.associates[:j], m.s.associates[j+1:]...)
					break
				}
			}
			for j := range m.s.supervisors {
				if m.s.supervisors[j].UserID == userID {
					m.s.supervisors = append(m.s.supervisors[:j], m.s.supervisors[j+1:]...)
					break
				}
			}
			return 1, nil
		}
	}
	return 0, nil
}

type memAssociates struct{ s *memStore }

func (m memAssociates) Create(a *entity.Associate) error {
	for _, existing := range m.s.associates {
		if brdoc.OnlyDigits(existing.CNPJ) == brdoc.OnlyDigits(a.CNPJ) {
			return domain.ErrCNPJAlreadyExists
		}
	}
	m.s.associates = append(m.s.associates, *a)
	return nil
}

func (m memAssociates) FindByUserID(userID string) (*entity.Associate, error) {
	for i := range m.s.associates {
		if m.s.associates[i].UserID == userID {
			a := m.s.associates[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m memAssociates) SetActive(userID string, active bool) error {
	for i := range m.s.associates {
		if m.s.associates[i].UserID == userID {
			m.s.associates[i].IsActive = active
		}
	}
	return nil
}

type memSupervisors struct{ s *memStore }

func (m memSupervisors) Create(sup *entity.Supervisor) error {
	m.s.supervisors = append(m.s.supervisors, *sup)
	return nil
}

func (m memSupervisors) FindByUserID(userID string) (*entity.Supervisor, error) {
	for i := range m.s.supervisors {
		if m.s.supervisors[i].UserID == userID {
			sup := m.s.supervisors[i]
			return &sup, nil
		}
	}
	return nil, nil
}

type memAccounts struct{ s *memStore }

func (m memAccounts) List() ([]entity.Account, error) {
	out := make([]entity.Account, 0, len(m.s.users))
	for i := range m.s.users {
		account := entity.Account{User: m.s.users[i]}
		account.User.PasswordHash = ""
		if a, _ := (memAssociates{m.s}).FindByUserID(account.User.ID); a != nil {
			account.Associate = a
		}
		if sup, _ := (memSupervisors{m.s}).FindByUserID(account.User.ID); sup != nil {
			account.Supervisor = sup
		}
		out = append(out, account)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].User.CreatedAt.After(out[j].User.CreatedAt)
	})
	return out, nil
}

func (m memAccounts) ResolveUserID(id string) (string, error) {
	for _, a := range m.s.associates {
		if a.ID == id {
			return a.UserID, nil
		}
	}
	for _, sup := range m.s.supervisors {
		if sup.ID == id {
			return sup.UserID, nil
		}
	}
	for _, u := range m.s.users {
		if u.ID == id {
			return u.ID, nil
		}
	}
	return "", domain.ErrUserNotFound
}

// memTxRunner entrega os facets a fn; rollback restaura o snapshot das slices.
type memTxRunner struct{ s *memStore }

func (r memTxRunner) Run(_ context.Context, fn func(
	users repository.UserRepository,
	associates repository.AssociateRepository,
	supervisors repository.SupervisorRepository,
) error) error {
	users := append([]entity.User(nil), r.s.users...)
	associates := append([]entity.Associate(nil), r.s.associates...)
	supervisors := append([]entity.Supervisor(nil), r.s.supervisors...)

	if err := fn(memUsers{r.s}, memAssociates{r.s}, memSupervisors{r.s}); err != nil {
		r.s.users = users
		r.s.associates = associates
		r.s.supervisors = supervisors
		return err
	}
	return nil
}

// memLookup serviço de CEP enlatado: mapa de CEP (só dígitos) para endereço.
type memLookup struct {
	addresses map[string]ports.Address
}

func (m memLookup) Lookup(_ context.Context, cep string) (*ports.Address, error) {
	digits := brdoc.OnlyDigits(cep)
	if len(digits) != 8 {
		return nil, domain.ErrInvalidInput
	}
	addr, ok := m.addresses[digits]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &addr, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "portal-associados-test"
	testExpMin    = 60
)

// buildTestApp monta o app Fiber completo (rotas reais, casos de uso reais)
// sobre o banco em memória.
func buildTestApp(t *testing.T) (*fiber.App, *memStore) {
	t.Helper()

	s := &memStore{}
	tx := memTxRunner{s}
	authUC := auth.NewAuthUseCase(memUsers{s}, memAssociates{s}, memSupervisors{s}, tx, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	rosterUC := usecase.NewRosterUseCase(memAccounts{s}, tx)
	lookup := memLookup{addresses: map[string]ports.Address{
		"01310100": {
			CEP:          "01310-100",
			Street:       "Avenida Paulista",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
		},
	}}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        authUC,
		RosterUC:      rosterUC,
		AddressLookup: lookup,
	})
	return app, s
}

// doJSON dispara a requisição com corpo JSON e devolve status, corpo cru e o
// corpo decodificado em mapa.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, raw, decoded
}

// registerFixture corpo de cadastro válido.
func registerFixture() map[string]any {
	return map[string]any{
		"email":           "dono@restaurante.com.br",
		"name":            "Maria Silva",
		"password":        "senha123",
		"confirmPassword": "senha123",
		"cep":             "01310-100",
		"address":         "Avenida Paulista",
		"number":          "1000",
		"neighborhood":    "Bela Vista",
		"city":            "São Paulo",
		"state":           "SP",
		"phone":           "(11) 91234-5678",
		"cnpj":            "11.222.333/0001-81",
		"businessTypes":   []string{"restaurante", "bar"},
	}
}

// errorList extrai a lista de mensagens do corpo de erro 400.
func errorList(t *testing.T, decoded map[string]any) []string {
	t.Helper()
	rawList, ok := decoded["error"].([]any)
	require.True(t, ok, "campo error deve ser lista, veio %T", decoded["error"])
	out := make([]string, 0, len(rawList))
	for _, item := range rawList {
		out = append(out, item.(string))
	}
	return out
}
