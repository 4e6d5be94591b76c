package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abrasel/portal-associados-api/internal/application/auth"
	"github.com/abrasel/portal-associados-api/internal/application/ports"
	"github.com/abrasel/portal-associados-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	RosterUC      *usecase.RosterUseCase
	AddressLookup ports.AddressLookup
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Roster (painel do supervisor; a convenção de acesso fica no front)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.RosterUC)
	users.Get("/", userHandler.List)
	users.Post("/update", userHandler.Update)
	users.Post("/delete", userHandler.Delete)

	// Consulta de CEP (auto-preenchimento do cadastro)
	cepHandler := NewCEPHandler(deps.AddressLookup)
	api.Get("/cep/:cep", cepHandler.Get)
}
