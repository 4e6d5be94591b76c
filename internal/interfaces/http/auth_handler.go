package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/abrasel/portal-associados-api/internal/application/auth"
	"github.com/abrasel/portal-associados-api/internal/application/dto"
	"github.com/abrasel/portal-associados-api/internal/application/forms"
	"github.com/abrasel/portal-associados-api/internal/domain"
)

// AuthHandler trata cadastro de associado e login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Cadastrar associado
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "dados do cadastro"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "corpo da requisição inválido"})
	}

	if res := forms.Register(in); !res.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: res.Errors})
	}

	user, err := h.uc.RegisterAssociate(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists),
			errors.Is(err, domain.ErrCNPJAlreadyExists),
			errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		log.Error().Err(err).Str("email", in.Email).Msg("falha no cadastro de associado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno do servidor"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Message: "associado cadastrado com sucesso",
		User:    *user,
	})
}

// Login godoc
// @Summary      Entrar no portal
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "corpo da requisição inválido"})
	}

	if res := forms.Login(in); !res.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: res.Errors})
	}

	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Mensagem única para e-mail inexistente e senha errada.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "credenciais inválidas"})
		}
		log.Error().Err(err).Msg("falha no login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno do servidor"})
	}

	out.Message = "login realizado com sucesso"
	return c.JSON(out)
}
