package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/abrasel/portal-associados-api/internal/application/dto"
	"github.com/abrasel/portal-associados-api/internal/application/usecase"
	"github.com/abrasel/portal-associados-api/internal/domain"
)

// UserHandler operações do painel do supervisor sobre o cadastro de usuários.
type UserHandler struct {
	uc *usecase.RosterUseCase
}

// NewUserHandler constrói o handler do roster.
func NewUserHandler(uc *usecase.RosterUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuários
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UsersResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("falha ao listar usuários")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno do servidor"})
	}
	return c.JSON(dto.UsersResponse{Users: users})
}

// Update godoc
// @Summary      Atualizar usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateUserRequest  true  "userId e campos opcionais"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/update [post]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "corpo da requisição inválido"})
	}
	if msgs := validateStruct(in); len(msgs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: msgs})
	}

	if err := h.uc.Update(c.Context(), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound),
			errors.Is(err, domain.ErrEmailAlreadyExists),
			errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		log.Error().Err(err).Str("userId", in.UserID).Msg("falha ao atualizar usuário")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno do servidor"})
	}

	return c.JSON(dto.MessageResponse{Message: "usuário atualizado com sucesso"})
}

// Delete godoc
// @Summary      Remover usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteUserRequest  true  "userId"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/delete [post]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "corpo da requisição inválido"})
	}
	if msgs := validateStruct(in); len(msgs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: msgs})
	}

	if err := h.uc.Delete(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		log.Error().Err(err).Str("userId", in.UserID).Msg("falha ao remover usuário")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "erro interno do servidor"})
	}

	return c.JSON(dto.MessageResponse{Message: "usuário removido com sucesso"})
}
