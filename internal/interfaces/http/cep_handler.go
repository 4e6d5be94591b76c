package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/abrasel/portal-associados-api/internal/application/dto"
	"github.com/abrasel/portal-associados-api/internal/application/ports"
	"github.com/abrasel/portal-associados-api/internal/domain"
	"github.com/abrasel/portal-associados-api/pkg/brdoc"
)

// CEPHandler proxy da consulta de endereço por CEP (auto-preenchimento do cadastro).
type CEPHandler struct {
	lookup ports.AddressLookup
}

// NewCEPHandler constrói o handler de CEP.
func NewCEPHandler(lookup ports.AddressLookup) *CEPHandler {
	return &CEPHandler{lookup: lookup}
}

// Get godoc
// @Summary      Consultar endereço por CEP
// @Tags         cep
// @Produce      json
// @Param        cep  path  string  true  "CEP com ou sem pontuação"
// @Success      200  {object}  dto.AddressResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cep/{cep} [get]
func (h *CEPHandler) Get(c *fiber.Ctx) error {
	addr, err := h.lookup.Lookup(c.Context(), c.Params("cep"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "CEP inválido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "CEP não encontrado"})
		}
		log.Warn().Err(err).Msg("serviço de CEP indisponível")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: "serviço de CEP indisponível"})
	}

	return c.JSON(dto.AddressResponse{
		CEP:          brdoc.FormatCEP(addr.CEP),
		Address:      addr.Street,
		Neighborhood: addr.Neighborhood,
		City:         addr.City,
		State:        addr.State,
	})
}
