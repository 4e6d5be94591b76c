// Package viacep adapta o serviço público ViaCEP como porta de enriquecimento
// de endereço. É consumido como caixa-preta: o resultado preenche o formulário
// de cadastro e nunca é validado contra o que o associado submete.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/abrasel/portal-associados-api/internal/application/ports"
	"github.com/abrasel/portal-associados-api/internal/domain"
	"github.com/abrasel/portal-associados-api/pkg/brdoc"
)

// Verificação em tempo de compilação de que Client implementa AddressLookup.
var _ ports.AddressLookup = (*Client)(nil)

// Client consome a API REST do ViaCEP com net/http; não requer SDK.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constrói o cliente. baseURL normalmente é https://viacep.com.br.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// viacepResponse corpo devolvido pelo serviço. Em CEP bem-formado porém
// inexistente o serviço responde 200 com {"erro": true}.
type viacepResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// Lookup consulta o CEP normalizado para 8 dígitos. CEP mal-formado devolve
// domain.ErrInvalidInput sem ir à rede; CEP desconhecido, domain.ErrNotFound.
func (c *Client) Lookup(ctx context.Context, cep string) (*ports.Address, error) {
	digits := brdoc.OnlyDigits(cep)
	if len(digits) != 8 {
		return nil, domain.ErrInvalidInput
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("viacep: montar requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("viacep: chamada: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep: status inesperado %d", resp.StatusCode)
	}

	var body viacepResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("viacep: decodificar resposta: %w", err)
	}
	if body.Erro {
		return nil, domain.ErrNotFound
	}

	return &ports.Address{
		CEP:          body.CEP,
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}
