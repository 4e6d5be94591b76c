package ports

import "context"

// Address endereço devolvido pelo serviço de consulta de CEP.
type Address struct {
	CEP          string
	Street       string
	Neighborhood string
	City         string
	State        string
}

// AddressLookup porta para o serviço externo de enriquecimento de endereço.
// Usado apenas para auto-preenchimento no cadastro; o resultado nunca é
// validado contra o que o associado submete.
type AddressLookup interface {
	// Lookup consulta o CEP (com ou sem pontuação). Devolve domain.ErrNotFound
	// quando o serviço não conhece o CEP.
	Lookup(ctx context.Context, cep string) (*Address, error)
}
