package repository

import "github.com/abrasel/portal-associados-api/internal/domain/entity"

// AccountRepository lado de leitura do roster: contas hidratadas e resolução
// de ids de subtipo para o id base.
type AccountRepository interface {
	// List devolve todas as contas, mais recentes primeiro, com o subtipo
	// correspondente ao papel hidratado. Falhas de consulta são propagadas ao
	// chamador, nunca mascaradas como lista vazia.
	List() ([]entity.Account, error)
	// ResolveUserID aceita um id de associado, de supervisor ou o próprio id
	// base e devolve o id base dono. Devolve domain.ErrUserNotFound quando
	// nenhum espaço de id reconhece o valor.
	ResolveUserID(id string) (string, error)
}
