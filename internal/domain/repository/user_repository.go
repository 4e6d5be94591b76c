package repository

import "github.com/abrasel/portal-associados-api/internal/domain/entity"

// UserRepository porta de persistência da identidade base.
type UserRepository interface {
	// Create persiste um novo usuário. Devolve domain.ErrEmailAlreadyExists em
	// violação de unicidade do e-mail.
	Create(user *entity.User) error
	// FindByEmail devolve (nil, nil) quando o e-mail não existe.
	FindByEmail(email string) (*entity.User, error)
	// FindByID devolve (nil, nil) quando o id não existe.
	FindByID(id string) (*entity.User, error)
	// UpdateProfile aplica apenas os campos não-nulos (name, email, role) e
	// atualiza updated_at.
	UpdateProfile(id string, name, email, role *string) error
	// Delete remove o usuário base (o subtipo cai em cascata) e devolve quantas
	// linhas foram afetadas.
	Delete(id string) (int64, error)
}
