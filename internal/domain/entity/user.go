package entity

import "time"

// Papéis válidos para User. Todo usuário tem exatamente um papel, que determina
// qual tabela de subtipo (associates ou supervisors) o acompanha.
const (
	RoleAssociate  = "ASSOCIATE"
	RoleSupervisor = "SUPERVISOR"
)

// User identidade base do sistema. Associado e supervisor compartilham esta
// linha em users; os campos específicos vivem nas tabelas de subtipo.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // bcrypt, nunca plano em repouso
	Role         string // ASSOCIATE | SUPERVISOR
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
