package entity

// Supervisor subtipo 1:1 de User com role=SUPERVISOR: administradores do portal.
type Supervisor struct {
	ID          string // id da linha de subtipo
	UserID      string
	Permissions []string // etiquetas de capacidade, ex.: manage_users, view_reports
}
