package entity

// Associate subtipo 1:1 de User com role=ASSOCIATE: dados comerciais e de
// endereço do estabelecimento. A linha é removida em cascata com o User.
type Associate struct {
	ID            string // id da linha de subtipo (exposto como id público do associado)
	UserID        string
	CEP           string
	Address       string
	Number        string
	Neighborhood  string
	City          string
	State         string
	Phone         string
	CNPJ          string // único, 14 dígitos, verificadores válidos
	BusinessTypes []string
	IsActive      bool
}
