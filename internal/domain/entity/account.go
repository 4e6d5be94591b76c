package entity

// Account união etiquetada por User.Role: exatamente um dos ponteiros de
// subtipo é não-nulo. É a forma hidratada devolvida pelo login e pela
// listagem de usuários.
type Account struct {
	User       User
	Associate  *Associate  // não-nulo quando Role == ASSOCIATE
	Supervisor *Supervisor // não-nulo quando Role == SUPERVISOR
}

// SubtypeID devolve o id público da conta: o id da linha de subtipo quando
// existe, senão o id base (tolerância a linhas de subtipo ausentes).
func (a Account) SubtypeID() string {
	switch {
	case a.Associate != nil:
		return a.Associate.ID
	case a.Supervisor != nil:
		return a.Supervisor.ID
	}
	return a.User.ID
}
