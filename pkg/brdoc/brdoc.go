// Package brdoc valida e formata documentos e contatos brasileiros usados no
// cadastro de associados: CNPJ, CEP, telefone, e-mail e política de senha.
// Todas as funções são puras e nunca retornam erro; validadores devolvem bool
// (ou lista de motivos, no caso da senha) e formatadores devolvem a entrada
// inalterada quando a quantidade de dígitos não corresponde ao padrão.
package brdoc

// OnlyDigits devolve apenas os dígitos ASCII de s, na ordem original. Dígitos
// Unicode de outros alfabetos são descartados como qualquer outro caractere.
func OnlyDigits(s string) string {
	var out []byte
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, byte(r))
		}
	}
	return string(out)
}
