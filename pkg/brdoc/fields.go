package brdoc

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Forma pragmática local@dominio.tld; sem verificação de DNS/MX.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Motivos de violação da política de senha, na ordem em que são verificados.
const (
	MsgPasswordMinLength  = "Mínimo de 8 caracteres"
	MsgPasswordNeedLetter = "Pelo menos 1 letra"
	MsgPasswordNeedDigit  = "Pelo menos 1 número"
)

// IsEmail valida a forma do e-mail.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsCEP valida o CEP: exatamente 8 dígitos após remover pontuação.
func IsCEP(s string) bool {
	return len(OnlyDigits(s)) == 8
}

// IsPhone valida o telefone: 10 dígitos (fixo) ou 11 (celular) após remover pontuação.
func IsPhone(s string) bool {
	n := len(OnlyDigits(s))
	return n == 10 || n == 11
}

// CheckPassword aplica a política de senha e devolve TODOS os motivos violados,
// não apenas o primeiro. Lista vazia significa senha válida.
func CheckPassword(s string) []string {
	var errs []string
	// Conta caracteres, não bytes: senhas acentuadas são comuns em PT-BR.
	if utf8.RuneCountInString(s) < 8 {
		errs = append(errs, MsgPasswordMinLength)
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		errs = append(errs, MsgPasswordNeedLetter)
	}
	if !hasDigit {
		errs = append(errs, MsgPasswordNeedDigit)
	}
	return errs
}
