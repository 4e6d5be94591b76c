package brdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abrasel/portal-associados-api/pkg/brdoc"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, brdoc.IsEmail("contato@empresa.com.br"))
	assert.True(t, brdoc.IsEmail("a@b.co"))
	assert.False(t, brdoc.IsEmail("sem-arroba.com"))
	assert.False(t, brdoc.IsEmail("a@b"), "sem TLD deve ser rejeitado")
	assert.False(t, brdoc.IsEmail("a b@c.com"), "espaço no local part deve ser rejeitado")
	assert.False(t, brdoc.IsEmail(""))
}

func TestIsCEP(t *testing.T) {
	assert.True(t, brdoc.IsCEP("01310-100"))
	assert.True(t, brdoc.IsCEP("01310100"))
	assert.False(t, brdoc.IsCEP("0131010"), "7 dígitos")
	assert.False(t, brdoc.IsCEP("013101000"), "9 dígitos")
	assert.False(t, brdoc.IsCEP(""))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, brdoc.IsPhone("(31) 3333-4444"), "fixo com 10 dígitos")
	assert.True(t, brdoc.IsPhone("(31) 98888-7777"), "celular com 11 dígitos")
	assert.True(t, brdoc.IsPhone("31988887777"))
	assert.False(t, brdoc.IsPhone("988887777"), "9 dígitos")
	assert.False(t, brdoc.IsPhone("319888877771"), "12 dígitos")
}

// CheckPassword acumula todos os motivos violados, na ordem: tamanho, letra, número.
func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{"curta e sem numero", "abc", []string{brdoc.MsgPasswordMinLength, brdoc.MsgPasswordNeedDigit}},
		{"so numeros", "12345678", []string{brdoc.MsgPasswordNeedLetter}},
		{"so letras", "abcdefgh", []string{brdoc.MsgPasswordNeedDigit}},
		{"valida", "abc12345", nil},
		{"vazia acumula os tres motivos", "", []string{brdoc.MsgPasswordMinLength, brdoc.MsgPasswordNeedLetter, brdoc.MsgPasswordNeedDigit}},
		{"acentuada curta conta caracteres e nao bytes", "áéíó1", []string{brdoc.MsgPasswordMinLength}},
		{"acentuada com 8 caracteres", "áéíóúãõ1", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, brdoc.CheckPassword(tt.password))
		})
	}
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "11222333000181", brdoc.OnlyDigits("11.222.333/0001-81"))
	assert.Equal(t, "", brdoc.OnlyDigits("abc"))
}

// Apenas dígitos ASCII contam: dígitos Unicode de outros alfabetos são
// descartados inteiros, nunca truncados byte a byte.
func TestOnlyDigits_DescartaDigitosNaoASCII(t *testing.T) {
	assert.Equal(t, "", brdoc.OnlyDigits("٠١٢٣٤٥٦٧"), "dígitos arábico-índicos")
	assert.Equal(t, "", brdoc.OnlyDigits("０１２３４５６７"), "dígitos fullwidth")
	assert.Equal(t, "31", brdoc.OnlyDigits("3١1"), "mistura mantém só os ASCII")

	assert.False(t, brdoc.IsCEP("٠١٢٣٤٥٦٧"), "CEP em dígitos não-ASCII deve ser rejeitado")
	assert.Equal(t, "٠١٢٣٤٥٦٧", brdoc.FormatCEP("٠١٢٣٤٥٦٧"), "sem 8 dígitos ASCII a entrada volta inalterada")
}
