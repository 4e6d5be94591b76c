package brdoc

// Pesos dos dois dígitos verificadores do CNPJ (algoritmo módulo 11 da Receita
// Federal). O primeiro aplica-se aos 12 primeiros dígitos, o segundo aos 13
// primeiros (já incluindo o primeiro verificador confirmado).
var (
	cnpjWeightsFirst  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsCNPJ valida o CNPJ (com ou sem pontuação) pelo algoritmo de dígitos
// verificadores. Rejeita comprimento diferente de 14 e sequências com todos
// os dígitos iguais ("00000000000000" passa no cálculo, mas não é um CNPJ).
func IsCNPJ(s string) bool {
	digits := OnlyDigits(s)
	if len(digits) != 14 {
		return false
	}
	if allSameDigit(digits) {
		return false
	}

	var sum int
	for i, w := range cnpjWeightsFirst {
		sum += int(digits[i]-'0') * w
	}
	if digits[12] != cnpjCheckDigit(sum) {
		return false
	}

	sum = 0
	for i, w := range cnpjWeightsSecond {
		sum += int(digits[i]-'0') * w
	}
	return digits[13] == cnpjCheckDigit(sum)
}

// cnpjCheckDigit aplica a regra módulo 11: resto < 2 -> 0, senão 11 - resto.
func cnpjCheckDigit(sum int) byte {
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + (11 - r))
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
