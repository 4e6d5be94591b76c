package brdoc

// FormatCEP formata 8 dígitos como NNNNN-NNN. Qualquer outra quantidade de
// dígitos devolve a entrada inalterada.
func FormatCEP(s string) string {
	d := OnlyDigits(s)
	if len(d) != 8 {
		return s
	}
	return d[:5] + "-" + d[5:]
}

// FormatCNPJ formata 14 dígitos como NN.NNN.NNN/NNNN-NN; senão devolve a entrada.
func FormatCNPJ(s string) string {
	d := OnlyDigits(s)
	if len(d) != 14 {
		return s
	}
	return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
}

// FormatPhone formata 10 dígitos como (NN) NNNN-NNNN e 11 como (NN) NNNNN-NNNN;
// senão devolve a entrada.
func FormatPhone(s string) string {
	d := OnlyDigits(s)
	switch len(d) {
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
	return s
}
