// Package br reúne utilitários de formatos brasileiros: CNPJ, CEP, valores em reais e texto.
package br

// pesos do cálculo dos dígitos verificadores do CNPJ (módulo 11).
var (
	cnpjWeights1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// OnlyDigits remove tudo o que não for dígito ("12.345-678" -> "12345678").
func OnlyDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if isDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// NormalizeCNPJ devolve os 14 dígitos do CNPJ e ok=false se a quantidade não bater.
func NormalizeCNPJ(s string) (string, bool) {
	d := OnlyDigits(s)
	return d, len(d) == 14
}

// IsValidCNPJ confere os dois dígitos verificadores.
// Aceita o CNPJ com ou sem máscara; sequências repetidas (000..., 111...) são inválidas.
func IsValidCNPJ(s string) bool {
	d, ok := NormalizeCNPJ(s)
	if !ok || allSame(d) {
		return false
	}
	if checkDigit(d[:12], cnpjWeights1[:]) != d[12] {
		return false
	}
	return checkDigit(d[:13], cnpjWeights2[:]) == d[13]
}

// FormatCNPJ aplica a máscara 00.000.000/0000-00; devolve a entrada se não tiver 14 dígitos.
func FormatCNPJ(s string) string {
	d, ok := NormalizeCNPJ(s)
	if !ok {
		return s
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// NormalizeCEP devolve apenas os dígitos do CEP.
func NormalizeCEP(s string) string {
	return OnlyDigits(s)
}

func checkDigit(digits string, weights []int) byte {
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * weights[i]
	}
	rem := sum % 11
	if rem < 2 {
		return '0'
	}
	return byte('0' + 11 - rem)
}

func allSame(s string) bool {
	for _, r := range s {
		if r != rune(s[0]) {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
