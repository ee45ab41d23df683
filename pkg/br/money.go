package br

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ParseDecimal interpreta um valor digitado no formato brasileiro ("15,50", "R$ 7,5").
//
// Mantém apenas [0-9,.], troca a primeira vírgula por ponto e lê o maior prefixo
// numérico válido. Entrada sem número resulta em zero. Sinal de menos antes do
// número também resulta em zero: o valor nunca é negativo nem tem o sinal trocado.
func ParseDecimal(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if r == '-' && b.Len() == 0 {
			return decimal.Zero
		}
		if isDigit(r) || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	s := strings.Replace(b.String(), ",", ".", 1)

	end, seenDot := 0, false
scan:
	for i, r := range s {
		switch {
		case isDigit(r):
			end = i + 1
		case r == '.' && !seenDot:
			seenDot = true
		default:
			break scan
		}
	}
	if end == 0 {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s[:end])
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatBRL formata o valor como moeda brasileira ("R$ 1.234,50").
func FormatBRL(d decimal.Decimal) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	return "R$ " + p.Sprintf("%.2f", d.Round(2).InexactFloat64())
}
