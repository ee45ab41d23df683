package br

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold remove acentos e caixa para comparações de busca ("Café" -> "cafe").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// ContainsFold indica se term aparece em s ignorando acentos e caixa. Termo vazio casa sempre.
func ContainsFold(s, term string) bool {
	term = Fold(term)
	if term == "" {
		return true
	}
	return strings.Contains(Fold(s), term)
}
