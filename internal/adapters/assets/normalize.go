package assets

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// extraSeparators son separadores que aparecen en los nombres del padrón
// y que las categorías Unicode no cubren del todo (espacio full-width,
// punto medio, corchetes japoneses, guiones, 長音, wave dash).
const extraSeparators = "＿　・/（）()［］[]…‥‐―ー~〜"

// NormalizeName canonicaliza un nombre a token apto para nombre de
// archivo: NFKC (pliega full-width/half-width), minúsculas y remoción
// de puntuación/espacios/símbolos. Pura e idempotente: se usa tanto
// para generar candidatos de sondeo como para cualquier índice futuro
// por nombre exacto.
func NormalizeName(s string) string {
	if s == "" {
		return ""
	}

	out := strings.ToLower(norm.NFKC.String(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) ||
			strings.ContainsRune(extraSeparators, r) {
			return -1
		}
		return r
	}, out)
}
