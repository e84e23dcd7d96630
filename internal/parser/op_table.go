package parser

import "dgrok/internal/token"

// Приоритеты бинарных операторов: больший связывает сильнее.
// Унарные not @ + - разбираются в ParseFactor и связывают сильнее всех.
const (
	precNone           = 0
	precRelational     = 1 // = <> < > <= >= in is as
	precAdditive       = 2 // + - or xor
	precMultiplicative = 3 // * / div mod and shl shr
)

// binaryPrec returns the precedence of k as a binary operator, or precNone.
func binaryPrec(k token.Kind) int {
	switch {
	case token.MulOps.Has(k):
		return precMultiplicative
	case token.AddOps.Has(k):
		return precAdditive
	case token.RelOps.Has(k):
		return precRelational
	default:
		return precNone
	}
}
