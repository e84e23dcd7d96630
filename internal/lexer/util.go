package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

// ===== Работа с рунами поверх Cursor =====

// peekRune читает руну в текущей позиции
func (sc *Scanner) peekRune() (r rune, size int) {
	return sc.peekRuneAt(0)
}

func (sc *Scanner) peekRuneAt(n uint32) (r rune, size int) {
	off := sc.cursor.Off + n
	if off >= sc.cursor.Limit {
		return utf8.RuneError, 0
	}
	b := sc.file.Content[off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(sc.file.Content[off:sc.cursor.Limit])
}

// bumpRune перемещает курсор на размер текущей руны
func (sc *Scanner) bumpRune() {
	_, sz := sc.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	sc.cursor.Off += usz
}

// ===== Классификаторы =====

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// try2 пробует "съесть" 2 байта, если совпадает.
func (sc *Scanner) try2(a, b byte) bool {
	b0, b1, ok := sc.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	sc.cursor.Bump()
	sc.cursor.Bump()
	return true
}
