package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const minRunLetters = 3

// collapseLetterRuns joins a maximal run of at least three single letters
// separated by exactly one filler character, the same filler throughout:
// "J&u&a&n" becomes "Juan" and "J o e l" becomes "Joel". Fillers are symbols
// and spaces; normal punctuation never counts as a filler. A space-separated
// run is joined only when its letters are shaped like one word, so
// "Plan A y B" and "C y C++" are left alone.
func collapseLetterRuns(s string) string {
	// composed form, so an accented letter is a single rune
	rs := []rune(norm.NFC.String(s))
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); {
		if isSingleLetter(rs, i) && i+2 < len(rs) && isFiller(rs[i+1]) {
			filler := rs[i+1]
			end, count := i, 1
			for end+2 < len(rs) && rs[end+1] == filler && isSingleLetter(rs, end+2) {
				end += 2
				count++
			}
			if count >= minRunLetters && (!unicode.IsSpace(filler) || wordShaped(rs, i, end)) {
				for j := i; j <= end; j += 2 {
					b.WriteRune(rs[j])
				}
				i = end + 1
				continue
			}
		}
		b.WriteRune(rs[i])
		i++
	}
	return b.String()
}

// wordShaped reports whether the letters at rs[i], rs[i+2] ... rs[end] read
// as one word: capitalized or lower case, or all upper case.
func wordShaped(rs []rune, i, end int) bool {
	tail, upper := true, true
	for j := i; j <= end; j += 2 {
		if j > i && unicode.IsUpper(rs[j]) {
			tail = false
		}
		if unicode.IsLower(rs[j]) {
			upper = false
		}
	}
	return tail || upper
}

func isSingleLetter(rs []rune, i int) bool {
	if !unicode.IsLetter(rs[i]) {
		return false
	}
	if i > 0 && isWordRune(rs[i-1]) {
		return false
	}
	if i+1 < len(rs) && isWordRune(rs[i+1]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isFiller(r rune) bool {
	if isWordRune(r) || strings.ContainsRune(`.,;:!?'"()-/`, r) {
		return false
	}
	return unicode.IsSpace(r) || unicode.IsSymbol(r) || unicode.IsPunct(r)
}
