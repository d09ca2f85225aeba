package text

import "unicode"

// minTokenLen drops single-rune fragments left over from folding
// (articles like "é" fold to "e" and carry no signal).
const minTokenLen = 2

// Tokenize folds the title and splits it into word tokens. Tokens are
// runs of letters and digits; everything else is a separator.
func Tokenize(title string) []string {
	folded := Fold(title)

	var tokens []string
	var current []rune
	flush := func() {
		if len(current) >= minTokenLen {
			tokens = append(tokens, string(current))
		}
		current = current[:0]
	}

	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current = append(current, r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// Units returns the vocabulary units of a title: its word tokens plus
// every adjacent word pair, joined with a single space.
func Units(title string) []string {
	tokens := Tokenize(title)
	units := make([]string, 0, 2*len(tokens))
	units = append(units, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		units = append(units, tokens[i]+" "+tokens[i+1])
	}
	return units
}
