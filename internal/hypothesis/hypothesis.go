// Package hypothesis composes the short declarative sentence shown at
// the hub of the foresight graph. The sentence is strictly derived:
// every content word comes from a real title in the working selection,
// glued together by fixed connective phrases. Nothing is generated.
package hypothesis

import "strings"

const (
	// MaxWords is the hard cap on the composed sentence.
	MaxWords = 20

	// maxTitleWords is how much of each title survives into the sentence.
	maxTitleWords = 6

	ellipsis = "…"
)

// Fixed degenerate sentences.
const (
	// NoSelection is used when the working selection is empty.
	NoSelection = "Sem dados suficientes para hipótese."

	// NoBatch is used when there are no signals at all.
	NoBatch = "Sem dados."
)

// Compose derives the hypothesis from the selection's titles, in
// selection order. At most the first three titles are used, each cut to
// its first six words; the result never exceeds MaxWords words.
func Compose(titles []string) string {
	if len(titles) == 0 {
		return NoSelection
	}
	if len(titles) > 3 {
		titles = titles[:3]
	}

	short := make([]string, len(titles))
	for i, t := range titles {
		short[i] = shorten(t)
	}

	var sentence string
	switch len(short) {
	case 1:
		sentence = "Tendências poderão convergir a partir de: '" + short[0] + "'."
	case 2:
		sentence = "Tendências poderão convergir entre: '" + short[0] + "' e '" + short[1] + "'."
	default:
		sentence = "Tendências poderão convergir entre: '" + short[0] + "', '" + short[1] + "' e '" + short[2] + "'."
	}

	words := strings.Fields(sentence)
	if len(words) > MaxWords {
		sentence = strings.Join(words[:MaxWords], " ") + ellipsis
	}
	return sentence
}

func shorten(title string) string {
	words := strings.Fields(title)
	if len(words) <= maxTitleWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxTitleWords], " ") + ellipsis
}
