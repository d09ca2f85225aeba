package cluster

import (
	"sort"

	"horizonte/backend/internal/text"
)

// Vector is a dense term-frequency representation of one title in the
// batch-local vocabulary. The vocabulary is rebuilt on every call;
// nothing is retained between batches.
type Vector []float64

const (
	// maxDocFreqRatio excludes units that appear in nearly every title.
	// Such units are feed boilerplate ("leia mais", outlet names) and
	// only inflate similarity scores.
	maxDocFreqRatio = 0.95

	// minTitlesForPruning suspends boilerplate pruning on small batches.
	// Below this size a unit shared by all titles is still the signal
	// we want to cluster on, not boilerplate.
	minTitlesForPruning = 20
)

// Vectorize builds one term-frequency vector per title over a shared
// vocabulary of word and adjacent-word-pair units. It returns nil when
// fewer than two titles are supplied; callers must then treat the whole
// batch as a single cluster with no edges.
func Vectorize(titles []string) []Vector {
	if len(titles) < 2 {
		return nil
	}

	counts := make([]map[string]int, len(titles))
	docFreq := make(map[string]int)
	for i, title := range titles {
		counts[i] = make(map[string]int)
		for _, u := range text.Units(title) {
			counts[i][u]++
		}
		for u := range counts[i] {
			docFreq[u]++
		}
	}

	prune := len(titles) >= minTitlesForPruning
	cutoff := maxDocFreqRatio * float64(len(titles))

	vocab := make([]string, 0, len(docFreq))
	for u, df := range docFreq {
		if prune && float64(df) > cutoff {
			continue
		}
		vocab = append(vocab, u)
	}
	sort.Strings(vocab)

	index := make(map[string]int, len(vocab))
	for col, u := range vocab {
		index[u] = col
	}

	vectors := make([]Vector, len(titles))
	for i := range titles {
		v := make(Vector, len(vocab))
		for u, c := range counts[i] {
			if col, ok := index[u]; ok {
				v[col] = float64(c)
			}
		}
		vectors[i] = v
	}
	return vectors
}
