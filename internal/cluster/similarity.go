package cluster

import "math"

// DefaultThreshold is the minimum cosine similarity for two titles to
// be considered related. Tuned against real agro-feed batches where
// headlines about one event share roughly a third of their units.
const DefaultThreshold = 0.24

// Edge is an undirected similarity edge between two titles, I < J.
type Edge struct {
	I     int
	J     int
	Score float64
}

// Cosine returns the normalized dot product of a and b. Term weights
// are non-negative, so the result is in [0,1]. Zero vectors yield 0.
func Cosine(a, b Vector) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// BuildEdges computes pairwise cosine similarity over all vectors and
// keeps every pair scoring at or above threshold. O(n²), fine for the
// tens of titles a collect run produces.
func BuildEdges(vectors []Vector, threshold float64) []Edge {
	var edges []Edge
	for i := 0; i < len(vectors); i++ {
		for j := i + 1; j < len(vectors); j++ {
			if score := Cosine(vectors[i], vectors[j]); score >= threshold {
				edges = append(edges, Edge{I: i, J: j, Score: score})
			}
		}
	}
	return edges
}
