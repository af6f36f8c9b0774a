package phonetic

import (
	"github.com/agext/levenshtein"

	"github.com/haloscan/permtwist/pkg/domain"
	"github.com/haloscan/permtwist/pkg/permutation"
)

// Encodings is the chosen pair of phonetic keys the scorer settled on.
type Encodings struct {
	Domain      string `json:"domain"`
	Permutation string `json:"permutation"`
}

// ResultData is the op-specific payload of a Result.
type ResultData struct {
	Encodings Encodings `json:"encodings"`
	Distance  float64   `json:"distance"`
}

// Result is the outcome of scoring one permutation against its base domain.
// Its JSON shape matches spec.md §6 exactly.
type Result struct {
	Permutation permutation.Permutation `json:"permutation"`
	Op          string                  `json:"op"`
	Data        ResultData              `json:"data"`
}

type pairing struct {
	a, b string
}

// ComputeDistance scores perm's label against base's label under a
// Metaphone-3-shaped encoding and normalized Levenshtein distance. It never
// fails: if every candidate pairing has an empty side, the result carries
// empty encodings and a distance of 1.0.
func ComputeDistance(base domain.Domain, perm permutation.Permutation) Result {
	ap, as := Encode(base.Label())
	bp, bs := Encode(perm.Domain.Label())

	candidates := []pairing{{ap, bp}, {ap, bs}, {as, bp}, {as, bs}}

	bestFound := false
	var best Encodings
	bestDist := 1.0

	for _, c := range candidates {
		if c.a == "" || c.b == "" {
			continue
		}
		d := normalizedDistance(c.a, c.b)
		if !bestFound || d < bestDist {
			bestFound = true
			bestDist = d
			best = Encodings{Domain: c.a, Permutation: c.b}
		}
	}

	if !bestFound {
		bestDist = 1.0
	}

	return Result{
		Permutation: perm,
		Op:          "Metaphone3",
		Data: ResultData{
			Encodings: best,
			Distance:  bestDist,
		},
	}
}

func normalizedDistance(a, b string) float64 {
	if a == "" && b == "" {
		return 0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	dist := levenshtein.Distance(a, b, nil)
	return float64(dist) / float64(maxLen)
}
