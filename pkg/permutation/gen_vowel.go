package permutation

import "github.com/haloscan/permtwist/pkg/dictionary"

const vowelShuffleCeiling = 1024

func isVowel(b byte) bool {
	for _, v := range dictionary.Vowels {
		if byte(v) == b {
			return true
		}
	}
	return false
}

// genVowelSwap substitutes each vowel with every other vowel, one position
// at a time.
func genVowelSwap(label, suffix string) []RawCandidate {
	out := newResultSet()
	for i := 0; i < len(label); i++ {
		if !isVowel(label[i]) {
			continue
		}
		for _, v := range dictionary.Vowels {
			if byte(v) == label[i] {
				continue
			}
			out.add(label[:i]+string(v)+label[i+1:], suffix)
		}
	}
	return out.items
}

// genVowelShuffle takes the Cartesian product of vowel choices across every
// vowel position simultaneously, capped at vowelShuffleCeiling total
// emissions. Below the cap its output is a superset of VowelSwap's, which
// only ever varies one position; once the cap cuts the product off, some
// VowelSwap candidates may be missing.
func genVowelShuffle(label, suffix string) []RawCandidate {
	positions := make([]int, 0, len(label))
	for i := 0; i < len(label); i++ {
		if isVowel(label[i]) {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return nil
	}

	out := newResultSet()
	vowels := dictionary.Vowels
	choice := make([]int, len(positions))
	bytes := []byte(label)

	for {
		mutated := make([]byte, len(bytes))
		copy(mutated, bytes)
		for i, pos := range positions {
			mutated[pos] = byte(vowels[choice[i]])
		}
		out.add(string(mutated), suffix)
		if len(out.items) >= vowelShuffleCeiling {
			break
		}

		i := len(choice) - 1
		for i >= 0 {
			choice[i]++
			if choice[i] < len(vowels) {
				break
			}
			choice[i] = 0
			i--
		}
		if i < 0 {
			break
		}
	}
	return out.items
}

// genDoubleVowelInsertion inserts each letter a..z between every adjacent
// pair of vowels.
func genDoubleVowelInsertion(label, suffix string) []RawCandidate {
	out := newResultSet()
	for i := 0; i+1 < len(label); i++ {
		if !isVowel(label[i]) || !isVowel(label[i+1]) {
			continue
		}
		for j := 0; j < len(lowerAlphabet); j++ {
			out.add(label[:i+1]+string(lowerAlphabet[j])+label[i+1:], suffix)
		}
	}
	return out.items
}
