package permutation

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/haloscan/permtwist/pkg/dictionary"
)

// charMapFragments lists dictionary.CharMap's keys in a fixed order, since
// map iteration order is randomized and spec.md §8 property 3 requires
// deterministic emission.
var charMapFragments = func() []string {
	keys := maps.Keys(dictionary.CharMap)
	sort.Strings(keys)
	return keys
}()

// genHomoglyph substitutes single characters and two-character bigrams with
// their visually similar Unicode or ASCII forms from dictionary.Homoglyphs
// and dictionary.HomoglyphBigrams.
func genHomoglyph(label, suffix string) []RawCandidate {
	out := newResultSet()
	runes := []rune(label)
	for i, r := range runes {
		subs, ok := dictionary.Homoglyphs[r]
		if !ok {
			continue
		}
		for _, sub := range subs {
			mutated := make([]rune, len(runes))
			copy(mutated, runes)
			mutated[i] = sub
			out.add(string(mutated), suffix)
		}
	}
	for i := 0; i+1 < len(runes); i++ {
		bigram := string(runes[i : i+2])
		subs, ok := dictionary.HomoglyphBigrams[bigram]
		if !ok {
			continue
		}
		for _, sub := range subs {
			mutated := string(runes[:i]) + sub + string(runes[i+2:])
			out.add(mutated, suffix)
		}
	}
	return out.items
}

// genBitSquatting flips each of the 8 bits of each label byte, keeping only
// flips that land on a lowercase letter, digit or hyphen.
func genBitSquatting(label, suffix string) []RawCandidate {
	out := newResultSet()
	for i := 0; i < len(label); i++ {
		original := label[i]
		for bit := uint(0); bit < 8; bit++ {
			flipped := original ^ (1 << bit)
			if !isAllowedLabelByte(flipped) {
				continue
			}
			out.add(label[:i]+string(flipped)+label[i+1:], suffix)
		}
	}
	return out.items
}

// genMapped applies each CharMap fragment substitution at every site it
// occurs, one rule at one site per emission (never compounded).
func genMapped(label, suffix string) []RawCandidate {
	out := newResultSet()
	for _, fragment := range charMapFragments {
		replacements := dictionary.CharMap[fragment]
		for i := 0; i+len(fragment) <= len(label); i++ {
			if label[i:i+len(fragment)] != fragment {
				continue
			}
			for _, r := range replacements {
				out.add(label[:i]+r+label[i+len(fragment):], suffix)
			}
		}
	}
	return out.items
}

// genDictionary appends, hyphen-appends and prepends each keyword.
func genDictionary(label, suffix string) []RawCandidate {
	out := newResultSet()
	for _, kw := range dictionary.Keywords {
		out.add(label+kw, suffix)
		out.add(label+"-"+kw, suffix)
		out.add(kw+label, suffix)
	}
	return out.items
}
