// Package phonetic scores how much a permuted label sounds like its base
// label: a Metaphone-3-shaped phonetic key plus a normalized edit distance.
package phonetic

import "strings"

func isVowelByte(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}

// Encode computes the primary and, when the label contains an ambiguous
// soft/hard consonant, a secondary Metaphone-3-shaped key. A leading vowel
// contributes a single 'A'; every other vowel is silent. Consonant digraphs
// (ph, th, sh, ch) collapse to one sound and "gh" is silent; 'x' expands to
// "KS" unless it is the very first letter of the label.
func Encode(label string) (primary, secondary string) {
	lower := strings.ToLower(label)

	var filtered []byte
	for i := 0; i < len(lower); i++ {
		if lower[i] >= 'a' && lower[i] <= 'z' {
			filtered = append(filtered, lower[i])
		}
	}
	if len(filtered) == 0 {
		return "", ""
	}

	var p, s strings.Builder
	ambiguous := false

	i := 0
	if isVowelByte(filtered[0]) {
		p.WriteByte('A')
		s.WriteByte('A')
		i = 1
	}

	for ; i < len(filtered); i++ {
		c := filtered[i]
		next := byte(0)
		if i+1 < len(filtered) {
			next = filtered[i+1]
		}

		if isVowelByte(c) {
			continue
		}

		switch {
		case c == 'p' && next == 'h':
			p.WriteByte('F')
			s.WriteByte('F')
			i++
		case c == 't' && next == 'h':
			p.WriteByte('T')
			s.WriteByte('T')
			i++
		case c == 's' && next == 'h':
			p.WriteByte('X')
			s.WriteByte('X')
			i++
		case c == 'c' && next == 'h':
			ambiguous = true
			p.WriteByte('X')
			s.WriteByte('K')
			i++
		case c == 'g' && next == 'h':
			// silent digraph, at any position in the label
			i++
		case c == 'c' && (next == 'e' || next == 'i' || next == 'y'):
			ambiguous = true
			p.WriteByte('S')
			s.WriteByte('K')
		case c == 'c':
			p.WriteByte('K')
			s.WriteByte('K')
		case c == 'g' && (next == 'e' || next == 'i' || next == 'y'):
			ambiguous = true
			p.WriteByte('J')
			s.WriteByte('K')
		case c == 'g':
			p.WriteByte('K')
			s.WriteByte('K')
		case c == 'x':
			if i == 0 {
				p.WriteByte('S')
				s.WriteByte('S')
			} else {
				p.WriteString("KS")
				s.WriteString("KS")
			}
		case c == 'q':
			p.WriteByte('K')
			s.WriteByte('K')
		case c == 'v':
			p.WriteByte('F')
			s.WriteByte('F')
		case c == 'z':
			p.WriteByte('S')
			s.WriteByte('S')
		case c == 'w' || c == 'y':
			// consonant only when followed by a vowel; treated as silent
			// otherwise
			if next != 0 && isVowelByte(next) {
				p.WriteByte(upper(c))
				s.WriteByte(upper(c))
			}
		default:
			p.WriteByte(upper(c))
			s.WriteByte(upper(c))
		}
	}

	primary = p.String()
	if !ambiguous || s.String() == primary {
		return primary, ""
	}
	return primary, s.String()
}

func upper(b byte) byte {
	return b - 'a' + 'A'
}
