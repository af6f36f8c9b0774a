package permutation

// genAddition appends one ASCII lowercase letter to the label. Emits 26
// candidates, suffix unchanged.
func genAddition(label, suffix string) []RawCandidate {
	out := newResultSet()
	for i := 0; i < len(lowerAlphabet); i++ {
		out.add(label+string(lowerAlphabet[i]), suffix)
	}
	return out.items
}

// genOmission deletes one character from the label at each position.
func genOmission(label, suffix string) []RawCandidate {
	out := newResultSet()
	for i := range label {
		out.add(label[:i]+label[i+1:], suffix)
	}
	return out.items
}

// genRepetition duplicates the character at each position in place.
func genRepetition(label, suffix string) []RawCandidate {
	out := newResultSet()
	for i := range label {
		out.add(label[:i+1]+label[i:], suffix)
	}
	return out.items
}

// genTransposition swaps each pair of adjacent, differing characters.
func genTransposition(label, suffix string) []RawCandidate {
	out := newResultSet()
	for i := 0; i+1 < len(label); i++ {
		if label[i] == label[i+1] {
			continue
		}
		swapped := label[:i] + string(label[i+1]) + string(label[i]) + label[i+2:]
		out.add(swapped, suffix)
	}
	return out.items
}

// genReplacement substitutes each character with its QWERTY neighbors.
func genReplacement(label, suffix string) []RawCandidate {
	out := newResultSet()
	for i := 0; i < len(label); i++ {
		neighbors, ok := QWERTYNeighbors(label[i])
		if !ok {
			continue
		}
		for j := 0; j < len(neighbors); j++ {
			out.add(label[:i]+string(neighbors[j])+label[i+1:], suffix)
		}
	}
	return out.items
}

// genInsertion inserts, at each internal position, the QWERTY neighbors of
// the character immediately to its left.
func genInsertion(label, suffix string) []RawCandidate {
	out := newResultSet()
	for i := 1; i < len(label); i++ {
		neighbors, ok := QWERTYNeighbors(label[i-1])
		if !ok {
			continue
		}
		for j := 0; j < len(neighbors); j++ {
			out.add(label[:i]+string(neighbors[j])+label[i:], suffix)
		}
	}
	return out.items
}
