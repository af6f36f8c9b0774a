// Package psl provides a read-only, process-wide lookup over a baked-in
// snapshot of the ICANN section of the Public Suffix List.
package psl

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/haloscan/permtwist/pkg/obslog"
)

// Table is a longest-match lookup over a fixed set of public suffixes.
// A Table is safe for concurrent read access; nothing ever mutates it after
// construction.
type Table struct {
	suffixes map[string]struct{}
	sorted   []string
}

func newTable(entries []string) *Table {
	suffixes := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		suffixes[strings.ToLower(e)] = struct{}{}
	}

	sorted := maps.Keys(suffixes)
	sort.Strings(sorted)

	return &Table{suffixes: suffixes, sorted: sorted}
}

// LongestMatch returns the longest dotted suffix of host that is present in
// the table, decomposing host into progressively shorter trailing label
// sequences (a.b.c -> b.c -> c). It returns false when no suffix matches.
func (t *Table) LongestMatch(host string) (string, bool) {
	host = strings.ToLower(host)
	labels := strings.Split(host, ".")

	for i := 0; i < len(labels); i++ {
		candidate := strings.Join(labels[i:], ".")
		if _, ok := t.suffixes[candidate]; ok {
			return candidate, true
		}
	}

	return "", false
}

// All returns every baked suffix, sorted for deterministic iteration order.
func (t *Table) All() []string {
	out := make([]string, len(t.sorted))
	copy(out, t.sorted)
	return out
}

// Global is the process-wide, read-only table built from the baked PSL
// snapshot.
var Global = newTable(bakedSuffixes)

func init() {
	obslog.Debugf("psl: loaded %d baked ICANN suffixes", len(Global.sorted))
}
