package pap

import (
	"fmt"
	"sort"
)

// Index is the immutable presence-absence profile index for a dataset: a
// canonical taxon order, the set of character keys observed, and each
// character's PAP vector plus derived counts (ones, zeros, singleton).
//
// Lifecycle (spec §3): built once per dataset by Builder.Build, then shared
// read-only across every per-character GLS solve.
type Index struct {
	taxa     []string
	taxonIdx map[string]int

	chars     []string // character keys, in first-add order
	charIndex map[string]int

	mat       *bitMatrix
	ones      []int  // per character (row), count of pap==1
	singleton []bool // per character (row), ones[row]==1
}

// Taxa returns the canonical taxon order.
func (idx *Index) Taxa() []string {
	out := make([]string, len(idx.taxa))
	copy(out, idx.taxa)
	return out
}

// TaxonIndex returns the canonical-order position of a taxon name.
func (idx *Index) TaxonIndex(taxon string) (int, error) {
	i, ok := idx.taxonIdx[taxon]
	if !ok {
		return 0, fmt.Errorf("pap: taxon %q: %w", taxon, ErrUnknownTaxon)
	}
	return i, nil
}

// Characters returns every character key observed, sorted ascending for a
// deterministic iteration order (spec testable property 6: determinism).
func (idx *Index) Characters() []string {
	out := make([]string, len(idx.chars))
	copy(out, idx.chars)
	sort.Strings(out)
	return out
}

// NonSingletonCharacters returns Characters() filtered to exclude
// singletons (spec §3: "singletons are excluded from inference").
func (idx *Index) NonSingletonCharacters() []string {
	all := idx.Characters()
	out := make([]string, 0, len(all))
	for _, c := range all {
		row := idx.charIndex[c]
		if !idx.singleton[row] {
			out = append(out, c)
		}
	}
	return out
}

func (idx *Index) rowOf(charKey string) (int, error) {
	row, ok := idx.charIndex[charKey]
	if !ok {
		return 0, fmt.Errorf("pap: character %q: %w", charKey, ErrUnknownCharacter)
	}
	return row, nil
}

// Vector returns character charKey's PAP vector, indexed by canonical taxon
// order.
func (idx *Index) Vector(charKey string) ([]bool, error) {
	row, err := idx.rowOf(charKey)
	if err != nil {
		return nil, err
	}
	return idx.mat.rowSlice(row), nil
}

// Ones returns the number of taxa for which charKey is present.
func (idx *Index) Ones(charKey string) (int, error) {
	row, err := idx.rowOf(charKey)
	if err != nil {
		return 0, err
	}
	return idx.ones[row], nil
}

// Zeros returns the number of taxa for which charKey is absent.
func (idx *Index) Zeros(charKey string) (int, error) {
	ones, err := idx.Ones(charKey)
	if err != nil {
		return 0, err
	}
	return len(idx.taxa) - ones, nil
}

// IsSingleton reports whether charKey has exactly one positive tip.
func (idx *Index) IsSingleton(charKey string) (bool, error) {
	row, err := idx.rowOf(charKey)
	if err != nil {
		return false, err
	}
	return idx.singleton[row], nil
}

// CountTotal returns the total number of distinct characters observed.
func (idx *Index) CountTotal() int { return len(idx.chars) }

// CountSingleton returns the number of singleton characters.
func (idx *Index) CountSingleton() int {
	n := 0
	for _, s := range idx.singleton {
		if s {
			n++
		}
	}
	return n
}

// CountNonSingleton returns the number of non-singleton characters.
func (idx *Index) CountNonSingleton() int { return idx.CountTotal() - idx.CountSingleton() }
