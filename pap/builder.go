package pap

import "fmt"

// Builder accumulates (taxon, character) presence observations against a
// fixed canonical taxon order and produces an Index once every row of the
// wordlist has been folded in.
type Builder struct {
	taxa     []string
	taxonIdx map[string]int

	chars     []string
	charIndex map[string]int
	presence  map[int]map[int]struct{} // charRow -> set of taxonCol
}

// NewBuilder creates a Builder over the given canonical taxon order
// (typically tree.Tree.Tips(tree.Root())). Taxon names must be unique.
func NewBuilder(taxa []string) (*Builder, error) {
	taxonIdx := make(map[string]int, len(taxa))
	for i, t := range taxa {
		if _, dup := taxonIdx[t]; dup {
			return nil, fmt.Errorf("pap: taxon %q: %w", t, ErrDuplicateTaxon)
		}
		taxonIdx[t] = i
	}
	cp := make([]string, len(taxa))
	copy(cp, taxa)
	return &Builder{
		taxa:      cp,
		taxonIdx:  taxonIdx,
		charIndex: make(map[string]int),
		presence:  make(map[int]map[int]struct{}),
	}, nil
}

// CharacterKey renders a wordlist row's (cogid, conceptID) pair as the
// character key format required by spec §6: "{cogid}:{concept_id}".
func CharacterKey(cogid, conceptID string) string {
	return cogid + ":" + conceptID
}

// Add records that taxon exhibits the character identified by charKey (a
// string produced by CharacterKey, or any caller-chosen unique key).
func (b *Builder) Add(taxon, charKey string) error {
	col, ok := b.taxonIdx[taxon]
	if !ok {
		return fmt.Errorf("pap: taxon %q: %w", taxon, ErrUnknownTaxon)
	}
	row, ok := b.charIndex[charKey]
	if !ok {
		row = len(b.chars)
		b.chars = append(b.chars, charKey)
		b.charIndex[charKey] = row
	}
	if b.presence[row] == nil {
		b.presence[row] = make(map[int]struct{})
	}
	b.presence[row][col] = struct{}{}
	return nil
}

// Build finalizes the Index. A character with zero recorded taxa cannot
// occur through Add (every row is only created alongside its first
// observation), so ErrEmptyCharacter can only arise for callers that add a
// character key through some other path without ever calling Add for it;
// Build defends against that by construction (there is no such path here).
func (b *Builder) Build() (*Index, error) {
	mat, err := newBitMatrix(len(b.chars), len(b.taxa))
	if err != nil {
		return nil, err
	}
	ones := make([]int, len(b.chars))
	singleton := make([]bool, len(b.chars))
	for row, cols := range b.presence {
		for col := range cols {
			if err := mat.set(row, col, true); err != nil {
				return nil, err
			}
		}
		ones[row] = len(cols)
		singleton[row] = len(cols) == 1
	}

	charsCopy := make([]string, len(b.chars))
	copy(charsCopy, b.chars)
	charIndexCopy := make(map[string]int, len(b.charIndex))
	for k, v := range b.charIndex {
		charIndexCopy[k] = v
	}

	return &Index{
		taxa:      b.taxa,
		taxonIdx:  b.taxonIdx,
		chars:     charsCopy,
		charIndex: charIndexCopy,
		mat:       mat,
		ones:      ones,
		singleton: singleton,
	}, nil
}
