// Package wordlist loads the wordlist table of spec §6 — rows keyed by a
// unique identifier, with taxon/cogid/concept columns — into a pap.Index.
package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/arborlex/gainloss/pap"
)

// ErrMissingColumn indicates the CSV header lacks one of the required
// taxon/cogid/concept columns.
var ErrMissingColumn = errors.New("wordlist: header missing required column")

// Row is one parsed wordlist entry.
type Row struct {
	Taxon   string
	Cogid   string
	Concept string
}

// Load reads a CSV wordlist from r and returns every parsed row plus the
// ordered, de-duplicated taxon list encountered (in first-seen order),
// matching spec §6's "rows keyed by a unique row identifier, columns
// including concept, cogid, and taxon".
func Load(r io.Reader) ([]Row, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("wordlist: reading header: %w", err)
	}
	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[col] = i
	}
	taxonCol, ok1 := colIdx["taxon"]
	cogidCol, ok2 := colIdx["cogid"]
	conceptCol, ok3 := colIdx["concept"]
	if !ok1 || !ok2 || !ok3 {
		return nil, nil, ErrMissingColumn
	}

	var rows []Row
	var taxa []string
	seen := make(map[string]struct{})
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("wordlist: reading row: %w", err)
		}
		row := Row{
			Taxon:   record[taxonCol],
			Cogid:   record[cogidCol],
			Concept: record[conceptCol],
		}
		rows = append(rows, row)
		if _, ok := seen[row.Taxon]; !ok {
			seen[row.Taxon] = struct{}{}
			taxa = append(taxa, row.Taxon)
		}
	}
	return rows, taxa, nil
}

// BuildIndex loads a wordlist and folds it directly into a pap.Index, using
// pap.CharacterKey(cogid, concept) as the character key (spec §6: a
// character key is the pair (cogid, concept_id) rendered as
// "{cogid}:{concept_id}").
func BuildIndex(r io.Reader) (*pap.Index, error) {
	rows, taxa, err := Load(r)
	if err != nil {
		return nil, err
	}

	b, err := pap.NewBuilder(taxa)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		key := pap.CharacterKey(row.Cogid, row.Concept)
		if err := b.Add(row.Taxon, key); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
