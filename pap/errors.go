package pap

import "errors"

var (
	// ErrInvalidDimensions indicates a negative row or column count was
	// requested when allocating the backing bit matrix.
	ErrInvalidDimensions = errors.New("pap: invalid matrix dimensions")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("pap: index out of range")

	// ErrUnknownTaxon indicates a taxon name not present in the canonical
	// taxon order supplied to NewBuilder.
	ErrUnknownTaxon = errors.New("pap: unknown taxon")

	// ErrUnknownCharacter indicates a character key not present in the index.
	ErrUnknownCharacter = errors.New("pap: unknown character")

	// ErrEmptyCharacter indicates a character with zero positive tips was
	// observed; spec §7's EmptyCharacter error kind. Callers should skip the
	// character with a warning, not treat this as fatal.
	ErrEmptyCharacter = errors.New("pap: character has no positive tips")

	// ErrDuplicateTaxon indicates NewBuilder was given the same taxon name
	// twice in the canonical taxon order.
	ErrDuplicateTaxon = errors.New("pap: duplicate taxon in canonical order")
)
