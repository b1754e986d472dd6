package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ModeKind distinguishes the two GLS inference modes of spec §4.1/§4.2.
type ModeKind int

const (
	ModeWeighted ModeKind = iota
	ModeRestricted
)

// ParsedMode is a decoded mode specification: exactly one of (GainWeight,
// LossWeight) or Restriction is meaningful, selected by Kind.
type ParsedMode struct {
	Kind        ModeKind
	GainWeight  int64
	LossWeight  int64
	Restriction int
	Spec        string
}

// ParseMode decodes a mode specification string: exactly "w-{g}-{l}" for
// weighted mode, exactly "r-{k}" for restricted mode (spec §6).
func ParseMode(spec string) (ParsedMode, error) {
	parts := strings.Split(spec, "-")
	switch {
	case len(parts) == 3 && parts[0] == "w":
		g, err1 := strconv.ParseInt(parts[1], 10, 64)
		l, err2 := strconv.ParseInt(parts[2], 10, 64)
		if err1 != nil || err2 != nil || g <= 0 || l <= 0 {
			return ParsedMode{}, fmt.Errorf("%w: %q", ErrInvalidMode, spec)
		}
		return ParsedMode{Kind: ModeWeighted, GainWeight: g, LossWeight: l, Spec: spec}, nil

	case len(parts) == 2 && parts[0] == "r":
		k, err := strconv.Atoi(parts[1])
		if err != nil || k <= 0 {
			return ParsedMode{}, fmt.Errorf("%w: %q", ErrInvalidMode, spec)
		}
		return ParsedMode{Kind: ModeRestricted, Restriction: k, Spec: spec}, nil

	default:
		return ParsedMode{}, fmt.Errorf("%w: %q", ErrInvalidMode, spec)
	}
}
