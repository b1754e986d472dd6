// Package report implements the file emitters of spec §6: the per-mode
// .gls file, the per-mode stats file, the per-mode lateral-events CSV, and
// the dataset-wide stats file. Line formats follow original_source/trebor.py's
// own writer (see DESIGN.md) exactly, translated from Python string
// formatting to fmt.Fprintf.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arborlex/gainloss/gls"
)

// WriteGLS writes the .gls file for one mode: a header line followed by one
// line per character, sorted by character key for determinism —
// `{char_key}\t{name}:{event},...\t{number_of_origins}\n`.
func WriteGLS(w io.Writer, scenarios map[string]gls.GLS) error {
	if _, err := io.WriteString(w, "PAP\tGainLossScenario\tNumberOfOrigins\n"); err != nil {
		return err
	}

	keys := sortedKeys(scenarios)
	for _, charKey := range keys {
		scenario := scenarios[charKey]
		parts := make([]string, len(scenario))
		for i, e := range scenario {
			parts[i] = fmt.Sprintf("%s:%s", e.Name, eventDigit(e.Gain))
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", charKey, strings.Join(parts, ","), len(scenario.Origins())); err != nil {
			return err
		}
	}
	return nil
}

// ModeStats is the per-mode summary written by WriteStats.
type ModeStats struct {
	TotalPAPs        int
	NonSingletonPAPs int
	Singletons       int
	AverageOrigins   float64
	MaxOrigins       int
	Mode             string

	// Exactly one of Ratio or Restriction is set, matching the two GLS
	// modes of spec §4.1/§4.2.
	Ratio       *[2]int64
	Restriction *int
}

// WriteStats writes the per-mode stats file.
func WriteStats(w io.Writer, s ModeStats) error {
	lines := []string{
		fmt.Sprintf("Number of PAPs (total): %d", s.TotalPAPs),
		fmt.Sprintf("Number of PAPs (non-singletons): %d", s.NonSingletonPAPs),
		fmt.Sprintf("Number of Singletons: %d", s.Singletons),
		fmt.Sprintf("Average Number of Origins: %.2f", s.AverageOrigins),
		fmt.Sprintf("Maximum Number of Origins: %d", s.MaxOrigins),
		fmt.Sprintf("Mode: %s", s.Mode),
	}
	switch {
	case s.Ratio != nil:
		lines = append(lines, fmt.Sprintf("Ratio: %d / %d", s.Ratio[0], s.Ratio[1]))
	case s.Restriction != nil:
		lines = append(lines, fmt.Sprintf("Restriction: %d", *s.Restriction))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// WriteLateralCSV writes the per-mode CSV of inferred lateral events: one
// line per character, `char_key\t u1:v1,u2:v2,...\n`, sorted by character
// key for determinism. edges maps a character key to its lateral edges as
// (u,v) name pairs.
func WriteLateralCSV(w io.Writer, edges map[string][][2]string) error {
	keys := sortedEdgeKeys(edges)
	for _, charKey := range keys {
		pairs := edges[charKey]
		parts := make([]string, len(pairs))
		for i, p := range pairs {
			parts[i] = fmt.Sprintf("%s:%s", p[0], p[1])
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", charKey, strings.Join(parts, ",")); err != nil {
			return err
		}
	}
	return nil
}

// DatasetModeRow is one row of the dataset-wide stats file.
type DatasetModeRow struct {
	Mode string
	ANO  float64
	MNO  int
	VSDz float64
	VSDp float64
}

// WriteDatasetStats writes the dataset-wide stats file: one row per mode,
// columns Mode, ANO, MNO, VSD_z, VSD_p.
func WriteDatasetStats(w io.Writer, rows []DatasetModeRow) error {
	if _, err := io.WriteString(w, "Mode\tANO\tMNO\tVSD_z\tVSD_p\n"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%.2f\t%d\t%.4f\t%.4f\n", r.Mode, r.ANO, r.MNO, r.VSDz, r.VSDp); err != nil {
			return err
		}
	}
	return nil
}

func eventDigit(gain bool) string {
	if gain {
		return "1"
	}
	return "0"
}

func sortedKeys(m map[string]gls.GLS) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedEdgeKeys(m map[string][][2]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
