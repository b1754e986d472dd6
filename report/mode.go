package report

import "fmt"

// WeightedModeString returns the canonical mode string for weighted GLS
// inference with ratio (g,l): exactly "w-{g}-{l}" (spec §6).
func WeightedModeString(g, l int64) string {
	return fmt.Sprintf("w-%d-%d", g, l)
}

// RestrictedModeString returns the canonical mode string for restricted GLS
// inference with bound k: exactly "r-{k}" (spec §6).
func RestrictedModeString(k int) string {
	return fmt.Sprintf("r-%d", k)
}
