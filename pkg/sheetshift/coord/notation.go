package coord

import (
	"fmt"
	"strings"
)

// Notation selects the textual reference style.
type Notation int

const (
	// NotationA1 uses column letters and row numbers, e.g. "$B$3".
	NotationA1 Notation = iota
	// NotationR1C1 uses row and column indices, e.g. "R3C2" or "R[1]C[-1]".
	NotationR1C1
)

func (n Notation) String() string {
	switch n {
	case NotationA1:
		return "A1"
	case NotationR1C1:
		return "R1C1"
	default:
		return fmt.Sprintf("Notation(%d)", int(n))
	}
}

// ParseNotation accepts "a1" or "r1c1" in any case.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(s) {
	case "a1":
		return NotationA1, nil
	case "r1c1":
		return NotationR1C1, nil
	}
	return 0, fmt.Errorf("notation %q: %w", s, ErrFormat)
}
