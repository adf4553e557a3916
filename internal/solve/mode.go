package solve

import (
	"fmt"
	"strings"
)

// Mode selects which seed interpretation is solved.
type Mode int

const (
	ModeBoth Mode = iota
	ModePoints
	ModeRanges
)

func (m Mode) String() string {
	switch m {
	case ModePoints:
		return "points"
	case ModeRanges:
		return "ranges"
	default:
		return "both"
	}
}

// ParseMode accepts "both", "points" or "ranges", case-insensitively.
// An empty string selects ModeBoth.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return ModeBoth, nil
	case "points":
		return ModePoints, nil
	case "ranges":
		return ModeRanges, nil
	default:
		return ModeBoth, fmt.Errorf("unknown mode %q: want both, points or ranges", s)
	}
}

func (m Mode) points() bool { return m == ModeBoth || m == ModePoints }
func (m Mode) ranges() bool { return m == ModeBoth || m == ModeRanges }
