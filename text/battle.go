package text

import (
	"fmt"
	"strconv"
	"strings"
)

// Worth of each race, in the order the counts are listed.
var (
	goodWorth = []int{1, 2, 3, 3, 4, 10}    // Hobbits, Men, Elves, Dwarves, Eagles, Wizards
	evilWorth = []int{1, 2, 2, 2, 3, 5, 10} // Orcs, Men, Wargs, Goblins, Uruk Hai, Trolls, Wizards
)

// Battle outcomes returned by GoodVsEvil.
const (
	GoodWins = "Battle Result: Good triumphs over Evil"
	EvilWins = "Battle Result: Evil eradicates all trace of Good"
	NoVictor = "Battle Result: No victor on this battle field"
)

// GoodVsEvil tallies two armies given as space-separated counts per race and
// reports which side has the greater total worth. Missing trailing counts
// are treated as zero.
//
// Errors: ErrBadArmy (wrapped with the side name) for non-numeric or
// negative counts, or more counts than the side has races.
func GoodVsEvil(good, evil string) (string, error) {
	g, err := armyWorth(good, goodWorth)
	if err != nil {
		return "", fmt.Errorf("good: %w", err)
	}
	e, err := armyWorth(evil, evilWorth)
	if err != nil {
		return "", fmt.Errorf("evil: %w", err)
	}

	switch {
	case g > e:
		return GoodWins, nil
	case g < e:
		return EvilWins, nil
	default:
		return NoVictor, nil
	}
}

func armyWorth(army string, worth []int) (int, error) {
	fields := strings.Fields(army)
	if len(fields) > len(worth) {
		return 0, ErrBadArmy
	}

	total := 0
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return 0, ErrBadArmy
		}
		total += n * worth[i]
	}

	return total, nil
}
