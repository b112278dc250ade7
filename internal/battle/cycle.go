package battle

import (
	"errors"
	"fmt"

	"github.com/ross1116/pvpcalc/internal/pokemon"
)

var ErrInvalidMove = errors.New("invalid move")

// MoveCount is one charged move use within an energy cycle.
type MoveCount struct {
	FastMoves       int `json:"fastMoves"`
	Turns           int `json:"turns"`
	RemainingEnergy int `json:"remainingEnergy"`
}

// MoveCounts walks the fast/charged pairing through one full cycle, which
// ends when leftover energy returns to zero. The cycle has
// lcm(charged.Energy, fast.EnergyGain) / charged.Energy entries.
func MoveCounts(fast pokemon.FastMove, charged pokemon.ChargedMove) ([]MoveCount, error) {
	if fast.EnergyGain <= 0 || fast.Turns <= 0 {
		return nil, fmt.Errorf("%w: fast move %s gains %d energy over %d turns", ErrInvalidMove, fast.ID, fast.EnergyGain, fast.Turns)
	}
	if charged.Energy <= 0 {
		return nil, fmt.Errorf("%w: charged move %s costs %d energy", ErrInvalidMove, charged.ID, charged.Energy)
	}

	cycles := lcm(charged.Energy, fast.EnergyGain) / charged.Energy
	counts := make([]MoveCount, 0, cycles)
	residual := 0
	for range cycles {
		needed := charged.Energy - residual
		n := (needed + fast.EnergyGain - 1) / fast.EnergyGain
		residual += n*fast.EnergyGain - charged.Energy
		counts = append(counts, MoveCount{
			FastMoves:       n,
			Turns:           n * fast.Turns,
			RemainingEnergy: residual,
		})
	}
	return counts, nil
}

// CycleTurns is the number of turns spent on fast moves across the cycle.
func CycleTurns(counts []MoveCount) int {
	total := 0
	for _, c := range counts {
		total += c.Turns
	}
	return total
}
