package battle

import (
	"fmt"
	"io"
	"strings"

	"github.com/ross1116/pvpcalc/internal/pokemon"
)

func DisplayHit(w io.Writer, h Hit) {
	shadow := func(p pokemon.Pokemon) string {
		if p.Shadow {
			return "Shadow "
		}
		return ""
	}

	fmt.Fprintf(w, "\n=== %s ===\n", h.Move.Name)
	fmt.Fprintf(w, "%s%s (L%v %d/%d/%d) used %s on %s%s (L%v %d/%d/%d)\n",
		shadow(h.Attacker), h.Attacker.Species.Name, float64(h.Attacker.Level), h.Attacker.Ivs.Atk, h.Attacker.Ivs.Def, h.Attacker.Ivs.HP,
		h.Move.Name,
		shadow(h.Defender), h.Defender.Species.Name, float64(h.Defender.Level), h.Defender.Ivs.Atk, h.Defender.Ivs.Def, h.Defender.Ivs.HP)
	if h.Stab {
		fmt.Fprintf(w, "Same-type bonus: x%.1f\n", StabBonus)
	}
	fmt.Fprintf(w, "Effectiveness: x%.3f\n", h.Effectiveness)
	if v := h.Verdict(); v != "" {
		fmt.Fprintln(w, v)
	}
	fmt.Fprintf(w, "Damage: %d (~%.1f%% of %s's HP)\n", h.Damage, h.Percent, h.Defender.Species.Name)
}

func DisplayCycle(w io.Writer, fast pokemon.FastMove, charged pokemon.ChargedMove, counts []MoveCount) {
	fmt.Fprintf(w, "\n=== %s -> %s ===\n", fast.Name, charged.Name)
	fmt.Fprintf(w, "%s: +%d energy / %d turns, %s: %d energy\n", fast.Name, fast.EnergyGain, fast.Turns, charged.Name, charged.Energy)
	for i, c := range counts {
		fmt.Fprintf(w, "%d. %d fast moves, %d turns, %d energy left\n", i+1, c.FastMoves, c.Turns, c.RemainingEnergy)
	}
	fmt.Fprintf(w, "Cycle: %d charged moves in %d turns\n", len(counts), CycleTurns(counts))
}

func DisplayMoveset(w io.Writer, s pokemon.Species) {
	types := make([]string, len(s.Types))
	for i, t := range s.Types {
		types[i] = t.Title()
	}
	fmt.Fprintf(w, "\n%s (#%d, %s)\n", s.Name, s.Dex, strings.Join(types, "/"))
	fmt.Fprintln(w, "Fast moves:")
	for i, m := range s.FastMoves {
		fmt.Fprintf(w, "%d. %s\n", i+1, m)
	}
	fmt.Fprintln(w, "Charged moves:")
	for i, m := range s.ChargedMoves {
		fmt.Fprintf(w, "%d. %s\n", i+1, m)
	}
}
