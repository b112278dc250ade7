package battle

import "github.com/ross1116/pvpcalc/internal/pokemon"

// IsStab reports whether the move shares a type with the species.
func IsStab(species *pokemon.Species, move pokemon.Move) bool {
	if species == nil {
		return false
	}
	return species.HasType(move.Type)
}

func gcf(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcf(a, b) * b
}
