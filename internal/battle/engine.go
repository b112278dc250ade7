package battle

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/ross1116/pvpcalc/internal/pokemon"
	"github.com/ross1116/pvpcalc/internal/stats"
)

const (
	StabBonus = 1.2

	minRandomFactor = 0.85
	randomSpread    = 0.15
)

// Engine computes single-hit damage from effective stats.
type Engine struct {
	calc *stats.Calculator
}

func NewEngine(calc *stats.Calculator) *Engine {
	if calc == nil {
		calc = stats.DefaultCalculator
	}
	return &Engine{calc: calc}
}

var DefaultEngine = NewEngine(stats.DefaultCalculator)

// Hit describes one attack: the damage dealt and how it came about.
type Hit struct {
	Move          pokemon.Move
	Attacker      pokemon.Pokemon
	Defender      pokemon.Pokemon
	Damage        int
	Stab          bool
	Effectiveness float64
	// Percent is Damage relative to the defender's HP stat.
	Percent float64
}

func (h Hit) Verdict() string {
	switch {
	case h.Effectiveness > pokemon.SuperEffective:
		return "It's extremely effective!"
	case h.Effectiveness > pokemon.Neutral:
		return "It's super effective!"
	case h.Effectiveness < pokemon.NotVeryEffective:
		return fmt.Sprintf("It barely affects %s...", h.Defender.Species.Name)
	case h.Effectiveness < pokemon.Neutral:
		return "It's not very effective..."
	default:
		return ""
	}
}

// Damage is the deterministic formula:
// floor(0.5 * power * atk/def * stab * effectiveness + 1).
func (e *Engine) Damage(move pokemon.Move, attacker, defender pokemon.Pokemon) (int, error) {
	base, _, _, err := e.baseDamage(move, attacker, defender)
	if err != nil {
		return 0, err
	}
	return int(math.Floor(base)), nil
}

// RandomDamage scales the deterministic formula by a uniform factor in
// [0.85, 1.0). A nil rng uses the global source.
func (e *Engine) RandomDamage(rng *rand.Rand, move pokemon.Move, attacker, defender pokemon.Pokemon) (int, error) {
	base, _, _, err := e.baseDamage(move, attacker, defender)
	if err != nil {
		return 0, err
	}
	var r float64
	if rng != nil {
		r = rng.Float64()
	} else {
		r = rand.Float64()
	}
	return int(math.Floor(base * (r*randomSpread + minRandomFactor))), nil
}

// Hit runs the deterministic formula and reports its inputs alongside the result.
func (e *Engine) Hit(move pokemon.Move, attacker, defender pokemon.Pokemon) (Hit, error) {
	base, stab, eff, err := e.baseDamage(move, attacker, defender)
	if err != nil {
		return Hit{}, err
	}
	h := Hit{
		Move:          move,
		Attacker:      attacker,
		Defender:      defender,
		Damage:        int(math.Floor(base)),
		Stab:          stab,
		Effectiveness: eff,
	}
	hp, err := e.calc.HPStat(defender)
	if err != nil {
		return Hit{}, err
	}
	if hp > 0 {
		h.Percent = float64(h.Damage) / float64(hp) * 100
	}
	return h, nil
}

func (e *Engine) baseDamage(move pokemon.Move, attacker, defender pokemon.Pokemon) (float64, bool, float64, error) {
	atk, err := e.calc.EffectiveAttackStat(attacker)
	if err != nil {
		return 0, false, 0, fmt.Errorf("attacker: %w", err)
	}
	def, err := e.calc.EffectiveDefenseStat(defender)
	if err != nil {
		return 0, false, 0, fmt.Errorf("defender: %w", err)
	}

	stab := IsStab(attacker.Species, move)
	modifier := pokemon.MoveEffectiveness(move.Type, defender.Species.Types)
	eff := modifier
	if stab {
		modifier *= StabBonus
	}
	return 0.5*float64(move.Power)*(atk/def)*modifier + 1, stab, eff, nil
}

func Damage(move pokemon.Move, attacker, defender pokemon.Pokemon) (int, error) {
	return DefaultEngine.Damage(move, attacker, defender)
}

func RandomDamage(rng *rand.Rand, move pokemon.Move, attacker, defender pokemon.Pokemon) (int, error) {
	return DefaultEngine.RandomDamage(rng, move, attacker, defender)
}
