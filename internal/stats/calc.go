package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/ross1116/pvpcalc/internal/pokemon"
)

// ShadowBonus scales effective attack up and effective defense down for shadows.
const ShadowBonus = 1.2

var ErrCPLimitUnreachable = errors.New("no level satisfies cp limit")

type Calculator struct {
	curve *Curve
}

func NewCalculator(curve *Curve) *Calculator {
	if curve == nil {
		curve = DefaultCurve
	}
	return &Calculator{curve: curve}
}

var DefaultCalculator = NewCalculator(DefaultCurve)

func (c *Calculator) Curve() *Curve {
	return c.curve
}

func (c *Calculator) CPMultiplier(level pokemon.Level) (float64, error) {
	return c.curve.Multiplier(level)
}

// Stat is (base + iv) * cpm(level), unrounded.
func (c *Calculator) Stat(base, iv int, level pokemon.Level) (float64, error) {
	cpm, err := c.curve.Multiplier(level)
	if err != nil {
		return 0, err
	}
	return float64(base+iv) * cpm, nil
}

func (c *Calculator) AttackStat(p pokemon.Pokemon) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return c.Stat(p.Species.BaseStats.Atk, p.Ivs.Atk, p.Level)
}

func (c *Calculator) DefenseStat(p pokemon.Pokemon) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return c.Stat(p.Species.BaseStats.Def, p.Ivs.Def, p.Level)
}

func (c *Calculator) HPStat(p pokemon.Pokemon) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	hp, err := c.Stat(p.Species.BaseStats.HP, p.Ivs.HP, p.Level)
	if err != nil {
		return 0, err
	}
	return int(math.Floor(hp)), nil
}

// EffectiveAttackStat is the attack used in battle, including the shadow bonus.
func (c *Calculator) EffectiveAttackStat(p pokemon.Pokemon) (float64, error) {
	atk, err := c.AttackStat(p)
	if err != nil {
		return 0, err
	}
	if p.Shadow {
		atk *= ShadowBonus
	}
	return atk, nil
}

// EffectiveDefenseStat is the defense used in battle, including the shadow penalty.
func (c *Calculator) EffectiveDefenseStat(p pokemon.Pokemon) (float64, error) {
	def, err := c.DefenseStat(p)
	if err != nil {
		return 0, err
	}
	if p.Shadow {
		def /= ShadowBonus
	}
	return def, nil
}

// CP ignores shadow status.
func (c *Calculator) CP(p pokemon.Pokemon) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	cpm, err := c.curve.Multiplier(p.Level)
	if err != nil {
		return 0, err
	}
	atk, def, hp := totals(p.Species.BaseStats, p.Ivs)
	return cpAt(cpm, atk, def, hp), nil
}

// StatProduct is attack * defense * floor(hp) at the pokemon's level.
func (c *Calculator) StatProduct(p pokemon.Pokemon) (float64, error) {
	atk, err := c.AttackStat(p)
	if err != nil {
		return 0, err
	}
	def, err := c.DefenseStat(p)
	if err != nil {
		return 0, err
	}
	hp, err := c.HPStat(p)
	if err != nil {
		return 0, err
	}
	return atk * def * float64(hp), nil
}

// MaxLevelForLeague finds the highest level at which the species with the
// given IVs stays at or below cpLimit. The continuous inverse of the CP
// formula picks a candidate; the floored CP at that level decides whether to
// step back half a level.
func (c *Calculator) MaxLevelForLeague(species *pokemon.Species, ivs pokemon.Ivs, cpLimit int) (pokemon.Pokemon, error) {
	if species == nil {
		return pokemon.Pokemon{}, errors.New("max level: nil species")
	}
	if err := ivs.Validate(); err != nil {
		return pokemon.Pokemon{}, err
	}
	if cpLimit <= 0 {
		return pokemon.Pokemon{}, fmt.Errorf("max level: cp limit must be positive, got %d", cpLimit)
	}

	out := pokemon.Pokemon{Species: species, Ivs: ivs, Level: pokemon.MaxLevel}

	atk, def, hp := totals(species.BaseStats, ivs)
	statProduct := math.Sqrt(float64(atk * atk * def * hp))
	cpmLimit := math.Sqrt(float64(10*cpLimit) / statProduct)
	if cpmLimit > c.curve.Max() {
		return out, nil
	}

	for _, e := range c.curve.entries {
		if e.CPM < cpmLimit {
			continue
		}
		sq := e.CPM * e.CPM
		if int(math.Floor(0.1*sq*statProduct)) > cpLimit {
			if e.Level == pokemon.MinLevel {
				return pokemon.Pokemon{}, fmt.Errorf("%w: %s at cp %d", ErrCPLimitUnreachable, species.ID, cpLimit)
			}
			out.Level = e.Level - pokemon.LevelStep
		} else {
			out.Level = e.Level
		}
		return out, nil
	}
	return out, nil
}

func totals(base pokemon.BaseStats, ivs pokemon.Ivs) (atk, def, hp int) {
	return base.Atk + ivs.Atk, base.Def + ivs.Def, base.HP + ivs.HP
}

func cpAt(cpm float64, atk, def, hp int) int {
	sq := cpm * cpm
	return int(math.Floor(0.1 * sq * float64(atk) * math.Sqrt(float64(def*hp))))
}
