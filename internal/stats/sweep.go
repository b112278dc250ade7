package stats

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ross1116/pvpcalc/internal/pokemon"
)

// Spread is one IV combination placed at its best level for a league.
type Spread struct {
	Pokemon     pokemon.Pokemon
	CP          int
	Attack      float64
	Defense     float64
	HP          int
	StatProduct float64
}

// Sweep evaluates every IV spread of a species under cpLimit (0 means
// uncapped) and ranks them by stat product. Each attack IV is one task;
// workers bounds how many run at once.
func (c *Calculator) Sweep(ctx context.Context, species *pokemon.Species, cpLimit, workers int) ([]Spread, error) {
	if species == nil {
		return nil, errors.New("sweep: nil species")
	}
	if cpLimit < 0 {
		return nil, fmt.Errorf("sweep: negative cp limit %d", cpLimit)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	const perAttack = (pokemon.MaxIV + 1) * (pokemon.MaxIV + 1)
	out := make([]Spread, (pokemon.MaxIV+1)*perAttack)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for atk := 0; atk <= pokemon.MaxIV; atk++ {
		g.Go(func() error {
			i := atk * perAttack
			for def := 0; def <= pokemon.MaxIV; def++ {
				if err := gCtx.Err(); err != nil {
					return err
				}
				for hp := 0; hp <= pokemon.MaxIV; hp++ {
					s, err := c.spread(species, pokemon.Ivs{Atk: atk, Def: def, HP: hp}, cpLimit)
					if err != nil {
						return err
					}
					out[i] = s
					i++
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep %s: %w", species.ID, err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.StatProduct != b.StatProduct {
			return a.StatProduct > b.StatProduct
		}
		if a.CP != b.CP {
			return a.CP > b.CP
		}
		return ivsLess(a.Pokemon.Ivs, b.Pokemon.Ivs)
	})
	return out, nil
}

func (c *Calculator) spread(species *pokemon.Species, ivs pokemon.Ivs, cpLimit int) (Spread, error) {
	var (
		p   pokemon.Pokemon
		err error
	)
	if cpLimit > 0 {
		p, err = c.MaxLevelForLeague(species, ivs, cpLimit)
	} else {
		p, err = c.OptimalLevel(species, ivs, League{})
	}
	if err != nil {
		return Spread{}, err
	}

	s := Spread{Pokemon: p}
	if s.CP, err = c.CP(p); err != nil {
		return Spread{}, err
	}
	if s.Attack, err = c.AttackStat(p); err != nil {
		return Spread{}, err
	}
	if s.Defense, err = c.DefenseStat(p); err != nil {
		return Spread{}, err
	}
	if s.HP, err = c.HPStat(p); err != nil {
		return Spread{}, err
	}
	s.StatProduct = s.Attack * s.Defense * float64(s.HP)
	return s, nil
}

func ivsLess(a, b pokemon.Ivs) bool {
	if a.Atk != b.Atk {
		return a.Atk < b.Atk
	}
	if a.Def != b.Def {
		return a.Def < b.Def
	}
	return a.HP < b.HP
}

// Range bounds a set of spreads. Its fields are independent min/max folds,
// so partial ranges can be merged in any order.
type Range struct {
	Count      int
	MinCP      int
	MaxCP      int
	MinLevel   pokemon.Level
	MaxLevel   pokemon.Level
	MinAttack  float64
	MaxAttack  float64
	MinDefense float64
	MaxDefense float64
	MinHP      int
	MaxHP      int
}

func Summarize(spreads []Spread) Range {
	var r Range
	for _, s := range spreads {
		r = r.Merge(Range{
			Count:      1,
			MinCP:      s.CP,
			MaxCP:      s.CP,
			MinLevel:   s.Pokemon.Level,
			MaxLevel:   s.Pokemon.Level,
			MinAttack:  s.Attack,
			MaxAttack:  s.Attack,
			MinDefense: s.Defense,
			MaxDefense: s.Defense,
			MinHP:      s.HP,
			MaxHP:      s.HP,
		})
	}
	return r
}

// Merge combines two ranges. The zero Range is the identity.
func (r Range) Merge(o Range) Range {
	if r.Count == 0 {
		return o
	}
	if o.Count == 0 {
		return r
	}
	return Range{
		Count:      r.Count + o.Count,
		MinCP:      min(r.MinCP, o.MinCP),
		MaxCP:      max(r.MaxCP, o.MaxCP),
		MinLevel:   min(r.MinLevel, o.MinLevel),
		MaxLevel:   max(r.MaxLevel, o.MaxLevel),
		MinAttack:  min(r.MinAttack, o.MinAttack),
		MaxAttack:  max(r.MaxAttack, o.MaxAttack),
		MinDefense: min(r.MinDefense, o.MinDefense),
		MaxDefense: max(r.MaxDefense, o.MaxDefense),
		MinHP:      min(r.MinHP, o.MinHP),
		MaxHP:      max(r.MaxHP, o.MaxHP),
	}
}
