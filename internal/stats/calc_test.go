package stats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ross1116/pvpcalc/internal/pokemon"
	"github.com/ross1116/pvpcalc/internal/stats"
)

var (
	carbink    = &pokemon.Species{ID: "carbink", BaseStats: pokemon.BaseStats{Atk: 95, Def: 285, HP: 137}, Types: []pokemon.Type{pokemon.Rock, pokemon.Fairy}}
	feraligatr = &pokemon.Species{ID: "feraligatr", BaseStats: pokemon.BaseStats{Atk: 205, Def: 188, HP: 198}, Types: []pokemon.Type{pokemon.Water}}
)

// propertySpecies spans low-stat, bulky, glassy and legendary stat lines.
var propertySpecies = []*pokemon.Species{
	carbink,
	feraligatr,
	{ID: "azumarill", BaseStats: pokemon.BaseStats{Atk: 112, Def: 152, HP: 225}},
	{ID: "medicham", BaseStats: pokemon.BaseStats{Atk: 121, Def: 152, HP: 155}},
	{ID: "registeel", BaseStats: pokemon.BaseStats{Atk: 143, Def: 285, HP: 190}},
	{ID: "skarmory", BaseStats: pokemon.BaseStats{Atk: 148, Def: 226, HP: 163}},
	{ID: "mewtwo", BaseStats: pokemon.BaseStats{Atk: 300, Def: 182, HP: 214}},
	{ID: "bastiodon", BaseStats: pokemon.BaseStats{Atk: 94, Def: 286, HP: 155}},
	{ID: "dialga", BaseStats: pokemon.BaseStats{Atk: 275, Def: 211, HP: 205}},
	{ID: "lanturn", BaseStats: pokemon.BaseStats{Atk: 146, Def: 137, HP: 268}},
	{ID: "shuckle", BaseStats: pokemon.BaseStats{Atk: 17, Def: 396, HP: 85}},
	{ID: "blissey", BaseStats: pokemon.BaseStats{Atk: 129, Def: 169, HP: 496}},
	{ID: "magikarp", BaseStats: pokemon.BaseStats{Atk: 29, Def: 85, HP: 85}},
	{ID: "slaking", BaseStats: pokemon.BaseStats{Atk: 290, Def: 166, HP: 284}},
	{ID: "chansey", BaseStats: pokemon.BaseStats{Atk: 60, Def: 128, HP: 487}},
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestFixtureStats(t *testing.T) {
	calc := stats.DefaultCalculator
	cases := []struct {
		name     string
		p        pokemon.Pokemon
		cp       int
		atk, def float64
		hp       int
	}{
		{
			name: "carbink",
			p:    pokemon.Pokemon{Species: carbink, Level: 50, Ivs: pokemon.Ivs{Atk: 4, Def: 14, HP: 15}},
			cp:   1490, atk: 83.2, def: 251.2, hp: 127,
		},
		{
			name: "feraligatr",
			p:    pokemon.Pokemon{Species: feraligatr, Level: 20, Ivs: pokemon.Ivs{Atk: 0, Def: 11, HP: 13}},
			cp:   1499, atk: 122.4, def: 118.8, hp: 126,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cp, err := calc.CP(tc.p)
			if err != nil {
				t.Fatalf("CP: %v", err)
			}
			if cp != tc.cp {
				t.Fatalf("CP = %d, want %d", cp, tc.cp)
			}
			atk, err := calc.AttackStat(tc.p)
			if err != nil {
				t.Fatalf("AttackStat: %v", err)
			}
			if !approx(atk, tc.atk, 0.1) {
				t.Fatalf("AttackStat = %v, want ~%v", atk, tc.atk)
			}
			def, err := calc.DefenseStat(tc.p)
			if err != nil {
				t.Fatalf("DefenseStat: %v", err)
			}
			if !approx(def, tc.def, 0.1) {
				t.Fatalf("DefenseStat = %v, want ~%v", def, tc.def)
			}
			hp, err := calc.HPStat(tc.p)
			if err != nil {
				t.Fatalf("HPStat: %v", err)
			}
			if hp != tc.hp {
				t.Fatalf("HPStat = %d, want %d", hp, tc.hp)
			}
		})
	}
}

func TestFixtureMaxLevel(t *testing.T) {
	calc := stats.DefaultCalculator
	cases := []struct {
		species *pokemon.Species
		ivs     pokemon.Ivs
		limit   int
		want    pokemon.Level
	}{
		{carbink, pokemon.Ivs{Atk: 4, Def: 14, HP: 15}, 1500, 50.5},
		{carbink, pokemon.Ivs{Atk: 4, Def: 14, HP: 15}, 2500, 51},
		{feraligatr, pokemon.Ivs{Atk: 0, Def: 11, HP: 13}, 1500, 20},
		{feraligatr, pokemon.Ivs{Atk: 0, Def: 11, HP: 13}, 2500, 36.5},
	}

	for _, tc := range cases {
		p, err := calc.MaxLevelForLeague(tc.species, tc.ivs, tc.limit)
		if err != nil {
			t.Fatalf("%s@%d: %v", tc.species.ID, tc.limit, err)
		}
		if p.Level != tc.want {
			t.Errorf("%s@%d: level = %v, want %v", tc.species.ID, tc.limit, p.Level, tc.want)
		}
		if p.Species != tc.species || p.Ivs != tc.ivs || p.Shadow {
			t.Errorf("%s@%d: unexpected pokemon %+v", tc.species.ID, tc.limit, p)
		}
	}
}

func TestShadowAdjustsEffectiveStatsOnly(t *testing.T) {
	calc := stats.DefaultCalculator
	p := pokemon.Pokemon{Species: feraligatr, Level: 20, Ivs: pokemon.Ivs{Atk: 0, Def: 11, HP: 13}}
	shadow := p
	shadow.Shadow = true

	cp, _ := calc.CP(p)
	shadowCP, _ := calc.CP(shadow)
	if cp != shadowCP {
		t.Fatalf("shadow changed CP: %d != %d", cp, shadowCP)
	}

	atk, _ := calc.AttackStat(p)
	effAtk, _ := calc.EffectiveAttackStat(shadow)
	if !approx(effAtk, atk*stats.ShadowBonus, 1e-9) {
		t.Fatalf("shadow attack = %v, want %v", effAtk, atk*stats.ShadowBonus)
	}
	def, _ := calc.DefenseStat(p)
	effDef, _ := calc.EffectiveDefenseStat(shadow)
	if !approx(effDef, def/stats.ShadowBonus, 1e-9) {
		t.Fatalf("shadow defense = %v, want %v", effDef, def/stats.ShadowBonus)
	}

	plainAtk, _ := calc.EffectiveAttackStat(p)
	if plainAtk != atk {
		t.Fatalf("non-shadow effective attack = %v, want %v", plainAtk, atk)
	}
}

func TestInvalidInputs(t *testing.T) {
	calc := stats.DefaultCalculator

	if _, err := calc.CP(pokemon.Pokemon{Species: carbink, Level: 51.5}); !errors.Is(err, pokemon.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if _, err := calc.AttackStat(pokemon.Pokemon{Species: carbink, Level: 20, Ivs: pokemon.Ivs{Atk: 16}}); !errors.Is(err, pokemon.ErrInvalidIVs) {
		t.Fatalf("expected ErrInvalidIVs, got %v", err)
	}
	if _, err := calc.CPMultiplier(20.25); !errors.Is(err, stats.ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
	if _, err := calc.Stat(95, 4, 0.5); !errors.Is(err, stats.ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
	if _, err := calc.MaxLevelForLeague(carbink, pokemon.Ivs{HP: -1}, 1500); !errors.Is(err, pokemon.ErrInvalidIVs) {
		t.Fatalf("expected ErrInvalidIVs, got %v", err)
	}
	if _, err := calc.MaxLevelForLeague(carbink, pokemon.Ivs{}, 0); err == nil {
		t.Fatalf("expected error for zero cp limit")
	}
	if _, err := calc.MaxLevelForLeague(carbink, pokemon.Ivs{}, 10); !errors.Is(err, stats.ErrCPLimitUnreachable) {
		t.Fatalf("expected ErrCPLimitUnreachable, got %v", err)
	}
}

func TestCPMonotonic(t *testing.T) {
	calc := stats.DefaultCalculator
	for _, s := range propertySpecies {
		for _, ivs := range []pokemon.Ivs{{}, {Atk: 15, Def: 15, HP: 15}, {Atk: 0, Def: 15, HP: 15}, {Atk: 7, Def: 3, HP: 11}} {
			prev := 0
			for l := pokemon.MinLevel; l <= pokemon.MaxLevel; l += pokemon.LevelStep {
				cp, err := calc.CP(pokemon.Pokemon{Species: s, Level: l, Ivs: ivs})
				if err != nil {
					t.Fatalf("%s L%v: %v", s.ID, l, err)
				}
				if cp < prev {
					t.Fatalf("%s %+v: cp dropped from %d to %d at level %v", s.ID, ivs, prev, cp, l)
				}
				prev = cp
			}
		}
	}
}

func TestMaxLevelForLeagueIsMaximal(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive sweep")
	}
	calc := stats.DefaultCalculator
	for _, s := range propertySpecies {
		for _, limit := range []int{500, 1500, 2500} {
			for _, ivs := range pokemon.AllIvs() {
				p, err := calc.MaxLevelForLeague(s, ivs, limit)
				if err != nil {
					t.Fatalf("%s %+v @%d: %v", s.ID, ivs, limit, err)
				}
				cp, err := calc.CP(p)
				if err != nil {
					t.Fatalf("%s %+v @%d: %v", s.ID, ivs, limit, err)
				}
				if cp > limit {
					t.Fatalf("%s %+v @%d: level %v has cp %d", s.ID, ivs, limit, p.Level, cp)
				}
				if p.Level == pokemon.MaxLevel {
					continue
				}
				next := p
				next.Level += pokemon.LevelStep
				nextCP, err := calc.CP(next)
				if err != nil {
					t.Fatalf("%s %+v @%d: %v", s.ID, ivs, limit, err)
				}
				if nextCP <= limit {
					t.Fatalf("%s %+v @%d: level %v is not maximal, %v has cp %d", s.ID, ivs, limit, p.Level, next.Level, nextCP)
				}
			}
		}
	}
}

func TestLeagues(t *testing.T) {
	great, ok := stats.LeagueByID("great")
	if !ok || great.MaxCP != 1500 || !great.Capped() {
		t.Fatalf("unexpected great league %+v", great)
	}
	master, ok := stats.LeagueByID("master")
	if !ok || master.Capped() {
		t.Fatalf("unexpected master league %+v", master)
	}
	if _, ok := stats.LeagueByID("little"); ok {
		t.Fatalf("expected no little league")
	}

	ivs := pokemon.Ivs{Atk: 4, Def: 14, HP: 15}
	p, err := stats.DefaultCalculator.OptimalLevel(carbink, ivs, great)
	if err != nil || p.Level != 50.5 {
		t.Fatalf("great league level = %v (%v), want 50.5", p.Level, err)
	}
	p, err = stats.DefaultCalculator.OptimalLevel(carbink, ivs, master)
	if err != nil || p.Level != pokemon.MaxLevel {
		t.Fatalf("master league level = %v (%v), want 51", p.Level, err)
	}
}
