package battle_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/ross1116/pvpcalc/internal/battle"
	"github.com/ross1116/pvpcalc/internal/pokemon"
)

var (
	feraligatrSpecies = &pokemon.Species{
		ID:        "feraligatr",
		Name:      "Feraligatr",
		BaseStats: pokemon.BaseStats{Atk: 205, Def: 188, HP: 198},
		Types:     []pokemon.Type{pokemon.Water},
	}
	carbinkSpecies = &pokemon.Species{
		ID:        "carbink",
		Name:      "Carbink",
		BaseStats: pokemon.BaseStats{Atk: 95, Def: 285, HP: 137},
		Types:     []pokemon.Type{pokemon.Rock, pokemon.Fairy},
	}

	feraligatr = pokemon.Pokemon{Species: feraligatrSpecies, Level: 20, Ivs: pokemon.Ivs{Atk: 0, Def: 11, HP: 13}}
	carbink    = pokemon.Pokemon{Species: carbinkSpecies, Level: 50, Ivs: pokemon.Ivs{Atk: 4, Def: 14, HP: 15}}

	hydroCannon = pokemon.Move{ID: "HYDRO_CANNON", Name: "Hydro Cannon", Type: pokemon.Water, Power: 80}
	crunch      = pokemon.Move{ID: "CRUNCH", Name: "Crunch", Type: pokemon.Dark, Power: 70}
	iceBeam     = pokemon.Move{ID: "ICE_BEAM", Name: "Ice Beam", Type: pokemon.Ice, Power: 90}
	moonblast   = pokemon.Move{ID: "MOONBLAST", Name: "Moonblast", Type: pokemon.Fairy, Power: 110}
	rockThrow   = pokemon.Move{ID: "ROCK_THROW", Name: "Rock Throw", Type: pokemon.Rock, Power: 8}
)

func shadow(p pokemon.Pokemon) pokemon.Pokemon {
	p.Shadow = true
	return p
}

func TestDamage(t *testing.T) {
	cases := []struct {
		name               string
		move               pokemon.Move
		attacker, defender pokemon.Pokemon
		want               int
	}{
		{"stab super effective", hydroCannon, feraligatr, carbink, 38},
		{"shadow attacker", hydroCannon, shadow(feraligatr), carbink, 45},
		{"shadow defender", hydroCannon, feraligatr, shadow(carbink), 45},
		{"both shadow", hydroCannon, shadow(feraligatr), shadow(carbink), 54},
		{"resisted", crunch, feraligatr, carbink, 11},
		{"neutral", iceBeam, feraligatr, carbink, 22},
		{"stab charged", moonblast, carbink, feraligatr, 47},
		{"stab fast", rockThrow, carbink, feraligatr, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := battle.Damage(tc.move, tc.attacker, tc.defender)
			if err != nil {
				t.Fatalf("Damage: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Damage = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDamageUsesDefenderTypes(t *testing.T) {
	// Water into rock/fairy is super effective; against the attacker's own
	// water typing it would be resisted.
	h, err := battle.DefaultEngine.Hit(hydroCannon, feraligatr, carbink)
	if err != nil {
		t.Fatalf("Hit: %v", err)
	}
	if h.Effectiveness != pokemon.SuperEffective {
		t.Fatalf("effectiveness = %v, want %v", h.Effectiveness, pokemon.SuperEffective)
	}
	if !h.Stab {
		t.Fatalf("expected stab for water move on feraligatr")
	}
	if h.Damage != 38 {
		t.Fatalf("damage = %d, want 38", h.Damage)
	}
	if h.Percent < 29.9 || h.Percent > 30 {
		t.Fatalf("percent = %v, want ~29.92", h.Percent)
	}
	if h.Verdict() != "It's super effective!" {
		t.Fatalf("verdict = %q", h.Verdict())
	}
}

func TestRandomDamage(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	seen := map[int]bool{}
	for range 2000 {
		got, err := battle.RandomDamage(rng, hydroCannon, feraligatr, carbink)
		if err != nil {
			t.Fatalf("RandomDamage: %v", err)
		}
		// floor(38.43 * 0.85) = 32, floor(38.43 * 0.99..) = 38
		if got < 32 || got > 38 {
			t.Fatalf("RandomDamage = %d, want within [32, 38]", got)
		}
		seen[got] = true
	}
	if len(seen) < 5 {
		t.Fatalf("expected varied damage, saw %v", seen)
	}

	a := rand.New(rand.NewPCG(7, 7))
	b := rand.New(rand.NewPCG(7, 7))
	for range 50 {
		x, _ := battle.RandomDamage(a, moonblast, carbink, feraligatr)
		y, _ := battle.RandomDamage(b, moonblast, carbink, feraligatr)
		if x != y {
			t.Fatalf("same seed produced %d and %d", x, y)
		}
	}
}

func TestDamageInvalidPokemon(t *testing.T) {
	bad := feraligatr
	bad.Level = 60
	if _, err := battle.Damage(hydroCannon, bad, carbink); !errors.Is(err, pokemon.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	bad = carbink
	bad.Ivs.Def = 16
	if _, err := battle.Damage(hydroCannon, feraligatr, bad); !errors.Is(err, pokemon.ErrInvalidIVs) {
		t.Fatalf("expected ErrInvalidIVs, got %v", err)
	}
}

func TestIsStab(t *testing.T) {
	if !battle.IsStab(carbinkSpecies, moonblast) || !battle.IsStab(carbinkSpecies, rockThrow) {
		t.Fatalf("expected rock and fairy moves to be stab for carbink")
	}
	if battle.IsStab(carbinkSpecies, hydroCannon) {
		t.Fatalf("water move is not stab for carbink")
	}
	if battle.IsStab(nil, hydroCannon) {
		t.Fatalf("nil species has no stab")
	}
}

func TestDisplayHit(t *testing.T) {
	h, err := battle.DefaultEngine.Hit(hydroCannon, shadow(feraligatr), carbink)
	if err != nil {
		t.Fatalf("Hit: %v", err)
	}
	var b strings.Builder
	battle.DisplayHit(&b, h)
	out := b.String()
	for _, want := range []string{"Shadow Feraligatr", "Hydro Cannon", "Damage: 45", "super effective"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
