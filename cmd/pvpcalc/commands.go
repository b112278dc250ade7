package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/ross1116/pvpcalc/internal/battle"
	"github.com/ross1116/pvpcalc/internal/pokemon"
	"github.com/ross1116/pvpcalc/internal/stats"
)

func parseIvs(s string) (pokemon.Ivs, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return pokemon.Ivs{}, fmt.Errorf("ivs must look like atk/def/hp, got %q", s)
	}
	var vals [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return pokemon.Ivs{}, fmt.Errorf("invalid iv %q: %w", p, err)
		}
		vals[i] = n
	}
	ivs := pokemon.Ivs{Atk: vals[0], Def: vals[1], HP: vals[2]}
	return ivs, ivs.Validate()
}

func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// pokemonFlags are -<prefix>, -<prefix>-level, -<prefix>-ivs and
// -<prefix>-shadow. An empty prefix gives -species, -level, -ivs, -shadow.
type pokemonFlags struct {
	species *string
	level   *float64
	ivs     *string
	shadow  *bool
}

func addPokemonFlags(fs *flag.FlagSet, prefix string) pokemonFlags {
	speciesFlag := prefix
	if prefix == "" {
		speciesFlag = "species"
	}
	opt := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "-" + name
	}
	return pokemonFlags{
		species: fs.String(speciesFlag, "", "species id"),
		level:   fs.Float64(opt("level"), 40, "level, in half steps from 1 to 51"),
		ivs:     fs.String(opt("ivs"), "15/15/15", "ivs as atk/def/hp"),
		shadow:  fs.Bool(opt("shadow"), false, "shadow variant"),
	}
}

func (f pokemonFlags) resolve(e *env) (pokemon.Pokemon, error) {
	if *f.species == "" {
		return pokemon.Pokemon{}, errors.New("species is required")
	}
	sp, err := e.Store.Species(*f.species)
	if err != nil {
		return pokemon.Pokemon{}, err
	}
	ivs, err := parseIvs(*f.ivs)
	if err != nil {
		return pokemon.Pokemon{}, err
	}
	p := pokemon.Pokemon{Species: sp, Level: pokemon.Level(*f.level), Ivs: ivs, Shadow: *f.shadow}
	return p, p.Validate()
}

func runCP(_ context.Context, e *env, args []string, w io.Writer) error {
	fs := newFlagSet("cp", w)
	pf := addPokemonFlags(fs, "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := pf.resolve(e)
	if err != nil {
		return err
	}
	return writeStats(w, e.Calc, p)
}

func writeStats(w io.Writer, calc *stats.Calculator, p pokemon.Pokemon) error {
	cp, err := calc.CP(p)
	if err != nil {
		return err
	}
	atk, err := calc.EffectiveAttackStat(p)
	if err != nil {
		return err
	}
	def, err := calc.EffectiveDefenseStat(p)
	if err != nil {
		return err
	}
	hp, err := calc.HPStat(p)
	if err != nil {
		return err
	}
	product, err := calc.StatProduct(p)
	if err != nil {
		return err
	}

	name := p.Species.Name
	if p.Shadow {
		name = "Shadow " + name
	}
	fmt.Fprintf(w, "%s L%v %d/%d/%d\n", name, float64(p.Level), p.Ivs.Atk, p.Ivs.Def, p.Ivs.HP)
	fmt.Fprintf(w, "CP: %d\n", cp)
	fmt.Fprintf(w, "Attack: %.2f  Defense: %.2f  HP: %d\n", atk, def, hp)
	fmt.Fprintf(w, "Stat product: %.0f\n", product)
	return nil
}

func runMaxLevel(_ context.Context, e *env, args []string, w io.Writer) error {
	fs := newFlagSet("maxlevel", w)
	speciesID := fs.String("species", "", "species id")
	leagueID := fs.String("league", "great", "league id")
	cpLimit := fs.Int("cp", 0, "cp cap, overrides -league")
	ivsFlag := fs.String("ivs", "", "ivs as atk/def/hp (default: the species' default spread for the league)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	league, ok := stats.LeagueByID(*leagueID)
	if !ok {
		return fmt.Errorf("unknown league %q", *leagueID)
	}
	if *cpLimit > 0 {
		league = stats.League{ID: "custom", Name: fmt.Sprintf("CP %d", *cpLimit), MaxCP: *cpLimit}
	}

	sp, err := e.Store.Species(*speciesID)
	if err != nil {
		return err
	}

	ivs := pokemon.Ivs{Atk: pokemon.MaxIV, Def: pokemon.MaxIV, HP: pokemon.MaxIV}
	if *ivsFlag != "" {
		if ivs, err = parseIvs(*ivsFlag); err != nil {
			return err
		}
	} else if def, ok := sp.DefaultIVs[league.MaxCP]; ok {
		ivs = def.Ivs
	}

	p, err := e.Calc.OptimalLevel(sp, ivs, league)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", league.Name)
	return writeStats(w, e.Calc, p)
}

func runDamage(_ context.Context, e *env, args []string, w io.Writer) error {
	fs := newFlagSet("damage", w)
	attacker := addPokemonFlags(fs, "attacker")
	defender := addPokemonFlags(fs, "defender")
	moveID := fs.String("move", "", "fast or charged move id")
	random := fs.Bool("random", false, "roll the random damage variant")
	seed := fs.Uint64("seed", 0, "seed for -random (0 uses a random seed)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	atk, err := attacker.resolve(e)
	if err != nil {
		return fmt.Errorf("attacker: %w", err)
	}
	def, err := defender.resolve(e)
	if err != nil {
		return fmt.Errorf("defender: %w", err)
	}
	move, err := e.Store.Move(*moveID)
	if err != nil {
		return err
	}

	hit, err := e.Engine.Hit(move, atk, def)
	if err != nil {
		return err
	}
	battle.DisplayHit(w, hit)

	if *random {
		var rng *rand.Rand
		if *seed != 0 {
			rng = rand.New(rand.NewPCG(*seed, *seed))
		}
		dmg, err := e.Engine.RandomDamage(rng, move, atk, def)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Random roll: %d\n", dmg)
	}
	return nil
}

func runCycle(_ context.Context, e *env, args []string, w io.Writer) error {
	fs := newFlagSet("cycle", w)
	fastID := fs.String("fast", "", "fast move id")
	chargedID := fs.String("charged", "", "charged move id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fast, err := e.Store.FastMove(*fastID)
	if err != nil {
		return err
	}
	charged, err := e.Store.ChargedMove(*chargedID)
	if err != nil {
		return err
	}
	counts, err := battle.MoveCounts(fast, charged)
	if err != nil {
		return err
	}
	battle.DisplayCycle(w, fast, charged, counts)
	return nil
}

func runMoveset(_ context.Context, e *env, args []string, w io.Writer) error {
	fs := newFlagSet("moveset", w)
	speciesID := fs.String("species", "", "species id")
	raw := fs.Bool("raw", false, "show every move the species has ever had")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		sp  *pokemon.Species
		err error
	)
	if *raw {
		sp, err = e.Store.Species(*speciesID)
	} else {
		sp, err = e.Store.Canonical(*speciesID, e.Canon)
	}
	if err != nil {
		return err
	}
	battle.DisplayMoveset(w, *sp)
	return nil
}

func runSweep(ctx context.Context, e *env, args []string, w io.Writer) error {
	fs := newFlagSet("sweep", w)
	speciesID := fs.String("species", "", "species id")
	leagueID := fs.String("league", "great", "league id")
	top := fs.Int("top", 10, "number of spreads to print")
	if err := fs.Parse(args); err != nil {
		return err
	}

	league, ok := stats.LeagueByID(*leagueID)
	if !ok {
		return fmt.Errorf("unknown league %q", *leagueID)
	}
	sp, err := e.Store.Species(*speciesID)
	if err != nil {
		return err
	}

	start := time.Now()
	e.Logger.Debug().
		Str("species_id", sp.ID).
		Int("cp_limit", league.MaxCP).
		Int("workers", e.Config.SweepWorkers).
		Msg("sweep started")

	spreads, err := e.Calc.Sweep(ctx, sp, league.MaxCP, e.Config.SweepWorkers)
	if err != nil {
		return err
	}
	e.Logger.Debug().
		Str("species_id", sp.ID).
		Int("spreads", len(spreads)).
		Dur("elapsed", time.Since(start)).
		Msg("sweep finished")

	fmt.Fprintf(w, "%s - %s\n", sp.Name, league.Name)
	fmt.Fprintf(w, "%-5s %-10s %-6s %-5s %-8s %-8s %-4s %s\n", "Rank", "IVs", "Level", "CP", "Attack", "Defense", "HP", "Stat product")
	for i, s := range spreads[:min(max(*top, 0), len(spreads))] {
		ivs := fmt.Sprintf("%d/%d/%d", s.Pokemon.Ivs.Atk, s.Pokemon.Ivs.Def, s.Pokemon.Ivs.HP)
		fmt.Fprintf(w, "%-5d %-10s %-6v %-5d %-8.2f %-8.2f %-4d %.0f\n",
			i+1, ivs, float64(s.Pokemon.Level), s.CP, s.Attack, s.Defense, s.HP, s.StatProduct)
	}

	r := stats.Summarize(spreads)
	fmt.Fprintf(w, "\n%d spreads: CP %d-%d, level %v-%v, attack %.2f-%.2f, defense %.2f-%.2f, HP %d-%d\n",
		r.Count, r.MinCP, r.MaxCP, float64(r.MinLevel), float64(r.MaxLevel),
		r.MinAttack, r.MaxAttack, r.MinDefense, r.MaxDefense, r.MinHP, r.MaxHP)
	return nil
}

func runEffectiveness(_ context.Context, _ *env, args []string, w io.Writer) error {
	fs := newFlagSet("effectiveness", w)
	attackName := fs.String("type", "", "attacking type")
	defenderNames := fs.String("defender", "", "comma separated defending types (default: list all matchups)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	attack, err := pokemon.ParseType(*attackName)
	if err != nil {
		return err
	}

	if *defenderNames == "" {
		m := pokemon.Matchups(attack)
		fmt.Fprintf(w, "%s\n", attack.Title())
		fmt.Fprintf(w, "Super effective (x%v): %s\n", pokemon.SuperEffective, titles(m.SuperEffectiveOn))
		fmt.Fprintf(w, "Not very effective (x%v): %s\n", pokemon.NotVeryEffective, titles(m.ResistedBy))
		fmt.Fprintf(w, "Double resisted (x%v): %s\n", pokemon.DoubleResisted, titles(m.DoubleResistedBy))
		return nil
	}

	var defenders []pokemon.Type
	for _, name := range strings.Split(*defenderNames, ",") {
		t, err := pokemon.ParseType(name)
		if err != nil {
			return err
		}
		defenders = append(defenders, t)
	}
	if len(defenders) > 2 {
		return fmt.Errorf("a pokemon has at most 2 types, got %d", len(defenders))
	}
	fmt.Fprintf(w, "%s vs %s: x%v\n", attack.Title(), titles(defenders), pokemon.MoveEffectiveness(attack, defenders))
	return nil
}

func titles(types []pokemon.Type) string {
	if len(types) == 0 {
		return "-"
	}
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.Title()
	}
	return strings.Join(out, ", ")
}
