package gamemaster

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ross1116/pvpcalc/internal/pokemon"
)

// HiddenPowerMove stands in for every typed HIDDEN_POWER_* variant. The
// variant a given pokemon has is not tracked, so it is recorded as normal.
var HiddenPowerMove = pokemon.FastMove{
	Move: pokemon.Move{
		ID:    "HIDDEN_POWER",
		Name:  "Hidden Power",
		Type:  pokemon.Normal,
		Power: 9,
	},
	EnergyGain: 8,
	Turns:      3,
}

const (
	hiddenPowerPrefix = "HIDDEN_POWER_"
	msPerTurn         = 500
)

type rawGamemaster struct {
	Pokemon []rawSpecies `json:"pokemon"`
	Moves   []rawMove    `json:"moves"`
}

type rawSpecies struct {
	Dex          int                  `json:"dex"`
	SpeciesName  string               `json:"speciesName"`
	SpeciesID    string               `json:"speciesId"`
	BaseStats    pokemon.BaseStats    `json:"baseStats"`
	Types        []string             `json:"types"`
	FastMoves    []string             `json:"fastMoves"`
	ChargedMoves []string             `json:"chargedMoves"`
	DefaultIVs   map[string][]float64 `json:"defaultIVs"`
	Released     bool                 `json:"released"`
	Tags         []string             `json:"tags"`
}

type rawMove struct {
	MoveID          string    `json:"moveId"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Power           int       `json:"power"`
	Energy          int       `json:"energy"`
	EnergyGain      int       `json:"energyGain"`
	Cooldown        int       `json:"cooldown"`
	Buffs           []float64 `json:"buffs"`
	BuffTarget      string    `json:"buffTarget"`
	BuffApplyChance chance    `json:"buffApplyChance"`
}

// chance accepts both "0.3"-style strings and plain numbers.
type chance float64

func (c *chance) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid buff apply chance %s: %w", b, err)
	}
	*c = chance(f)
	return nil
}

type parsed struct {
	species []pokemon.Species
	fast    []pokemon.FastMove
	charged []pokemon.ChargedMove
	skipped []string
}

func decode(r io.Reader) (*parsed, error) {
	var raw rawGamemaster
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode gamemaster: %w", err)
	}

	out := &parsed{}
	for _, rs := range raw.Pokemon {
		if excluded(rs) {
			out.skipped = append(out.skipped, rs.SpeciesID)
			continue
		}
		s, err := toSpecies(rs)
		if err != nil {
			return nil, err
		}
		out.species = append(out.species, s)
	}

	for _, rm := range raw.Moves {
		if strings.HasPrefix(rm.MoveID, hiddenPowerPrefix) {
			continue
		}
		if rm.EnergyGain <= 0 && rm.Energy <= 0 {
			continue
		}
		t, err := pokemon.ParseType(rm.Type)
		if err != nil {
			return nil, fmt.Errorf("move %s: %w", rm.MoveID, err)
		}
		m := pokemon.Move{ID: rm.MoveID, Name: displayName(rm.Name, rm.MoveID), Type: t, Power: rm.Power}

		if rm.EnergyGain > 0 {
			turns := rm.Cooldown / msPerTurn
			if turns <= 0 {
				return nil, fmt.Errorf("move %s: cooldown %dms is under one turn", rm.MoveID, rm.Cooldown)
			}
			out.fast = append(out.fast, pokemon.FastMove{Move: m, EnergyGain: rm.EnergyGain, Turns: turns})
		}
		if rm.Energy > 0 {
			out.charged = append(out.charged, pokemon.ChargedMove{
				Move:            m,
				Energy:          rm.Energy,
				Buffs:           rm.Buffs,
				BuffTarget:      rm.BuffTarget,
				BuffApplyChance: float64(rm.BuffApplyChance),
			})
		}
	}
	return out, nil
}

// excluded drops ditto, the arceus and silvally type forms, shadow
// duplicates and entries tagged as duplicates.
func excluded(rs rawSpecies) bool {
	id := rs.SpeciesID
	switch {
	case id == "ditto",
		strings.Contains(id, "arceus_"),
		strings.Contains(id, "silvally_"),
		strings.Contains(id, "_shadow"):
		return true
	}
	for _, tag := range rs.Tags {
		if tag == "duplicate" {
			return true
		}
	}
	return false
}

func toSpecies(rs rawSpecies) (pokemon.Species, error) {
	s := pokemon.Species{
		Dex:          rs.Dex,
		ID:           rs.SpeciesID,
		Name:         displayName(rs.SpeciesName, rs.SpeciesID),
		BaseStats:    rs.BaseStats,
		FastMoves:    collapseHiddenPower(rs.FastMoves),
		ChargedMoves: append([]string(nil), rs.ChargedMoves...),
		Released:     rs.Released,
		Tags:         rs.Tags,
	}

	for _, name := range rs.Types {
		if strings.EqualFold(name, "none") || name == "" {
			continue
		}
		t, err := pokemon.ParseType(name)
		if err != nil {
			return pokemon.Species{}, fmt.Errorf("species %s: %w", rs.SpeciesID, err)
		}
		s.Types = append(s.Types, t)
	}
	if len(s.Types) == 0 || len(s.Types) > 2 {
		return pokemon.Species{}, fmt.Errorf("species %s: expected 1 or 2 types, got %d", rs.SpeciesID, len(s.Types))
	}

	for key, tuple := range rs.DefaultIVs {
		num, ok := strings.CutPrefix(key, "cp")
		if !ok {
			continue
		}
		limit, err := strconv.Atoi(num)
		if err != nil {
			continue
		}
		if limit != 1500 && limit != 2500 {
			continue
		}
		liv, err := toLevelIvs(tuple)
		if err != nil {
			return pokemon.Species{}, fmt.Errorf("species %s default ivs %s: %w", rs.SpeciesID, key, err)
		}
		if s.DefaultIVs == nil {
			s.DefaultIVs = make(map[int]pokemon.LevelIvs, 2)
		}
		s.DefaultIVs[limit] = liv
	}
	return s, nil
}

// toLevelIvs converts a [level, atk, def, hp] tuple.
func toLevelIvs(tuple []float64) (pokemon.LevelIvs, error) {
	if len(tuple) != 4 {
		return pokemon.LevelIvs{}, fmt.Errorf("expected [level, atk, def, hp], got %v", tuple)
	}
	liv := pokemon.LevelIvs{
		Level: pokemon.Level(tuple[0]),
		Ivs:   pokemon.Ivs{Atk: int(tuple[1]), Def: int(tuple[2]), HP: int(tuple[3])},
	}
	if err := liv.Level.Validate(); err != nil {
		return pokemon.LevelIvs{}, err
	}
	if err := liv.Ivs.Validate(); err != nil {
		return pokemon.LevelIvs{}, err
	}
	return liv, nil
}

func collapseHiddenPower(moves []string) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		if !strings.HasPrefix(m, hiddenPowerPrefix) {
			out = append(out, m)
		}
	}
	if len(out) != len(moves) {
		out = append(out, HiddenPowerMove.ID)
	}
	return out
}

// displayName falls back to a title-cased id when the source has no name.
func displayName(name, id string) string {
	if name != "" {
		return name
	}
	words := strings.ReplaceAll(strings.ToLower(id), "_", " ")
	return cases.Title(language.English).String(words)
}
