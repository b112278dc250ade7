package pokemon

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

const (
	MinLevel  Level = 1
	MaxLevel  Level = 51
	LevelStep Level = 0.5

	MaxIV = 15
)

var (
	ErrInvalidLevel = errors.New("invalid level")
	ErrInvalidIVs   = errors.New("invalid ivs")
)

// Level is a half-integer level in [MinLevel, MaxLevel].
type Level float64

func (l Level) Valid() bool {
	if l < MinLevel || l > MaxLevel {
		return false
	}
	doubled := float64(l) * 2
	return doubled == math.Trunc(doubled)
}

// Index is the position of l on the level ladder: 1 -> 0, 1.5 -> 1, ..., 51 -> 100.
func (l Level) Index() int {
	return int(float64(l-MinLevel) * 2)
}

func (l Level) Validate() error {
	if !l.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidLevel, float64(l))
	}
	return nil
}

type BaseStats struct {
	Atk int `json:"atk"`
	Def int `json:"def"`
	HP  int `json:"hp"`
}

type Ivs struct {
	Atk int `json:"atk"`
	Def int `json:"def"`
	HP  int `json:"hp"`
}

func (iv Ivs) Validate() error {
	for _, v := range [3]int{iv.Atk, iv.Def, iv.HP} {
		if v < 0 || v > MaxIV {
			return fmt.Errorf("%w: %d/%d/%d", ErrInvalidIVs, iv.Atk, iv.Def, iv.HP)
		}
	}
	return nil
}

type LevelIvs struct {
	Level Level `json:"level"`
	Ivs   Ivs   `json:"ivs"`
}

// Species is one dex entry variant. Regional forms and megas are separate
// species; shadows are not (see Pokemon.Shadow).
type Species struct {
	Dex          int              `json:"dex"`
	ID           string           `json:"speciesId"`
	Name         string           `json:"speciesName"`
	BaseStats    BaseStats        `json:"baseStats"`
	Types        []Type           `json:"types"`
	FastMoves    []string         `json:"fastMoves"`
	ChargedMoves []string         `json:"chargedMoves"`
	Released     bool             `json:"released"`
	Tags         []string         `json:"tags,omitempty"`
	DefaultIVs   map[int]LevelIvs `json:"defaultIvs,omitempty"`
}

func (s *Species) HasType(t Type) bool {
	return slices.Contains(s.Types, t)
}

// Clone returns a deep copy so callers can derive records without aliasing.
func (s Species) Clone() Species {
	out := s
	out.Types = slices.Clone(s.Types)
	out.FastMoves = slices.Clone(s.FastMoves)
	out.ChargedMoves = slices.Clone(s.ChargedMoves)
	out.Tags = slices.Clone(s.Tags)
	if s.DefaultIVs != nil {
		out.DefaultIVs = make(map[int]LevelIvs, len(s.DefaultIVs))
		for k, v := range s.DefaultIVs {
			out.DefaultIVs[k] = v
		}
	}
	return out
}

type Move struct {
	ID    string `json:"moveId"`
	Name  string `json:"name"`
	Type  Type   `json:"type"`
	Power int    `json:"power"`
}

type FastMove struct {
	Move
	EnergyGain int `json:"energyGain"`
	Turns      int `json:"turns"`
}

type ChargedMove struct {
	Move
	Energy          int       `json:"energy"`
	Buffs           []float64 `json:"buffs,omitempty"`
	BuffTarget      string    `json:"buffTarget,omitempty"`
	BuffApplyChance float64   `json:"buffApplyChance,omitempty"`
}

// Pokemon is a value object: a species at a level with a fixed IV spread.
type Pokemon struct {
	Species *Species `json:"species"`
	Level   Level    `json:"level"`
	Ivs     Ivs      `json:"ivs"`
	Shadow  bool     `json:"shadow"`
}

func (p Pokemon) Validate() error {
	if p.Species == nil {
		return errors.New("pokemon has no species")
	}
	if err := p.Level.Validate(); err != nil {
		return err
	}
	return p.Ivs.Validate()
}

// AllIvs enumerates the 4096 IV spreads, attack-major.
func AllIvs() []Ivs {
	out := make([]Ivs, 0, (MaxIV+1)*(MaxIV+1)*(MaxIV+1))
	for atk := 0; atk <= MaxIV; atk++ {
		for def := 0; def <= MaxIV; def++ {
			for hp := 0; hp <= MaxIV; hp++ {
				out = append(out, Ivs{Atk: atk, Def: def, HP: hp})
			}
		}
	}
	return out
}
