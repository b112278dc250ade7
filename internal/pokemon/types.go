package pokemon

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Type uint8

const (
	Normal Type = iota
	Fire
	Water
	Electric
	Grass
	Ice
	Fighting
	Poison
	Ground
	Flying
	Psychic
	Bug
	Rock
	Ghost
	Dragon
	Dark
	Steel
	Fairy

	numTypes = int(Fairy) + 1
)

var typeNames = [numTypes]string{
	Normal:   "normal",
	Fire:     "fire",
	Water:    "water",
	Electric: "electric",
	Grass:    "grass",
	Ice:      "ice",
	Fighting: "fighting",
	Poison:   "poison",
	Ground:   "ground",
	Flying:   "flying",
	Psychic:  "psychic",
	Bug:      "bug",
	Rock:     "rock",
	Ghost:    "ghost",
	Dragon:   "dragon",
	Dark:     "dark",
	Steel:    "steel",
	Fairy:    "fairy",
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// Title returns the display form of the type name, e.g. "Fire".
func (t Type) Title() string {
	return cases.Title(language.English).String(t.String())
}

func (t Type) Valid() bool {
	return int(t) < numTypes
}

// AllTypes returns the 18 types in declaration order.
func AllTypes() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// ParseType maps a gamemaster type name ("fire", "POKEMON_TYPE_FIRE", "Fire") onto a Type.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "pokemon_type_")
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown type %q", s)
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
