package pokemon

const (
	SuperEffective   = 1.6
	NotVeryEffective = 0.625
	DoubleResisted   = NotVeryEffective * NotVeryEffective
	Neutral          = 1.0
)

// Immune is what the games call a double resistance; it is not zero damage.
const Immune = DoubleResisted

type TypeMatchups struct {
	SuperEffectiveOn []Type
	ResistedBy       []Type
	DoubleResistedBy []Type
}

var typeMatchups = [numTypes]TypeMatchups{
	Normal: {
		ResistedBy:       []Type{Rock, Steel},
		DoubleResistedBy: []Type{Ghost},
	},
	Fighting: {
		SuperEffectiveOn: []Type{Dark, Ice, Normal, Rock, Steel},
		ResistedBy:       []Type{Bug, Fairy, Flying, Poison, Psychic},
		DoubleResistedBy: []Type{Ghost},
	},
	Flying: {
		SuperEffectiveOn: []Type{Bug, Fighting, Grass},
		ResistedBy:       []Type{Electric, Rock, Steel},
	},
	Poison: {
		SuperEffectiveOn: []Type{Fairy, Grass},
		ResistedBy:       []Type{Ghost, Ground, Poison, Rock},
		DoubleResistedBy: []Type{Steel},
	},
	Ground: {
		SuperEffectiveOn: []Type{Electric, Fire, Poison, Rock, Steel},
		ResistedBy:       []Type{Bug, Grass},
		DoubleResistedBy: []Type{Flying},
	},
	Rock: {
		SuperEffectiveOn: []Type{Bug, Fire, Flying, Ice},
		ResistedBy:       []Type{Fighting, Ground, Steel},
	},
	Bug: {
		SuperEffectiveOn: []Type{Dark, Grass, Psychic},
		ResistedBy:       []Type{Fairy, Fighting, Fire, Flying, Ghost, Poison, Steel},
	},
	Ghost: {
		SuperEffectiveOn: []Type{Ghost, Psychic},
		ResistedBy:       []Type{Dark},
		DoubleResistedBy: []Type{Normal},
	},
	Steel: {
		SuperEffectiveOn: []Type{Fairy, Ice, Rock},
		ResistedBy:       []Type{Electric, Fire, Steel, Water},
	},
	Fire: {
		SuperEffectiveOn: []Type{Bug, Grass, Ice, Steel},
		ResistedBy:       []Type{Dragon, Fire, Rock, Water},
	},
	Water: {
		SuperEffectiveOn: []Type{Fire, Ground, Rock},
		ResistedBy:       []Type{Dragon, Grass, Water},
	},
	Grass: {
		SuperEffectiveOn: []Type{Ground, Rock, Water},
		ResistedBy:       []Type{Bug, Dragon, Fire, Flying, Grass, Poison, Steel},
	},
	Electric: {
		SuperEffectiveOn: []Type{Flying, Water},
		ResistedBy:       []Type{Dragon, Electric, Grass},
		DoubleResistedBy: []Type{Ground},
	},
	Psychic: {
		SuperEffectiveOn: []Type{Fighting, Poison},
		ResistedBy:       []Type{Psychic, Steel},
		DoubleResistedBy: []Type{Dark},
	},
	Ice: {
		SuperEffectiveOn: []Type{Dragon, Flying, Grass, Ground},
		ResistedBy:       []Type{Fire, Ice, Steel, Water},
	},
	Dragon: {
		SuperEffectiveOn: []Type{Dragon},
		ResistedBy:       []Type{Steel},
		DoubleResistedBy: []Type{Fairy},
	},
	Dark: {
		SuperEffectiveOn: []Type{Ghost, Psychic},
		ResistedBy:       []Type{Dark, Fairy, Fighting},
	},
	Fairy: {
		SuperEffectiveOn: []Type{Dark, Dragon, Fighting},
		ResistedBy:       []Type{Fire, Poison, Steel},
	},
}

// typeChart is the total attack x defense matrix derived from typeMatchups.
var typeChart = buildTypeChart()

func buildTypeChart() [numTypes][numTypes]float64 {
	var chart [numTypes][numTypes]float64
	for atk := range chart {
		for def := range chart[atk] {
			chart[atk][def] = Neutral
		}
		m := typeMatchups[atk]
		// Filled lowest priority first so super effective wins on overlap.
		for _, def := range m.DoubleResistedBy {
			chart[atk][def] = DoubleResisted
		}
		for _, def := range m.ResistedBy {
			chart[atk][def] = NotVeryEffective
		}
		for _, def := range m.SuperEffectiveOn {
			chart[atk][def] = SuperEffective
		}
	}
	return chart
}

// Matchups returns a copy of the relation sets for an attacking type.
func Matchups(attack Type) TypeMatchups {
	m := typeMatchups[attack]
	return TypeMatchups{
		SuperEffectiveOn: append([]Type(nil), m.SuperEffectiveOn...),
		ResistedBy:       append([]Type(nil), m.ResistedBy...),
		DoubleResistedBy: append([]Type(nil), m.DoubleResistedBy...),
	}
}

func Effectiveness(attack, defense Type) float64 {
	return typeChart[attack][defense]
}

// MoveEffectiveness multiplies the single-type multipliers over every
// defending type, so two resistances compound to DoubleResisted.
func MoveEffectiveness(attack Type, defender []Type) float64 {
	multiplier := 1.0
	for _, t := range defender {
		multiplier *= Effectiveness(attack, t)
	}
	return multiplier
}
