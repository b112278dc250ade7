package stats

import "github.com/ross1116/pvpcalc/internal/pokemon"

// League is a ranked format. MaxCP 0 means uncapped.
type League struct {
	ID    string
	Name  string
	MaxCP int
}

func (l League) Capped() bool {
	return l.MaxCP > 0
}

var Leagues = []League{
	{ID: "great", Name: "Great League", MaxCP: 1500},
	{ID: "ultra", Name: "Ultra League", MaxCP: 2500},
	{ID: "master", Name: "Master League"},
	{ID: "remix", Name: "Great League Remix", MaxCP: 1500},
	{ID: "fantasy", Name: "Fantasy Cup", MaxCP: 1500},
	{ID: "psychic", Name: "Psychic Cup", MaxCP: 1500},
	{ID: "halloween", Name: "Halloween Cup", MaxCP: 1500},
	{ID: "fossil", Name: "Fossil Cup", MaxCP: 1500},
	{ID: "summer", Name: "Summer Cup", MaxCP: 1500},
	{ID: "premier-ultra", Name: "Ultra League Premier", MaxCP: 2500},
	{ID: "premier-master", Name: "Master League Premier"},
}

func LeagueByID(id string) (League, bool) {
	for _, l := range Leagues {
		if l.ID == id {
			return l, true
		}
	}
	return League{}, false
}

// OptimalLevel is MaxLevelForLeague for capped leagues and MaxLevel otherwise.
func (c *Calculator) OptimalLevel(species *pokemon.Species, ivs pokemon.Ivs, league League) (pokemon.Pokemon, error) {
	if league.Capped() {
		return c.MaxLevelForLeague(species, ivs, league.MaxCP)
	}
	p := pokemon.Pokemon{Species: species, Level: pokemon.MaxLevel, Ivs: ivs}
	if err := p.Validate(); err != nil {
		return pokemon.Pokemon{}, err
	}
	return p, nil
}
