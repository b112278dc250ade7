package gamemaster

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ross1116/pvpcalc/internal/config"
	"github.com/ross1116/pvpcalc/internal/pokemon"
)

var (
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownMove    = errors.New("unknown move")
)

// Store indexes gamemaster records by id. It is read-only once built.
type Store struct {
	species map[string]*pokemon.Species
	order   []string
	fast    map[string]pokemon.FastMove
	charged map[string]pokemon.ChargedMove
	logger  zerolog.Logger
}

func NewStore(cfg *config.Config, logger zerolog.Logger) (*Store, error) {
	return LoadFile(cfg.GamemasterPath, logger)
}

func LoadFile(path string, logger zerolog.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to open gamemaster")
		return nil, fmt.Errorf("failed to open gamemaster: %w", err)
	}
	defer f.Close()

	s, err := Load(f, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Load(r io.Reader, logger zerolog.Logger) (*Store, error) {
	p, err := decode(r)
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse gamemaster")
		return nil, err
	}

	s := &Store{
		species: make(map[string]*pokemon.Species, len(p.species)),
		order:   make([]string, 0, len(p.species)),
		fast:    make(map[string]pokemon.FastMove, len(p.fast)+1),
		charged: make(map[string]pokemon.ChargedMove, len(p.charged)+1),
		logger:  logger,
	}

	for i := range p.species {
		sp := &p.species[i]
		if _, dup := s.species[sp.ID]; dup {
			logger.Warn().Str("species_id", sp.ID).Msg("duplicate species, keeping first")
			continue
		}
		s.species[sp.ID] = sp
		s.order = append(s.order, sp.ID)
	}
	for _, m := range p.fast {
		s.fast[m.ID] = m
	}
	for _, m := range p.charged {
		s.charged[m.ID] = m
	}
	s.fast[HiddenPowerMove.ID] = HiddenPowerMove
	s.charged[pokemon.ReturnMove.ID] = pokemon.ReturnMove

	logger.Debug().
		Int("species", len(s.species)).
		Int("fast_moves", len(s.fast)).
		Int("charged_moves", len(s.charged)).
		Strs("skipped", p.skipped).
		Msg("gamemaster loaded")

	return s, nil
}

// Species returns the raw record. Callers must not modify it; use
// Canonical for a filtered copy.
func (s *Store) Species(id string) (*pokemon.Species, error) {
	sp, ok := s.species[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpecies, id)
	}
	return sp, nil
}

// Canonical returns the species with its ranked-legal moveset.
func (s *Store) Canonical(id string, c *pokemon.Canonicalizer) (*pokemon.Species, error) {
	sp, err := s.Species(id)
	if err != nil {
		return nil, err
	}
	out := c.Canonicalize(*sp)
	for _, m := range out.FastMoves {
		if _, ok := s.fast[m]; !ok {
			s.logger.Warn().Str("species_id", sp.ID).Str("move_id", m).Msg("fast move missing from gamemaster")
		}
	}
	for _, m := range out.ChargedMoves {
		if _, ok := s.charged[m]; !ok {
			s.logger.Warn().Str("species_id", sp.ID).Str("move_id", m).Msg("charged move missing from gamemaster")
		}
	}
	return &out, nil
}

func (s *Store) FastMove(id string) (pokemon.FastMove, error) {
	m, ok := s.fast[strings.ToUpper(id)]
	if !ok {
		return pokemon.FastMove{}, fmt.Errorf("%w: fast move %s", ErrUnknownMove, id)
	}
	return m, nil
}

func (s *Store) ChargedMove(id string) (pokemon.ChargedMove, error) {
	m, ok := s.charged[strings.ToUpper(id)]
	if !ok {
		return pokemon.ChargedMove{}, fmt.Errorf("%w: charged move %s", ErrUnknownMove, id)
	}
	return m, nil
}

// Move resolves an id against fast moves first, then charged moves.
func (s *Store) Move(id string) (pokemon.Move, error) {
	if m, err := s.FastMove(id); err == nil {
		return m.Move, nil
	}
	if m, err := s.ChargedMove(id); err == nil {
		return m.Move, nil
	}
	return pokemon.Move{}, fmt.Errorf("%w: %s", ErrUnknownMove, id)
}

// AllSpecies lists species in gamemaster order.
func (s *Store) AllSpecies() []*pokemon.Species {
	out := make([]*pokemon.Species, len(s.order))
	for i, id := range s.order {
		out[i] = s.species[id]
	}
	return out
}

func (s *Store) FastMoveIDs() []string {
	return sortedKeys(s.fast)
}

func (s *Store) ChargedMoveIDs() []string {
	return sortedKeys(s.charged)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
