package pokemon

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var ErrMalformedOverride = errors.New("malformed moveset override")

// ReturnMove is learnable by most species but never present in upstream
// data, so it is injected whenever a charged keep list names it.
var ReturnMove = ChargedMove{
	Move: Move{
		ID:    "RETURN",
		Name:  "Return",
		Type:  Normal,
		Power: 130,
	},
	Energy: 70,
}

// MoveRule either replaces the legal set (Keep) or subtracts from it
// (Remove). A nil Keep means "no keep list".
type MoveRule struct {
	Keep   []string
	Remove []string
}

func (r MoveRule) apply(moves []string) []string {
	if r.Keep != nil {
		return slices.Clone(r.Keep)
	}
	if len(r.Remove) == 0 {
		return moves
	}
	return filterMoves(moves, func(id string) bool { return !slices.Contains(r.Remove, id) })
}

type MovesetOverride struct {
	Fast    MoveRule
	Charged MoveRule
}

type Canonicalizer struct {
	excludedFast    map[string]struct{}
	excludedCharged map[string]struct{}
	overrides       map[string]MovesetOverride
}

func NewCanonicalizer(excludedFast, excludedCharged []string, overrides map[string]MovesetOverride) (*Canonicalizer, error) {
	c := &Canonicalizer{
		excludedFast:    toSet(excludedFast),
		excludedCharged: toSet(excludedCharged),
		overrides:       make(map[string]MovesetOverride, len(overrides)),
	}

	ids := make([]string, 0, len(overrides))
	for id := range overrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var errs []error
	for _, id := range ids {
		o := overrides[id]
		if o.Fast.Keep != nil && o.Fast.Remove != nil {
			errs = append(errs, fmt.Errorf("%w: %s has both keep and remove for fast moves", ErrMalformedOverride, id))
		}
		if o.Charged.Keep != nil && o.Charged.Remove != nil {
			errs = append(errs, fmt.Errorf("%w: %s has both keep and remove for charged moves", ErrMalformedOverride, id))
		}
		c.overrides[id] = MovesetOverride{
			Fast:    MoveRule{Keep: slices.Clone(o.Fast.Keep), Remove: slices.Clone(o.Fast.Remove)},
			Charged: MoveRule{Keep: slices.Clone(o.Charged.Keep), Remove: slices.Clone(o.Charged.Remove)},
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// MustCanonicalizer is NewCanonicalizer for static tables; it panics on a malformed override.
func MustCanonicalizer(excludedFast, excludedCharged []string, overrides map[string]MovesetOverride) *Canonicalizer {
	c, err := NewCanonicalizer(excludedFast, excludedCharged, overrides)
	if err != nil {
		panic(err)
	}
	return c
}

// Override reports the per-species rule, if any.
func (c *Canonicalizer) Override(speciesID string) (MovesetOverride, bool) {
	o, ok := c.overrides[speciesID]
	return o, ok
}

// Canonicalize returns a copy of s whose move lists hold only moves legal in
// ranked play. The input is left untouched.
func (c *Canonicalizer) Canonicalize(s Species) Species {
	fast := filterMoves(s.FastMoves, func(id string) bool { return !has(c.excludedFast, id) })
	charged := filterMoves(s.ChargedMoves, func(id string) bool { return !has(c.excludedCharged, id) })

	if o, ok := c.overrides[s.ID]; ok {
		fast = o.Fast.apply(fast)
		charged = o.Charged.apply(charged)
	}

	return withMoveset(s, fast, charged)
}

// withMoveset restricts the species' own move lists to the given sets, so a
// keep list can never introduce a move the species does not have, RETURN aside.
func withMoveset(s Species, fast, charged []string) Species {
	out := s.Clone()
	out.FastMoves = filterMoves(s.FastMoves, func(id string) bool { return slices.Contains(fast, id) })
	out.ChargedMoves = filterMoves(s.ChargedMoves, func(id string) bool { return slices.Contains(charged, id) })

	if slices.Contains(charged, ReturnMove.ID) && !slices.Contains(out.ChargedMoves, ReturnMove.ID) {
		out.ChargedMoves = append(out.ChargedMoves, ReturnMove.ID)
	}
	return out
}

func filterMoves(moves []string, keep func(string) bool) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func has(set map[string]struct{}, id string) bool {
	_, ok := set[id]
	return ok
}
