package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ross1116/pvpcalc/internal/pokemon"
)

var (
	ErrUnknownLevel = errors.New("level not on cp multiplier curve")
	ErrInvalidCurve = errors.New("invalid cp multiplier curve")
)

// curveLen is the number of half-level steps from pokemon.MinLevel to pokemon.MaxLevel.
const curveLen = int((pokemon.MaxLevel-pokemon.MinLevel)/pokemon.LevelStep) + 1

type CurveEntry struct {
	Level pokemon.Level
	CPM   float64
}

// Curve maps every half level in [1, 51] to its CP multiplier.
type Curve struct {
	entries []CurveEntry
}

func NewCurve(entries []CurveEntry) (*Curve, error) {
	if len(entries) != curveLen {
		return nil, fmt.Errorf("%w: want %d entries, got %d", ErrInvalidCurve, curveLen, len(entries))
	}
	for i, e := range entries {
		want := pokemon.MinLevel + pokemon.Level(i)*pokemon.LevelStep
		if e.Level != want {
			return nil, fmt.Errorf("%w: entry %d has level %v, want %v", ErrInvalidCurve, i, float64(e.Level), float64(want))
		}
		if e.CPM <= 0 {
			return nil, fmt.Errorf("%w: level %v has multiplier %v", ErrInvalidCurve, float64(e.Level), e.CPM)
		}
		if i > 0 && e.CPM < entries[i-1].CPM {
			return nil, fmt.Errorf("%w: multiplier decreases at level %v", ErrInvalidCurve, float64(e.Level))
		}
	}
	return &Curve{entries: append([]CurveEntry(nil), entries...)}, nil
}

// LoadCurve decodes a JSON array of [level, cpm] pairs.
func LoadCurve(r io.Reader) (*Curve, error) {
	var pairs [][2]float64
	if err := json.NewDecoder(r).Decode(&pairs); err != nil {
		return nil, fmt.Errorf("failed to decode cp multiplier curve: %w", err)
	}
	entries := make([]CurveEntry, len(pairs))
	for i, p := range pairs {
		entries[i] = CurveEntry{Level: pokemon.Level(p[0]), CPM: p[1]}
	}
	return NewCurve(entries)
}

func (c *Curve) Multiplier(level pokemon.Level) (float64, error) {
	if !level.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrUnknownLevel, float64(level))
	}
	return c.entries[level.Index()].CPM, nil
}

// Max is the multiplier at pokemon.MaxLevel.
func (c *Curve) Max() float64 {
	return c.entries[len(c.entries)-1].CPM
}

func (c *Curve) Entries() []CurveEntry {
	return append([]CurveEntry(nil), c.entries...)
}

// Half levels below 40 are sqrt((cpm(l)^2 + cpm(l+1)^2) / 2); from 40 up the
// game uses the arithmetic midpoint.
var defaultMultipliers = [curveLen]float64{
	0.094, 0.1351374322, // 1
	0.16639787, 0.1926509145, // 2
	0.21573247, 0.2365726554, // 3
	0.25572005, 0.2735303793, // 4
	0.29024988, 0.30605738, // 5
	0.3210876, 0.3354450348, // 6
	0.34921268, 0.3624577571, // 7
	0.3752356, 0.3875924191, // 8
	0.39956728, 0.4111935491, // 9
	0.42250001, 0.4329264137, // 10
	0.44310755, 0.4530599578, // 11
	0.46279839, 0.4723360778, // 12
	0.48168495, 0.4908558093, // 13
	0.49985844, 0.5087017592, // 14
	0.51739395, 0.5259425109, // 15
	0.53435433, 0.5426357606, // 16
	0.55079269, 0.5588305975, // 17
	0.56675452, 0.5745691494, // 18
	0.58227891, 0.5898879135, // 19
	0.59740001, 0.6048236601, // 20
	0.61215729, 0.6194041153, // 21
	0.62656713, 0.6336491816, // 22
	0.64065295, 0.6475809587, // 23
	0.65443563, 0.661219261, // 24
	0.667934, 0.6745818989, // 25
	0.68116492, 0.6876849043, // 26
	0.69414365, 0.7005428942, // 27
	0.70688421, 0.7131584602, // 28
	0.71937799, 0.725565153, // 29
	0.7317, 0.7347410073, // 30
	0.73776948, 0.7407855701, // 31
	0.74378943, 0.746781204, // 32
	0.74976104, 0.7527291037, // 33
	0.75568551, 0.7586303686, // 34
	0.76156384, 0.7644860688, // 35
	0.76739717, 0.7702972739, // 36
	0.7731865, 0.7760649434, // 37
	0.77893275, 0.7817900625, // 38
	0.78463697, 0.7874735807, // 39
	0.79030001, 0.79280001, // 40
	0.79530001, 0.797800005, // 41
	0.8003, 0.8028, // 42
	0.8053, 0.807799995, // 43
	0.81029999, 0.81279999, // 44
	0.81529999, 0.81779999, // 45
	0.82029999, 0.82279999, // 46
	0.82529999, 0.82779999, // 47
	0.83029999, 0.83279999, // 48
	0.83529999, 0.83779999, // 49
	0.84029999, 0.84279999, // 50
	0.84529999, // 51
}

// MaxCPM is the multiplier at level 51 on the default curve.
const MaxCPM = 0.84529999

var DefaultCurve = mustDefaultCurve()

func mustDefaultCurve() *Curve {
	entries := make([]CurveEntry, curveLen)
	for i, cpm := range defaultMultipliers {
		entries[i] = CurveEntry{
			Level: pokemon.MinLevel + pokemon.Level(i)*pokemon.LevelStep,
			CPM:   cpm,
		}
	}
	c, err := NewCurve(entries)
	if err != nil {
		panic(err)
	}
	return c
}
