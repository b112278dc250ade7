package stats_test

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/ross1116/pvpcalc/internal/pokemon"
	"github.com/ross1116/pvpcalc/internal/stats"
)

func TestDefaultCurve(t *testing.T) {
	c := stats.DefaultCurve
	if c.Max() != stats.MaxCPM {
		t.Fatalf("Max() = %v, want %v", c.Max(), stats.MaxCPM)
	}
	entries := c.Entries()
	if len(entries) != 101 {
		t.Fatalf("expected 101 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].CPM < entries[i-1].CPM {
			t.Fatalf("curve decreases at level %v", entries[i].Level)
		}
	}

	cases := map[pokemon.Level]float64{1: 0.094, 20: 0.59740001, 40: 0.79030001, 50: 0.84029999, 51: 0.84529999}
	for l, want := range cases {
		got, err := c.Multiplier(l)
		if err != nil {
			t.Fatalf("Multiplier(%v): %v", l, err)
		}
		if got != want {
			t.Fatalf("Multiplier(%v) = %v, want %v", l, got, want)
		}
	}

	entries[0].CPM = 99
	if got, _ := c.Multiplier(1); got != 0.094 {
		t.Fatalf("Entries exposed internal state")
	}
}

func TestLoadCurve(t *testing.T) {
	f, err := os.Open("testdata/cpm.json")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	c, err := stats.LoadCurve(f)
	if err != nil {
		t.Fatalf("LoadCurve: %v", err)
	}
	for _, e := range stats.DefaultCurve.Entries() {
		got, err := c.Multiplier(e.Level)
		if err != nil {
			t.Fatalf("Multiplier(%v): %v", e.Level, err)
		}
		if got != e.CPM {
			t.Fatalf("level %v: loaded %v, want %v", e.Level, got, e.CPM)
		}
	}

	calc := stats.NewCalculator(c)
	cp, err := calc.CP(pokemon.Pokemon{Species: carbink, Level: 50, Ivs: pokemon.Ivs{Atk: 4, Def: 14, HP: 15}})
	if err != nil || cp != 1490 {
		t.Fatalf("CP with loaded curve = %d (%v), want 1490", cp, err)
	}
}

func TestInvalidCurve(t *testing.T) {
	cases := map[string]string{
		"short":      `[[1, 0.094], [1.5, 0.135]]`,
		"malformed":  `{"1": 0.094}`,
		"decreasing": decreasingCurve(),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := stats.LoadCurve(strings.NewReader(in))
			if err == nil {
				t.Fatalf("expected error")
			}
			if name != "malformed" && !errors.Is(err, stats.ErrInvalidCurve) {
				t.Fatalf("expected ErrInvalidCurve, got %v", err)
			}
		})
	}

	entries := stats.DefaultCurve.Entries()
	entries[10].Level = 99
	if _, err := stats.NewCurve(entries); !errors.Is(err, stats.ErrInvalidCurve) {
		t.Fatalf("expected ErrInvalidCurve for misplaced level, got %v", err)
	}
}

func decreasingCurve() string {
	var b strings.Builder
	b.WriteString("[")
	for i, e := range stats.DefaultCurve.Entries() {
		if i > 0 {
			b.WriteString(",")
		}
		cpm := e.CPM
		if e.Level == 30 {
			cpm = 0.1
		}
		b.WriteString("[")
		b.WriteString(strconv.FormatFloat(float64(e.Level), 'g', -1, 64))
		b.WriteString(",")
		b.WriteString(strconv.FormatFloat(cpm, 'g', -1, 64))
		b.WriteString("]")
	}
	b.WriteString("]")
	return b.String()
}
