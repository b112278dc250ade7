package fx

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ross1116/pvpcalc/internal/battle"
	"github.com/ross1116/pvpcalc/internal/config"
	"github.com/ross1116/pvpcalc/internal/gamemaster"
	"github.com/ross1116/pvpcalc/internal/logger"
	"github.com/ross1116/pvpcalc/internal/pokemon"
	"github.com/ross1116/pvpcalc/internal/stats"
)

// ProvideCurve loads CPM_PATH when set and falls back to the built-in curve.
func ProvideCurve(cfg *config.Config, logger zerolog.Logger) (*stats.Curve, error) {
	if cfg.CPMPath == "" {
		return stats.DefaultCurve, nil
	}
	f, err := os.Open(cfg.CPMPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cp multiplier curve: %w", err)
	}
	defer f.Close()

	curve, err := stats.LoadCurve(f)
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.CPMPath).Msg("failed to load cp multiplier curve")
		return nil, err
	}
	logger.Debug().Str("path", cfg.CPMPath).Float64("max_cpm", curve.Max()).Msg("cp multiplier curve loaded")
	return curve, nil
}

var Module = fx.Options(
	config.Module,
	logger.Module,
	fx.Provide(ProvideCurve),
	fx.Provide(stats.NewCalculator),
	fx.Provide(battle.NewEngine),
	fx.Provide(gamemaster.NewStore),
	fx.Supply(pokemon.DefaultCanonicalizer),
)
