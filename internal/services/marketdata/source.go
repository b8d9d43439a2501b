package marketdata

import (
	"context"
	"strings"
	"time"

	"StockCast/internal/domain/models"
	xlogger "StockCast/pkg/logger"
)

// Data source provenance labels exposed in responses and metrics.
const (
	SourceLive      = "live"
	SourceSynthetic = "synthetic"
)

// Source resolves a ticker to a daily OHLCV history. It tries the symbol
// against a live provider with each exchange-suffix candidate, and falls
// back to a deterministic synthetic series when no candidate returns enough
// rows. Fetch never fails; the provenance of the returned series is the
// second return value.
type Source struct {
	provider   *YahooClient
	suffixes   []string
	minRows    int
	periodDays int
	logger     *xlogger.Logger
	now        func() time.Time
}

// NewSource creates a two-stage price data source.
func NewSource(provider *YahooClient, suffixes []string, minRows, periodDays int, logger *xlogger.Logger) *Source {
	return &Source{
		provider:   provider,
		suffixes:   suffixes,
		minRows:    minRows,
		periodDays: periodDays,
		logger:     logger,
		now:        time.Now,
	}
}

// Fetch returns the price history for a symbol plus its provenance
// (SourceLive or SourceSynthetic).
func (s *Source) Fetch(ctx context.Context, symbol string) ([]models.Bar, string) {
	for _, suffix := range s.suffixes {
		candidate := symbol
		if suffix != "" && !hasKnownSuffix(symbol, s.suffixes) {
			candidate = symbol + suffix
		}

		bars, err := s.provider.FetchDaily(ctx, candidate)
		if err != nil {
			s.logger.Debug("live fetch failed",
				xlogger.String("symbol", candidate),
				xlogger.Error(err),
			)
			continue
		}
		if len(bars) <= s.minRows {
			s.logger.Debug("live fetch returned too few rows",
				xlogger.String("symbol", candidate),
				xlogger.Int("rows", len(bars)),
			)
			continue
		}

		s.logger.Info("price history fetched",
			xlogger.String("symbol", candidate),
			xlogger.String("source", SourceLive),
			xlogger.Int("rows", len(bars)),
		)
		return bars, SourceLive
	}

	bars := GenerateSynthetic(symbol, s.periodDays, s.now())
	s.logger.Warn("live data unavailable, using synthetic series",
		xlogger.String("symbol", symbol),
		xlogger.String("source", SourceSynthetic),
		xlogger.Int("rows", len(bars)),
	)
	return bars, SourceSynthetic
}

func hasKnownSuffix(symbol string, suffixes []string) bool {
	for _, s := range suffixes {
		if s != "" && strings.HasSuffix(symbol, s) {
			return true
		}
	}
	return false
}
