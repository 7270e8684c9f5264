package prices

import (
	"context"
	"log/slog"
	"sort"

	"github.com/huzelnut/crypto/internal/domain"
	"github.com/shopspring/decimal"
)

// Бизнес-логика - агрегация диапазонов и сводок цен по валютам

//go:generate mockgen -source=prices_service.go -destination=mocks/mock_reader.go -package=pricesmocks

type Service interface {
	// Ranges — нормализованные диапазоны всех валют за всё время,
	// отсортированные по убыванию
	Ranges(ctx context.Context) []RangeStats
	// HighestRangeOnDate — валюта с максимальным диапазоном за день
	HighestRangeOnDate(ctx context.Context, year, month, day int) (RangeStats, error)
	// Prices — сводка цен (oldest/newest/min/max) по валюте
	Prices(ctx context.Context, symbol string) PriceStats
}

// PriceReader — абстракция репозитория цен.
type PriceReader interface {
	Currencies() []string
	OldestPrice(symbol string) (domain.Sample, bool)
	NewestPrice(symbol string) (domain.Sample, bool)
	LowestPrice(symbol string) (domain.Sample, bool)
	HighestPrice(symbol string) (domain.Sample, bool)
	NormalizedRange(symbol string) (decimal.Decimal, bool)
	NormalizedRangeOnDay(symbol string, year, month, day int) (decimal.Decimal, bool, error)
}

// RangeStats — нормализованный диапазон валюты. Range == nil, когда
// по валюте нет данных за период.
type RangeStats struct {
	Symbol string
	Range  *decimal.Decimal
}

// PriceStats — сводка цен по валюте; любое поле может быть nil.
type PriceStats struct {
	Symbol string
	Oldest *decimal.Decimal
	Newest *decimal.Decimal
	Min    *decimal.Decimal
	Max    *decimal.Decimal
}

type service struct {
	repo   PriceReader
	logger *slog.Logger
}

func NewService(repo PriceReader, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Ranges(ctx context.Context) []RangeStats {
	currencies := s.repo.Currencies()

	out := make([]RangeStats, 0, len(currencies))
	for _, symbol := range currencies {
		stats := RangeStats{Symbol: symbol}
		if rng, ok := s.repo.NormalizedRange(symbol); ok {
			stats.Range = &rng
		}
		out = append(out, stats)
	}

	// Валюты без диапазона идут после всех с диапазоном,
	// при равных диапазонах — по символу по возрастанию.
	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].Range, out[j].Range
		switch {
		case ri == nil && rj == nil:
			return out[i].Symbol < out[j].Symbol
		case ri == nil:
			return false
		case rj == nil:
			return true
		}
		if c := ri.Cmp(*rj); c != 0 {
			return c > 0
		}
		return out[i].Symbol < out[j].Symbol
	})

	s.logger.Info("computed ranges", "count", len(out))
	return out
}

func (s *service) HighestRangeOnDate(ctx context.Context, year, month, day int) (RangeStats, error) {
	var best *RangeStats
	for _, symbol := range s.repo.Currencies() {
		rng, ok, err := s.repo.NormalizedRangeOnDay(symbol, year, month, day)
		if err != nil {
			// Некорректная дата — отдаём ошибку резолвера как есть
			return RangeStats{}, err
		}
		if !ok {
			// Валюты без наблюдений в этот день не участвуют
			continue
		}
		if best == nil || rng.GreaterThan(*best.Range) ||
			(rng.Equal(*best.Range) && symbol < best.Symbol) {
			r := rng
			best = &RangeStats{Symbol: symbol, Range: &r}
		}
	}
	if best == nil {
		s.logger.Warn("no ranges on date", "year", year, "month", month, "day", day)
		return RangeStats{}, ErrNoDataFound
	}

	s.logger.Info("highest range on date",
		"symbol", best.Symbol,
		"range", best.Range.String(),
	)
	return *best, nil
}

func (s *service) Prices(ctx context.Context, symbol string) PriceStats {
	stats := PriceStats{Symbol: symbol}
	if sample, ok := s.repo.OldestPrice(symbol); ok {
		p := sample.Price
		stats.Oldest = &p
	}
	if sample, ok := s.repo.NewestPrice(symbol); ok {
		p := sample.Price
		stats.Newest = &p
	}
	if sample, ok := s.repo.LowestPrice(symbol); ok {
		p := sample.Price
		stats.Min = &p
	}
	if sample, ok := s.repo.HighestPrice(symbol); ok {
		p := sample.Price
		stats.Max = &p
	}
	return stats
}
