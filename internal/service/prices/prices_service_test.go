package prices

import (
	"context"
	"errors"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/huzelnut/crypto/internal/dates"
	"github.com/huzelnut/crypto/internal/domain"
	pricesmocks "github.com/huzelnut/crypto/internal/service/prices/mocks"
	"github.com/shopspring/decimal"
)

// helper to build service with mocks
func setupSvc(t *testing.T) (context.Context, *gomock.Controller, *pricesmocks.MockPriceReader, Service) {
	t.Helper()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := pricesmocks.NewMockPriceReader(ctrl)
	svc := NewService(repo, slog.Default())
	return ctx, ctrl, repo, svc
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// -------------------------
// Ranges
// -------------------------

func TestRanges_SortedDescending(t *testing.T) {
	ctx, ctrl, repo, svc := setupSvc(t)
	defer ctrl.Finish()

	repo.EXPECT().Currencies().Return([]string{"ETH", "BTC"})
	repo.EXPECT().NormalizedRange("ETH").Return(dec("1.1"), true)
	repo.EXPECT().NormalizedRange("BTC").Return(dec("2.5"), true)

	got := svc.Ranges(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Symbol != "BTC" || got[1].Symbol != "ETH" {
		t.Fatalf("expected [BTC ETH], got %+v", got)
	}
}

func TestRanges_NilRangesSortLast(t *testing.T) {
	ctx, ctrl, repo, svc := setupSvc(t)
	defer ctrl.Finish()

	repo.EXPECT().Currencies().Return([]string{"XRP", "BTC", "ETH"})
	repo.EXPECT().NormalizedRange("XRP").Return(decimal.Decimal{}, false)
	repo.EXPECT().NormalizedRange("BTC").Return(dec("2.5"), true)
	repo.EXPECT().NormalizedRange("ETH").Return(dec("1.1"), true)

	got := svc.Ranges(ctx)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[2].Symbol != "XRP" || got[2].Range != nil {
		t.Fatalf("expected XRP with nil range last, got %+v", got)
	}
}

func TestRanges_TiesBrokenBySymbol(t *testing.T) {
	ctx, ctrl, repo, svc := setupSvc(t)
	defer ctrl.Finish()

	repo.EXPECT().Currencies().Return([]string{"ETH", "BTC"})
	repo.EXPECT().NormalizedRange("ETH").Return(dec("2.5"), true)
	repo.EXPECT().NormalizedRange("BTC").Return(dec("2.5"), true)

	got := svc.Ranges(ctx)
	if got[0].Symbol != "BTC" || got[1].Symbol != "ETH" {
		t.Fatalf("expected symbol ascending on ties, got %+v", got)
	}
}

func TestRanges_Empty(t *testing.T) {
	ctx, ctrl, repo, svc := setupSvc(t)
	defer ctrl.Finish()

	repo.EXPECT().Currencies().Return(nil)

	got := svc.Ranges(ctx)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

// -------------------------
// HighestRangeOnDate
// -------------------------

func TestHighestRangeOnDate_Success(t *testing.T) {
	ctx, ctrl, repo, svc := setupSvc(t)
	defer ctrl.Finish()

	repo.EXPECT().Currencies().Return([]string{"BTC", "ETH", "XRP"})
	repo.EXPECT().NormalizedRangeOnDay("BTC", 2022, 1, 1).Return(dec("2.000999"), true, nil)
	repo.EXPECT().NormalizedRangeOnDay("ETH", 2022, 1, 1).Return(dec("1.5"), true, nil)
	// no samples that day — excluded from the max
	repo.EXPECT().NormalizedRangeOnDay("XRP", 2022, 1, 1).Return(decimal.Decimal{}, false, nil)

	got, err := svc.HighestRangeOnDate(ctx, 2022, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Symbol != "BTC" || got.Range == nil || !got.Range.Equal(dec("2.000999")) {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestHighestRangeOnDate_NoData(t *testing.T) {
	ctx, ctrl, repo, svc := setupSvc(t)
	defer ctrl.Finish()

	repo.EXPECT().Currencies().Return([]string{"BTC", "ETH"})
	repo.EXPECT().NormalizedRangeOnDay("BTC", 2023, 2, 2).Return(decimal.Decimal{}, false, nil)
	repo.EXPECT().NormalizedRangeOnDay("ETH", 2023, 2, 2).Return(decimal.Decimal{}, false, nil)

	_, err := svc.HighestRangeOnDate(ctx, 2023, 2, 2)
	if err == nil || !errors.Is(err, ErrNoDataFound) {
		t.Fatalf("expected ErrNoDataFound, got %v", err)
	}
}

func TestHighestRangeOnDate_InvalidDate(t *testing.T) {
	ctx, ctrl, repo, svc := setupSvc(t)
	defer ctrl.Finish()

	wrapped := dates.ErrInvalidDate
	repo.EXPECT().Currencies().Return([]string{"BTC"})
	repo.EXPECT().NormalizedRangeOnDay("BTC", 2022, 2, 30).Return(decimal.Decimal{}, false, wrapped)

	_, err := svc.HighestRangeOnDate(ctx, 2022, 2, 30)
	if err == nil || !errors.Is(err, dates.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

// -------------------------
// Prices
// -------------------------

func TestPrices_AllFields(t *testing.T) {
	ctx, ctrl, repo, svc := setupSvc(t)
	defer ctrl.Finish()

	repo.EXPECT().OldestPrice("BTC").Return(domain.Sample{Timestamp: 1, Price: dec("10.01")}, true)
	repo.EXPECT().NewestPrice("BTC").Return(domain.Sample{Timestamp: 2, Price: dec("10.02")}, true)
	repo.EXPECT().LowestPrice("BTC").Return(domain.Sample{Timestamp: 1, Price: dec("10.01")}, true)
	repo.EXPECT().HighestPrice("BTC").Return(domain.Sample{Timestamp: 2, Price: dec("10.02")}, true)

	got := svc.Prices(ctx, "BTC")
	if got.Symbol != "BTC" {
		t.Fatalf("unexpected symbol: %s", got.Symbol)
	}
	if got.Oldest == nil || !got.Oldest.Equal(dec("10.01")) {
		t.Fatalf("unexpected oldest: %v", got.Oldest)
	}
	if got.Newest == nil || !got.Newest.Equal(dec("10.02")) {
		t.Fatalf("unexpected newest: %v", got.Newest)
	}
	if got.Min == nil || !got.Min.Equal(dec("10.01")) {
		t.Fatalf("unexpected min: %v", got.Min)
	}
	if got.Max == nil || !got.Max.Equal(dec("10.02")) {
		t.Fatalf("unexpected max: %v", got.Max)
	}
}

func TestPrices_UnknownCurrencyNeverFails(t *testing.T) {
	ctx, ctrl, repo, svc := setupSvc(t)
	defer ctrl.Finish()

	repo.EXPECT().OldestPrice("DOGE").Return(domain.Sample{}, false)
	repo.EXPECT().NewestPrice("DOGE").Return(domain.Sample{}, false)
	repo.EXPECT().LowestPrice("DOGE").Return(domain.Sample{}, false)
	repo.EXPECT().HighestPrice("DOGE").Return(domain.Sample{}, false)

	got := svc.Prices(ctx, "DOGE")
	if got.Symbol != "DOGE" {
		t.Fatalf("unexpected symbol: %s", got.Symbol)
	}
	if got.Oldest != nil || got.Newest != nil || got.Min != nil || got.Max != nil {
		t.Fatalf("expected all price fields nil, got %+v", got)
	}
}
