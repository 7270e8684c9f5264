package inmemory

import (
	"github.com/huzelnut/crypto/internal/dates"
	"github.com/huzelnut/crypto/internal/domain"
	"github.com/huzelnut/crypto/internal/store"
	"github.com/shopspring/decimal"
)

// PriceRepo — репозиторий запросов к in-memory хранилищу цен.
// Отсутствие данных (неизвестная валюта, пустое окно) — это не ошибка,
// а ok=false; ошибка возвращается только при некорректной дате.
type PriceRepo struct {
	store *store.Store
}

// NewPriceRepository - Создаёт репозиторий поверх замороженного хранилища.
func NewPriceRepository(st *store.Store) *PriceRepo {
	return &PriceRepo{store: st}
}

// rangeScale - Число знаков после запятой у нормализованного диапазона.
const rangeScale = 6

// Currencies - Все символы валют, представленные в хранилище.
func (r *PriceRepo) Currencies() []string {
	return r.store.Currencies()
}

// OldestPrice - Самое раннее наблюдение по валюте за всё время.
func (r *PriceRepo) OldestPrice(symbol string) (domain.Sample, bool) {
	series, ok := r.store.Series(symbol)
	if !ok {
		return domain.Sample{}, false
	}
	return series.First()
}

// OldestPriceInMonth - Самое раннее наблюдение по валюте за месяц.
func (r *PriceRepo) OldestPriceInMonth(symbol string, year, month int) (domain.Sample, bool, error) {
	series, ok, err := r.monthWindow(symbol, year, month)
	if err != nil || !ok {
		return domain.Sample{}, false, err
	}
	s, ok := series.First()
	return s, ok, nil
}

// NewestPrice - Самое позднее наблюдение по валюте за всё время.
func (r *PriceRepo) NewestPrice(symbol string) (domain.Sample, bool) {
	series, ok := r.store.Series(symbol)
	if !ok {
		return domain.Sample{}, false
	}
	return series.Last()
}

// NewestPriceInMonth - Самое позднее наблюдение по валюте за месяц.
func (r *PriceRepo) NewestPriceInMonth(symbol string, year, month int) (domain.Sample, bool, error) {
	series, ok, err := r.monthWindow(symbol, year, month)
	if err != nil || !ok {
		return domain.Sample{}, false, err
	}
	s, ok := series.Last()
	return s, ok, nil
}

// LowestPrice - Наблюдение с минимальной ценой за всё время.
func (r *PriceRepo) LowestPrice(symbol string) (domain.Sample, bool) {
	series, ok := r.store.Series(symbol)
	if !ok {
		return domain.Sample{}, false
	}
	return series.Lowest()
}

// LowestPriceInMonth - Наблюдение с минимальной ценой за месяц.
func (r *PriceRepo) LowestPriceInMonth(symbol string, year, month int) (domain.Sample, bool, error) {
	series, ok, err := r.monthWindow(symbol, year, month)
	if err != nil || !ok {
		return domain.Sample{}, false, err
	}
	s, ok := series.Lowest()
	return s, ok, nil
}

// LowestPriceOnDay - Наблюдение с минимальной ценой за день.
func (r *PriceRepo) LowestPriceOnDay(symbol string, year, month, day int) (domain.Sample, bool, error) {
	series, ok, err := r.dayWindow(symbol, year, month, day)
	if err != nil || !ok {
		return domain.Sample{}, false, err
	}
	s, ok := series.Lowest()
	return s, ok, nil
}

// HighestPrice - Наблюдение с максимальной ценой за всё время.
func (r *PriceRepo) HighestPrice(symbol string) (domain.Sample, bool) {
	series, ok := r.store.Series(symbol)
	if !ok {
		return domain.Sample{}, false
	}
	return series.Highest()
}

// HighestPriceInMonth - Наблюдение с максимальной ценой за месяц.
func (r *PriceRepo) HighestPriceInMonth(symbol string, year, month int) (domain.Sample, bool, error) {
	series, ok, err := r.monthWindow(symbol, year, month)
	if err != nil || !ok {
		return domain.Sample{}, false, err
	}
	s, ok := series.Highest()
	return s, ok, nil
}

// HighestPriceOnDay - Наблюдение с максимальной ценой за день.
func (r *PriceRepo) HighestPriceOnDay(symbol string, year, month, day int) (domain.Sample, bool, error) {
	series, ok, err := r.dayWindow(symbol, year, month, day)
	if err != nil || !ok {
		return domain.Sample{}, false, err
	}
	s, ok := series.Highest()
	return s, ok, nil
}

// NormalizedRange - Нормализованный диапазон (max+min)/min за всё время,
// 6 знаков, округление half-up.
func (r *PriceRepo) NormalizedRange(symbol string) (decimal.Decimal, bool) {
	highest, hok := r.HighestPrice(symbol)
	lowest, lok := r.LowestPrice(symbol)
	if !hok || !lok {
		return decimal.Decimal{}, false
	}
	return normalizedRange(highest.Price, lowest.Price), true
}

// NormalizedRangeOnDay - Нормализованный диапазон (max+min)/min за день.
func (r *PriceRepo) NormalizedRangeOnDay(symbol string, year, month, day int) (decimal.Decimal, bool, error) {
	highest, hok, err := r.HighestPriceOnDay(symbol, year, month, day)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	lowest, lok, err := r.LowestPriceOnDay(symbol, year, month, day)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	if !hok || !lok {
		return decimal.Decimal{}, false, nil
	}
	return normalizedRange(highest.Price, lowest.Price), true, nil
}

// normalizedRange - Именно (max+min)/min, не (max-min)/min: такова формула
// исходной постановки. DivRound для положительных цен даёт half-up.
func normalizedRange(max, min decimal.Decimal) decimal.Decimal {
	return max.Add(min).DivRound(min, rangeScale)
}

// monthWindow - Под-ряд валюты в границах месяца.
func (r *PriceRepo) monthWindow(symbol string, year, month int) (store.Series, bool, error) {
	from, err := dates.StartOfMonth(year, month)
	if err != nil {
		return store.Series{}, false, err
	}
	to, err := dates.EndOfMonth(year, month)
	if err != nil {
		return store.Series{}, false, err
	}
	series, ok := r.store.Series(symbol)
	if !ok {
		return store.Series{}, false, nil
	}
	return series.Window(from, to), true, nil
}

// dayWindow - Под-ряд валюты в границах дня.
func (r *PriceRepo) dayWindow(symbol string, year, month, day int) (store.Series, bool, error) {
	from, err := dates.StartOfDay(year, month, day)
	if err != nil {
		return store.Series{}, false, err
	}
	to, err := dates.EndOfDay(year, month, day)
	if err != nil {
		return store.Series{}, false, err
	}
	series, ok := r.store.Series(symbol)
	if !ok {
		return store.Series{}, false, nil
	}
	return series.Window(from, to), true, nil
}
