package store

import (
	"sort"

	"github.com/huzelnut/crypto/internal/domain"
	"github.com/shopspring/decimal"
)

// In-memory хранилище исторических цен: currency -> упорядоченный по
// timestamp ряд наблюдений. Заполняется один раз при старте и дальше
// только читается, поэтому блокировки не нужны.

// Builder — накапливает наблюдения перед заморозкой хранилища.
type Builder struct {
	data map[string]map[int64]decimal.Decimal
}

func NewBuilder() *Builder {
	return &Builder{data: make(map[string]map[int64]decimal.Decimal)}
}

// Add - Добавляет наблюдение. Повторный timestamp для той же валюты
// перезаписывает цену (последняя запись выигрывает).
func (b *Builder) Add(symbol string, timestamp int64, price decimal.Decimal) {
	series, ok := b.data[symbol]
	if !ok {
		series = make(map[int64]decimal.Decimal)
		b.data[symbol] = series
	}
	series[timestamp] = price
}

// Build - Замораживает накопленные данные в неизменяемый Store.
func (b *Builder) Build() *Store {
	st := &Store{series: make(map[string]Series, len(b.data))}
	for symbol, byTS := range b.data {
		s := Series{
			timestamps: make([]int64, 0, len(byTS)),
			prices:     make([]decimal.Decimal, 0, len(byTS)),
		}
		for ts := range byTS {
			s.timestamps = append(s.timestamps, ts)
		}
		sort.Slice(s.timestamps, func(i, j int) bool { return s.timestamps[i] < s.timestamps[j] })
		for _, ts := range s.timestamps {
			s.prices = append(s.prices, byTS[ts])
		}
		st.series[symbol] = s
	}
	return st
}

// Store — неизменяемый индекс цен по валютам.
type Store struct {
	series map[string]Series
}

// Currencies - Все символы валют, порядок не гарантируется.
func (s *Store) Currencies() []string {
	out := make([]string, 0, len(s.series))
	for symbol := range s.series {
		out = append(out, symbol)
	}
	return out
}

// Series - Ряд наблюдений по валюте. ok=false, если валюта неизвестна.
func (s *Store) Series(symbol string) (Series, bool) {
	ser, ok := s.series[symbol]
	return ser, ok
}

// Series — упорядоченный по timestamp (возрастание) ряд наблюдений.
// Срезы никогда не мутируются, поэтому Window может отдавать подсрезы.
type Series struct {
	timestamps []int64
	prices     []decimal.Decimal
}

func (s Series) Len() int { return len(s.timestamps) }

// At - Наблюдение по индексу.
func (s Series) At(i int) domain.Sample {
	return domain.Sample{Timestamp: s.timestamps[i], Price: s.prices[i]}
}

// Window - Под-ряд с timestamp в границах [from, to] включительно.
func (s Series) Window(from, to int64) Series {
	lo := sort.Search(len(s.timestamps), func(i int) bool { return s.timestamps[i] >= from })
	hi := sort.Search(len(s.timestamps), func(i int) bool { return s.timestamps[i] > to })
	if lo >= hi {
		return Series{}
	}
	return Series{timestamps: s.timestamps[lo:hi], prices: s.prices[lo:hi]}
}

// First - Самое раннее наблюдение ряда.
func (s Series) First() (domain.Sample, bool) {
	if len(s.timestamps) == 0 {
		return domain.Sample{}, false
	}
	return s.At(0), true
}

// Last - Самое позднее наблюдение ряда.
func (s Series) Last() (domain.Sample, bool) {
	if len(s.timestamps) == 0 {
		return domain.Sample{}, false
	}
	return s.At(len(s.timestamps) - 1), true
}

// Lowest - Наблюдение с минимальной ценой. При равных ценах выигрывает
// более ранний timestamp.
func (s Series) Lowest() (domain.Sample, bool) {
	if len(s.timestamps) == 0 {
		return domain.Sample{}, false
	}
	best := 0
	for i := 1; i < len(s.prices); i++ {
		if s.prices[i].LessThan(s.prices[best]) {
			best = i
		}
	}
	return s.At(best), true
}

// Highest - Наблюдение с максимальной ценой. При равных ценах выигрывает
// более ранний timestamp.
func (s Series) Highest() (domain.Sample, bool) {
	if len(s.timestamps) == 0 {
		return domain.Sample{}, false
	}
	best := 0
	for i := 1; i < len(s.prices); i++ {
		if s.prices[i].GreaterThan(s.prices[best]) {
			best = i
		}
	}
	return s.At(best), true
}
