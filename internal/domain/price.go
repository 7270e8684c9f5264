package domain

import "github.com/shopspring/decimal"

// Sample - одно наблюдение цены криптовалюты
type Sample struct {
	Timestamp int64           `json:"timestamp"` // Время наблюдения (epoch millis, UTC)
	Price     decimal.Decimal `json:"price"`     // Цена на момент наблюдения
}
