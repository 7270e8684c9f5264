package httptransport

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/huzelnut/crypto/internal/metrics"
	"github.com/huzelnut/crypto/internal/ports/errcode"
	"github.com/huzelnut/crypto/internal/service/prices"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PricesService — абстракция для работы с агрегатами цен.
type PricesService interface {
	Ranges(ctx context.Context) []prices.RangeStats
	HighestRangeOnDate(ctx context.Context, year, month, day int) (prices.RangeStats, error)
	Prices(ctx context.Context, symbol string) prices.PriceStats
}

// Range — DTO для ответа API с нормализованным диапазоном валюты.
type Range struct {
	CurrencySymbol string           `json:"currencySymbol"`
	Range          *decimal.Decimal `json:"range"`
}

// Prices — DTO для ответа API со сводкой цен; любое из полей цен
// может быть null.
type Prices struct {
	CurrencySymbol string           `json:"currencySymbol"`
	Oldest         *decimal.Decimal `json:"oldest"`
	Newest         *decimal.Decimal `json:"newest"`
	Min            *decimal.Decimal `json:"min"`
	Max            *decimal.Decimal `json:"max"`
}

func makeRange(item prices.RangeStats) Range {
	return Range{
		CurrencySymbol: item.Symbol,
		Range:          item.Range,
	}
}

func makePrices(item prices.PriceStats) Prices {
	return Prices{
		CurrencySymbol: item.Symbol,
		Oldest:         item.Oldest,
		Newest:         item.Newest,
		Min:            item.Min,
		Max:            item.Max,
	}
}

// PricesHandler — HTTP‑handler для цен и диапазонов.
type PricesHandler struct {
	logger  *slog.Logger
	svc     PricesService
	timeout time.Duration
}

func NewPricesHandler(logger *slog.Logger, svc PricesService, timeout time.Duration) *PricesHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	// Задаём таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = time.Second * 3
	}
	return &PricesHandler{
		logger:  logger,
		svc:     svc,
		timeout: timeout,
	}
}

func (h *PricesHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	// Регистрируем маршруты
	r.GET("/prices", h.GetPrices)
	r.GET("/prices/ranges", h.GetRanges)
	r.GET("/prices/ranges/highest", h.GetHighestRangeOnDate)
}

func (h *PricesHandler) GetRanges(c echo.Context) error {
	metrics.RequestsTotal.WithLabelValues("ranges").Inc()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items := h.svc.Ranges(ctx)

	out := make([]Range, 0, len(items))
	for _, item := range items {
		out = append(out, makeRange(item))
	}

	return c.JSON(http.StatusOK, out)
}

func (h *PricesHandler) GetHighestRangeOnDate(c echo.Context) error {
	metrics.RequestsTotal.WithLabelValues("highest_range").Inc()

	// Дату разбираем на год/месяц/день сами: календарную корректность
	// проверяет нижний слой и отвечает ошибкой InvalidDate
	year, month, day, ok := splitDate(c.QueryParam("date"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "date_malformed",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.svc.HighestRangeOnDate(ctx, year, month, day)
	if err != nil {
		code := FromServiceError(err)
		switch code {
		case errcode.NoDataFound:
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "no_data_found",
				"date":  c.QueryParam("date"),
			})
		case errcode.InvalidDate:
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid_date",
				"date":  c.QueryParam("date"),
			})
		default:
			h.logger.Error("HighestRangeOnDate failed",
				slog.String("op", "GetHighestRangeOnDate"),
				slog.String("date", c.QueryParam("date")),
				slog.String("error", err.Error()),
			)
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "internal_server_error",
			})
		}
	}

	return c.JSON(http.StatusOK, makeRange(item))
}

func (h *PricesHandler) GetPrices(c echo.Context) error {
	metrics.RequestsTotal.WithLabelValues("prices").Inc()

	symbol := strings.TrimSpace(c.QueryParam("currencySymbol"))
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "currency_symbol_required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item := h.svc.Prices(ctx, symbol)
	return c.JSON(http.StatusOK, makePrices(item))
}

// splitDate - Разбирает строку формата YYYY-MM-DD на числа. Не проверяет
// календарную корректность — только формат.
func splitDate(raw string) (year, month, day int, ok bool) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var err error
	if year, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, false
	}
	if day, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}
	return year, month, day, true
}
