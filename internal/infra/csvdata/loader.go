package csvdata

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huzelnut/crypto/internal/config"
	"github.com/huzelnut/crypto/internal/metrics"
	"github.com/huzelnut/crypto/internal/store"
	"github.com/shopspring/decimal"
)

// Загрузка исторических цен из CSV-файлов в хранилище при старте.
// Формат строки: timestamp,currencySymbol,price; первая строка каждого
// файла — заголовок и пропускается.

type Loader struct {
	cfg    config.PricesConfig
	logger *slog.Logger
}

// NewLoader - Создаёт загрузчик CSV-файлов с ценами.
func NewLoader(cfg config.PricesConfig, logger *slog.Logger) *Loader {
	return &Loader{cfg: cfg, logger: logger}
}

// Load — читает все *.csv из каталога данных и строит хранилище.
// Файлы обходятся в лексикографическом порядке имён, поэтому при
// одинаковом timestamp выигрывает строка из последнего по алфавиту
// файла (детерминированно на любой платформе).
func (l *Loader) Load() (*store.Store, error) {
	entries, err := os.ReadDir(l.cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("reading data dir %s: %w", l.cfg.DataDir, err)
	}

	builder := store.NewBuilder()
	files := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		path := filepath.Join(l.cfg.DataDir, entry.Name())
		rows, err := l.loadFile(path, builder)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		files++
		metrics.FilesIngested.Inc()
		l.logger.Info("loaded price file",
			slog.String("file", entry.Name()),
			slog.Int("rows", rows),
		)
	}
	if files == 0 {
		return nil, fmt.Errorf("no csv files in data dir %s", l.cfg.DataDir)
	}

	st := builder.Build()
	l.logger.Info("price storage built",
		slog.Int("files", files),
		slog.Int("currencies", len(st.Currencies())),
	)
	return st, nil
}

// loadFile - Читает один CSV-файл и добавляет его строки в builder.
func (l *Loader) loadFile(path string, builder *store.Builder) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 3

	records, err := reader.ReadAll()
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	// Первая строка — заголовок
	rows := 0
	for _, record := range records[1:] {
		timestamp, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad timestamp %q: %w", record[0], err)
		}
		symbol := strings.TrimSpace(record[1])
		if symbol == "" {
			return 0, fmt.Errorf("empty currency symbol at timestamp %d", timestamp)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return 0, fmt.Errorf("bad price %q: %w", record[2], err)
		}
		builder.Add(symbol, timestamp, price)
		rows++
		metrics.SamplesIngested.Inc()
	}
	return rows, nil
}
