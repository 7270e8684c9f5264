package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/huzelnut/crypto/internal/config"
)

// New создаёт и настраивает slog-логгер из конфигурации
func New(cfg *config.LoggerConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		ReplaceAttr: replaceAttrs,
		AddSource:   true,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// parseLevel преобразует строковый уровень в slog.Leveler;
// неизвестный уровень трактуется как info
func parseLevel(logLevel string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func replaceAttrs(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		// Время всегда в UTC и RFC3339
		if tt, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(tt.UTC().Format(time.RFC3339))
		}
	case slog.SourceKey:
		// Сокращаем путь к файлу до base + :строка
		if src, ok := a.Value.Any().(*slog.Source); ok && src != nil {
			file := filepath.Base(src.File)
			a.Value = slog.StringValue(file + ":" + strconv.Itoa(src.Line))
		}
	}
	return a
}
