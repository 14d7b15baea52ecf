package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

func InitLogger(env string) {
	slog.SetDefault(NewLogger(os.Stdout, env))
}

// NewLogger logs at debug level outside production.
func NewLogger(w io.Writer, env string) *slog.Logger {
	level := slog.LevelDebug
	if env == "production" {
		level = slog.LevelInfo
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    env == "production",
	})

	return slog.New(handler)
}
