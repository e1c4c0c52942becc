package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/taskcal/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing JSON lines to cfg.File, or to stderr when no
// file is configured.
func New(cfg config.Log) (*zap.Logger, error) {
	return build(cfg, "stderr")
}

func NewForTerminalUI(cfg config.Log) (*zap.Logger, error) {
	if strings.TrimSpace(cfg.File) == "" {
		return zap.NewNop(), nil
	}
	return build(cfg, "")
}

func build(cfg config.Log, fallback string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	out := fallback
	if f := strings.TrimSpace(cfg.File); f != "" {
		if dir := filepath.Dir(f); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		out = f
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Sampling = nil
	return zc.Build()
}
