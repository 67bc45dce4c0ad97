// Package logger 构建进程使用的结构化日志。
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrUnknownFormat 表示无法识别的日志格式。
var ErrUnknownFormat = errors.New("unknown log format")

// 支持的日志格式。
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config 是日志设置。
type Config struct {
	Level  slog.Level
	Format string // "text" 或 "json"
}

// DefaultConfig 只输出警告及以上级别的文本日志，避免干扰统计结果。
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
	}
}

// New 创建日志器写入 w，并设置为默认日志器。
func New(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}

// ParseLevel 解析 debug/info/warn/error（大小写不敏感）。
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}

// Discard 返回丢弃全部输出的日志器，供测试与库默认值使用。
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
