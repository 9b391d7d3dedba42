package core

import (
	"context"
	"log/slog"

	"github.com/ib-77/staticflow/internal/logging"
)

type OptionKey string

const (
	LoopOptionKey   OptionKey = "loop_options"
	LoggerOptionKey OptionKey = "logger"
)

type MaxLimitOption struct {
	Value int
}

type LoopOptions struct {
	MaxSteps MaxLimitOption
}

// WithLoopOptions limits loops run under ctx to maxSteps body calls.
// A non-positive value means no limit.
func WithLoopOptions(ctx context.Context, maxSteps int) context.Context {
	return context.WithValue(ctx, LoopOptionKey, LoopOptions{MaxLimitOption{Value: maxSteps}})
}

func GetMaxSteps(ctx context.Context, defaultMaxSteps int) int {
	options, ok := ctx.Value(LoopOptionKey).(LoopOptions)
	if ok {
		return options.MaxSteps.Value
	}
	return defaultMaxSteps
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

// GetLogger returns the logger stored in ctx, or a no-op logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(LoggerOptionKey).(*slog.Logger)
	if ok && logger != nil {
		return logger
	}
	return logging.NewNop()
}
