package logging

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const loggerKey = loggerKeyType("logger")

var (
	mu         sync.RWMutex
	rootLogger = zap.NewNop()
)

// Init builds the root logger. Debug mode logs everything to a colored console;
// otherwise info and above are written as JSON.
func Init(debug bool) *zap.Logger {
	var (
		encoder zapcore.Encoder
		level   zapcore.Level
	)
	if debug {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
		level = zapcore.DebugLevel
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.InfoLevel
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(level))
	logger := zap.New(core, zap.AddCaller())

	mu.Lock()
	rootLogger = logger
	mu.Unlock()

	logger.Debug("Logging initialized", zap.Bool("debug", debug))
	return logger
}

// Root returns the process-wide logger
func Root() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return rootLogger
}

// SetRoot replaces the root logger, mainly for tests
func SetRoot(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	mu.Lock()
	rootLogger = logger
	mu.Unlock()
}

// From returns the logger of the current context, if no logger is available, returns the root logger
func From(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return Root()
}

func SubFrom(ctx context.Context, name string) (*zap.Logger, context.Context) {
	logger := From(ctx).Named(name)
	return logger, Context(ctx, logger)
}

func Context(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = Root()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// Sync flushes the root logger; errors from syncing a terminal are ignored
func Sync() {
	_ = Root().Sync()
}
