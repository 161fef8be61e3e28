package client

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
	loggerMux  sync.RWMutex
)

// Logger returns the package logger, it uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		loggerMux.Lock()
		if logger == nil {
			logger = zap.NewNop()
		}
		loggerMux.Unlock()
	})
	loggerMux.RLock()
	defer loggerMux.RUnlock()
	return logger
}

// SetLogger replaces the package logger used by clients created without WithLogger
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMux.Lock()
	logger = l
	loggerMux.Unlock()
}
