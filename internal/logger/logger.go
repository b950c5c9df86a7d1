// Package logger 建立全域 zap logger
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log 在 Init 前為 no-op logger
var Log *zap.Logger = zap.NewNop()

// Init 依 level（debug、info、warn、error…）建立 JSON logger 並設為 zap 全域 logger
func Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl
	zap.ReplaceGlobals(zl)
	return nil
}
