package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 50
	logFileMaxAgeDays = 14
	logFileMaxBackups = 5
)

// NewZapLogger returns a JSON logger writing to stdout, named after the service.
func NewZapLogger(name string, level zapcore.Level) *zap.SugaredLogger {
	return newLogger(name, level, zapcore.AddSync(os.Stdout))
}

// NewZapFileLogger writes to stdout and to a size-rotated file.
func NewZapFileLogger(name string, level zapcore.Level, filename string) *zap.SugaredLogger {
	rotating := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    logFileMaxSizeMB,
		MaxAge:     logFileMaxAgeDays,
		MaxBackups: logFileMaxBackups,
	}
	return newLogger(name, level, zapcore.NewMultiWriteSyncer(
		zapcore.AddSync(os.Stdout),
		zapcore.AddSync(rotating),
	))
}

func newLogger(name string, level zapcore.Level, sink zapcore.WriteSyncer) *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		sink,
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core, zap.AddCaller()).Named(name).Sugar()
}
