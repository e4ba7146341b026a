package logger

import "go.uber.org/zap"

var log *zap.Logger

// Init builds the process-wide logger. debug selects the development
// encoder with DEBUG enabled; otherwise production JSON.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	log = l
	return nil
}

// Sync flushes buffered entries. Call on shutdown.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func Info(msg string, fields ...zap.Field)  { l().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { l().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { l().Error(msg, fields...) }
func Debug(msg string, fields ...zap.Field) { l().Debug(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { l().Fatal(msg, fields...) }

func l() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
