package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// log はプロセス全体で共有するロガー。Init または Set で差し替える
var log = zap.NewNop()

// New は環境に応じたロガーを作成する
//
// production ではJSON形式、それ以外はコンソール形式で出力する。
// level が空の場合は環境のデフォルトレベルを使う。
func New(env, level string) (*zap.Logger, error) {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("ログレベルが不正です: %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	return config.Build()
}

// Init は APP_ENV と LOG_LEVEL からグローバルロガーを初期化する
func Init(env string) error {
	l, err := New(env, os.Getenv("LOG_LEVEL"))
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

func Get() *zap.Logger {
	return log
}

func Set(l *zap.Logger) {
	log = l
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	log.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	log.Fatal(msg, fields...)
}

func With(fields ...zap.Field) *zap.Logger {
	return log.With(fields...)
}

func Sync() error {
	return log.Sync()
}
