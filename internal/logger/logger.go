package logger

import (
	"go.uber.org/zap"
)

// No-op until Init so library code can log unconditionally.
var sugar = zap.NewNop().Sugar()

func Init() {
	l, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	sugar = l.Sugar()
}

func Sync() {
	_ = sugar.Sync()
}

func Info(msg string, fields map[string]any) {
	sugar.Infow(msg, flatten(fields)...)
}

func Warn(msg string, fields map[string]any) {
	sugar.Warnw(msg, flatten(fields)...)
}

func Error(msg string, fields map[string]any) {
	sugar.Errorw(msg, flatten(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	sugar.Fatalw(msg, flatten(fields)...)
}

func flatten(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	kvs := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		kvs = append(kvs, k, v)
	}
	return kvs
}
