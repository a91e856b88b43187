package logger

import "go.uber.org/zap"

// ToZapFields exposes field conversion for tests.
func ToZapFields(fields []any) []zap.Field { return toZapFields(fields) }
