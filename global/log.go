package global

import (
	"go.uber.org/zap"
)

var Logger *zap.Logger

func Log() *zap.Logger {
	if Logger == nil {
		Logger = zap.NewNop()
	}
	return Logger
}
