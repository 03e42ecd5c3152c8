package services

import (
	"testing"

	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("failed to init logger: %v", err)
	}
	return log
}
