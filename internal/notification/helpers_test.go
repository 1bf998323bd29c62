package notification

import (
	"testing"

	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestTemplates(t *testing.T) *Templates {
	t.Helper()
	tpl, err := NewTemplates(nil)
	if err != nil {
		t.Fatalf("init templates: %v", err)
	}
	return tpl
}
