package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "app.log")
	f, logger, err := FileLogger(logrus.InfoLevel, logPath)
	if err != nil {
		t.Fatalf("FileLogger: %v", err)
	}
	defer f.Close()

	logger.Info("seeding started")
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("log entry was not written to file")
	}
}

func TestConsoleLogger(t *testing.T) {
	logger := ConsoleLogger(logrus.DebugLevel)
	if logger.Level != logrus.DebugLevel {
		t.Fatalf("level = %v, want debug", logger.Level)
	}
	if logger.Out != os.Stderr {
		t.Fatal("console logger must write to stderr")
	}
}
