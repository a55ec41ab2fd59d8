package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultLogDir     = "logs"
	fileBufferSize    = 32 * 1024
	consoleBufferSize = 1024
)

// NewLogger returns a JSON logger writing asynchronously to <LOG_DIR>/<name>.log
// and to the console. The returned func flushes and releases both outputs.
func NewLogger(name string) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(levelFromEnv())

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = defaultLogDir
	}
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFile := filepath.Join(filepath.Clean(logDir), filepath.Base(name)+".log")
	asyncWriter, err := NewAsyncFileWriter(logFile, fileBufferSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.SetOutput(asyncWriter)

	consoleHook := NewAsyncConsoleHook(consoleBufferSize)
	logger.AddHook(consoleHook)

	closeFn := func() {
		consoleHook.Close()
		asyncWriter.Close()
	}
	return logger, closeFn, nil
}

func levelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
