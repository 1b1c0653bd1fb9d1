package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func init() {
	env := os.Getenv("ENV")
	// Stdout by default (plays well with systemd/docker); LOG_TO_FILE=true
	// switches to a dated file under ./logs for long-running local sessions.
	logger.Out = os.Stdout
	if os.Getenv("LOG_TO_FILE") == "true" {
		cwd, err := os.Getwd()
		if err == nil {
			logsDir := filepath.Join(cwd, "logs")
			if mkErr := os.MkdirAll(logsDir, 0o755); mkErr != nil {
				log.Warnf("Failed to create logs directory %s: %v, falling back to stdout", logsDir, mkErr)
			} else {
				filePath := filepath.Join(logsDir, fmt.Sprintf("%s%s.log", time.Now().Format("2006-01-02"), env))
				f, openErr := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
				if openErr != nil {
					log.Warnf("Failed to open log file %s: %v, falling back to stdout", filePath, openErr)
				} else {
					logger.Out = f
				}
			}
		}
	}

	logger.Formatter = &log.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}
	logger.SetLevel(log.DebugLevel)
}

// GetLogger returns an entry annotated with the calling site.
func GetLogger() *log.Entry {
	function, file, line, _ := runtime.Caller(1)
	functionObject := runtime.FuncForPC(function)
	return logger.WithFields(log.Fields{
		"function": functionObject.Name(),
		"file":     file,
		"line":     line,
	})
}
