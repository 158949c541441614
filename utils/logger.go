package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const logDir = "logs"

var levelLoggers = map[string]*log.Logger{}

func openDailyLog(level string) (*os.File, error) {
	name := fmt.Sprintf("estate-%s-%s.log", level, time.Now().Format("2006-01-02"))
	return os.OpenFile(
		filepath.Join(logDir, name),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
}

// InitLogger opens the daily log files, one per level
func InitLogger() error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	for _, level := range []string{"info", "error", "debug"} {
		file, err := openDailyLog(level)
		if err != nil {
			return fmt.Errorf("failed to open %s log file: %v", level, err)
		}
		prefix := strings.ToUpper(level) + ": "
		levelLoggers[level] = log.New(file, prefix, log.Ldate|log.Ltime|log.Lshortfile)
	}
	return nil
}

func logf(level, format string, v ...interface{}) {
	if logger := levelLoggers[level]; logger != nil {
		logger.Printf(format, v...)
	}
}

// LogInfo logs an informational message
func LogInfo(format string, v ...interface{}) {
	logf("info", format, v...)
}

// LogError logs an error message
func LogError(format string, v ...interface{}) {
	logf("error", format, v...)
}

// LogDebug logs a debug message
func LogDebug(format string, v ...interface{}) {
	logf("debug", format, v...)
}

// LogRequest logs HTTP request details
func LogRequest(method, path, ip string, status int, duration time.Duration) {
	LogInfo("Request: %s %s from %s - Status: %d - Duration: %v", method, path, ip, status, duration)
}

// LogErrorWithStack logs an error with stack trace
func LogErrorWithStack(err error, stack []byte) {
	logf("error", "Error: %v\nStack Trace:\n%s", err, stack)
}
