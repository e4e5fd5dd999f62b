package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

var (
	ErrorLogger *log.Logger
	PanicLogger *log.Logger
)

// InitLogger opens the append-only log files under logs/. Handlers keep
// working if it was never called; logging just becomes a no-op.
func InitLogger() error {
	if err := os.MkdirAll("logs", 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	var err error
	if ErrorLogger, err = openLogFile("errors.log"); err != nil {
		return err
	}
	if PanicLogger, err = openLogFile("panics.log"); err != nil {
		return err
	}
	return nil
}

func openLogFile(name string) (*log.Logger, error) {
	f, err := os.OpenFile(filepath.Join("logs", name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", name, err)
	}
	return log.New(f, "", 0), nil
}

func LogError(err error, context string) {
	if ErrorLogger == nil {
		return
	}
	file, line := callerInfo(2)
	ErrorLogger.Printf("[%s] ERROR in %s:%d - %s: %v", time.Now().Format("2006-01-02 15:04:05"), file, line, context, err)
}

func LogPanic(recovered interface{}, context string) {
	if PanicLogger == nil {
		return
	}
	file, line := callerInfo(3)
	PanicLogger.Printf("[%s] PANIC in %s:%d - %s: %v", time.Now().Format("2006-01-02 15:04:05"), file, line, context, recovered)
}

func callerInfo(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0
	}
	return filepath.Base(file), line
}
