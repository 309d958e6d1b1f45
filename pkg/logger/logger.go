package logger

import (
	"log"
	"os"
)

var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger
	DebugLogger *log.Logger
	WarnLogger  *log.Logger
)

func init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	DebugLogger = log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarnLogger = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
}

func Info(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

func Error(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}

func Debug(format string, v ...interface{}) {
	if os.Getenv("ENVIRONMENT") == "development" {
		DebugLogger.Printf(format, v...)
	}
}

func Warn(format string, v ...interface{}) {
	WarnLogger.Printf(format, v...)
}

// CleanupFailure is the single channel for swallowed remote-deletion errors.
// These never reach the caller, so they must at least be greppable.
func CleanupFailure(remoteID string, err error) {
	WarnLogger.Printf("COMPENSATION_ERROR: remote object %s not deleted: %v", remoteID, err)
}
