// Package utils provides the leveled logger and terminal helpers shared by
// every flux command.
package utils

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the level of logging verbosity
type LogLevel int

const (
	// LevelQuiet suppresses all output except errors
	LevelQuiet LogLevel = iota
	// LevelNormal shows standard workflow progress
	LevelNormal
	// LevelVerbose shows detailed information about each step
	LevelVerbose
	// LevelDebug shows all debugging information
	LevelDebug
)

var (
	// CurrentLogLevel is the global log level setting
	CurrentLogLevel LogLevel = LevelNormal

	logFileMu sync.Mutex
	logFile   *os.File
)

// SetLogLevel sets the global logging level
func SetLogLevel(level LogLevel) {
	CurrentLogLevel = level
}

// LogLevelFromString converts a string level name to LogLevel
func LogLevelFromString(level string) LogLevel {
	switch strings.ToLower(level) {
	case "quiet", "q":
		return LevelQuiet
	case "normal", "n":
		return LevelNormal
	case "verbose", "v":
		return LevelVerbose
	case "debug", "d":
		return LevelDebug
	default:
		return LevelNormal
	}
}

// SetLogFile opens path for appending and mirrors every log line into it,
// regardless of the console level. Pass "" to disable the file sink.
func SetLogFile(path string) error {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f
	return nil
}

// CloseLogFile closes the file sink if one is open.
func CloseLogFile() {
	logFileMu.Lock()
	defer logFileMu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// appendToFile writes a timestamped line to the log file. The file captures
// all levels; only the console honors CurrentLogLevel.
func appendToFile(level, message string) {
	logFileMu.Lock()
	defer logFileMu.Unlock()
	if logFile == nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(logFile, "%s %s %s\n", ts, level, message)
}

// LogError logs an error message (always shown)
func LogError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	appendToFile("ERROR", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Error(msg))
}

// LogInfo logs an informational message at Normal+ level
func LogInfo(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	appendToFile("INFO", msg)
	if CurrentLogLevel >= LevelNormal {
		fmt.Printf("%s\n", Info(msg))
	}
}

// LogSuccess logs a success message at Normal+ level
func LogSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	appendToFile("INFO", msg)
	if CurrentLogLevel >= LevelNormal {
		fmt.Printf("%s\n", Success(msg))
	}
}

// LogWarning logs a warning message at Normal+ level
func LogWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	appendToFile("WARN", msg)
	if CurrentLogLevel >= LevelNormal {
		fmt.Printf("%s\n", Warning(msg))
	}
}

// LogVerbose logs a message at Verbose+ level
func LogVerbose(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	appendToFile("INFO", msg)
	if CurrentLogLevel >= LevelVerbose {
		fmt.Printf("\t%s\n", Info(msg))
	}
}

// LogDebug logs a debug message at Debug level
func LogDebug(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	appendToFile("DEBUG", msg)
	if CurrentLogLevel >= LevelDebug {
		fmt.Printf("\t%s\n", Debug(msg))
	}
}
