package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// SetupLogging points the standard logger at dir/LogFile when debug is set
// and discards log output otherwise. The terminal frontend owns stdout and
// stderr, so logs never go there. A log file over MaxLogSize is renamed with
// a timestamp before a fresh one is opened. The caller closes the returned
// file, which is nil when logging is off or the file could not be opened.
func SetupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(dir, LogFile)
	if info, err := os.Stat(logPath); err == nil && info.Size() > MaxLogSize {
		stamp := time.Now().Format("20060102-150405")
		rotated := filepath.Join(dir, fmt.Sprintf("duopong-%s.log", stamp))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== duopong started (pid %d) ===", os.Getpid())
	return logFile
}
