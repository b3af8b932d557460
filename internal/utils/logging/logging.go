// Package logging provides leveled, colored console output with a
// structured log file sink.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"archivarr/internal/domain/consts"

	"github.com/rs/zerolog"
)

var (
	// Level gates debug output (0-5).
	Level int = -1 // Pre initialization

	mu       sync.Mutex
	fileLog  zerolog.Logger
	loggable bool
)

// SetupLogging opens the log file sink at the given path.
func SetupLogging(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", path, err)
	}

	fileLog = zerolog.New(f).With().
		Timestamp().
		Str("program", consts.Program).
		Logger()
	loggable = true
	return nil
}

// E logs an error with caller information.
func E(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	pc, file, line, _ := runtime.Caller(1)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	msg := sprintf(format, args...)
	tag := "[" + consts.ColorBlue + "Function: " + consts.ColorReset + funcName +
		" - " + consts.ColorBlue + "File: " + consts.ColorReset + filepath.Base(file) +
		" : " + consts.ColorBlue + "Line: " + consts.ColorReset + strconv.Itoa(line) + "]"

	fmt.Println(consts.RedError + msg + " " + tag)
	writeLog(zerolog.ErrorLevel, msg)
}

// W logs a warning.
func W(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := sprintf(format, args...)
	fmt.Println(consts.YellowWarn + msg)
	writeLog(zerolog.WarnLevel, msg)
}

// I logs an informational message.
func I(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := sprintf(format, args...)
	fmt.Println(consts.BlueInfo + msg)
	writeLog(zerolog.InfoLevel, msg)
}

// S logs a success message.
func S(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := sprintf(format, args...)
	fmt.Println(consts.GreenSuccess + msg)
	writeLog(zerolog.InfoLevel, msg)
}

// D logs a debug message when the debug level is at least l.
func D(l int, format string, args ...any) {
	if Level < l {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	msg := sprintf(format, args...)
	fmt.Println(consts.YellowDebug + msg)
	writeLog(zerolog.DebugLevel, msg)
}

// P prints a plain line to the console and log.
func P(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := sprintf(format, args...)
	fmt.Println(msg)
	writeLog(zerolog.InfoLevel, msg)
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func writeLog(level zerolog.Level, msg string) {
	if loggable {
		fileLog.WithLevel(level).Msg(msg)
	}
}
