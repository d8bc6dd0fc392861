// Package logger is a small, non-blocking structured logger: callers
// never wait on disk or terminal I/O, since a slow log sink must never
// slow down a search. Writes go through buffered channels drained by
// two dedicated goroutines, one per sink (stdout, daily-rotated file).
package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/dball/logtail/internal/constants"
)

// retentionPeriod is how long daily log files are kept before Start
// prunes them; one week of rotated files.
const retentionPeriod = 7 * constants.DayDuration

const (
	levelInfo  = "INFO"
	levelWarn  = "WARN"
	levelError = "ERROR"
	levelDebug = "DEBUG"
)

// Mode controls which sinks are active and how verbose they are.
type Mode struct {
	// ToStdout enables the stdout sink.
	ToStdout bool
	// ToFile enables the daily-rotated file sink; LogDir must exist or
	// be creatable.
	ToFile bool
	// LogDir is the directory daily log files are written into.
	LogDir string
	// Debug enables Debug-level output; without it, Debug calls are a
	// no-op (cheap enough to sprinkle liberally).
	Debug bool
}

type entry struct {
	time    time.Time
	message string
}

var (
	mutex sync.Mutex

	mode Mode

	stdoutIsTerminal bool
	stdoutWriter     *bufio.Writer
	stdoutCh         chan string

	fileCh      chan entry
	fileWriter  *bufio.Writer
	fileHandle  *os.File
	lastLogDate string

	hostname string

	started bool
)

// Start wires up the configured sinks and launches their drain
// goroutines. It must be called once before any logging calls; it is
// not safe to call concurrently with itself.
func Start(m Mode) {
	mode = m
	if !mode.ToStdout && !mode.ToFile {
		return
	}

	if h, err := os.Hostname(); err == nil {
		hostname = strings.SplitN(h, ".", 2)[0]
	} else {
		hostname = "unknown"
	}

	if mode.ToStdout {
		stdoutIsTerminal = isatty.IsTerminal(os.Stdout.Fd())
		stdoutWriter = bufio.NewWriter(os.Stdout)
		stdoutCh = make(chan string, 256)
		go drainStdout()
	}

	if mode.ToFile {
		fileCh = make(chan entry, 256)
		go drainFile()
		pruneOldLogs(mode.LogDir)
	}

	started = true
}

// pruneOldLogs removes daily log files older than retentionPeriod.
// Failures are ignored: a full disk from unpruned logs is worse than
// a missed prune.
func pruneOldLogs(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-retentionPeriod)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		os.Remove(filepath.Join(dir, e.Name()))
	}
}

// Stop flushes and closes whichever sinks were started. Safe to call
// even if Start was never called.
func Stop() {
	if !started {
		return
	}
	if stdoutCh != nil {
		close(stdoutCh)
	}
	if fileCh != nil {
		close(fileCh)
	}
}

// Info logs an informational message.
func Info(args ...interface{}) { log(levelInfo, args) }

// Warn logs a warning.
func Warn(args ...interface{}) { log(levelWarn, args) }

// Error logs an error.
func Error(args ...interface{}) { log(levelError, args) }

// Debug logs a debug message; a no-op unless Mode.Debug is set.
func Debug(args ...interface{}) {
	if mode.Debug {
		log(levelDebug, args)
	}
}

func log(level string, args []interface{}) {
	if !started {
		return
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, level)
	for _, a := range args {
		switch v := a.(type) {
		case string:
			parts = append(parts, v)
		case error:
			parts = append(parts, v.Error())
		default:
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	}
	message := strings.Join(parts, "|")

	if mode.ToStdout {
		line := fmt.Sprintf("%s|%s|%s\n", hostname, level, message)
		if stdoutIsTerminal {
			line = colorize(level, line)
		}
		select {
		case stdoutCh <- line:
		default:
			// stdout sink saturated: drop rather than block the caller.
		}
	}
	if mode.ToFile {
		select {
		case fileCh <- entry{time: time.Now(), message: fmt.Sprintf("%s|%s|%s\n", time.Now().Format("20060102-150405"), level, message)}:
		default:
		}
	}
}

func colorize(level, line string) string {
	var code string
	switch level {
	case levelError:
		code = "31"
	case levelWarn:
		code = "33"
	case levelDebug:
		code = "36"
	default:
		return line
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", code, strings.TrimSuffix(line, "\n")) + "\n"
}

func drainStdout() {
	for {
		select {
		case line, ok := <-stdoutCh:
			if !ok {
				stdoutWriter.Flush()
				return
			}
			stdoutWriter.WriteString(line)
		case <-time.After(constants.LoggerFlushInterval):
			stdoutWriter.Flush()
		}
	}
}

func drainFile() {
	for e := range fileCh {
		dateStr := e.time.Format("20060102")
		w := rotatedWriter(dateStr)
		if w == nil {
			continue
		}
		w.WriteString(e.message)
		w.Flush()
	}
	closeFile()
}

// rotatedWriter returns the writer for dateStr, opening a new daily
// file if the date has changed since the last write.
func rotatedWriter(dateStr string) *bufio.Writer {
	mutex.Lock()
	defer mutex.Unlock()

	if dateStr == lastLogDate && fileWriter != nil {
		return fileWriter
	}
	closeFile()

	if err := os.MkdirAll(mode.LogDir, 0o755); err != nil {
		return nil
	}
	path := fmt.Sprintf("%s/%s.log", mode.LogDir, dateStr)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	fileHandle = f
	fileWriter = bufio.NewWriter(f)
	lastLogDate = dateStr
	return fileWriter
}

func closeFile() {
	if fileWriter != nil {
		fileWriter.Flush()
	}
	if fileHandle != nil {
		fileHandle.Close()
	}
	fileWriter = nil
	fileHandle = nil
}
