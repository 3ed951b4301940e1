package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

var (
	thresholdOnce sync.Once
	threshold     int
)

// Debug writes a debug-level log line with the given fields.
func Debug(msg string, fields map[string]any) {
	write(levelDebug, "debug", msg, fields)
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write(levelInfo, "info", msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	write(levelWarn, "warn", msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write(levelError, "error", msg, fields)
}

func write(level int, label, msg string, fields map[string]any) {
	if level < minLevel() {
		return
	}
	entry := make(map[string]any, len(fields)+3)
	entry["ts"] = time.Now().UTC().Format(time.RFC3339)
	entry["level"] = label
	entry["msg"] = msg
	for k, v := range fields {
		entry[k] = v
	}
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stdout, `{"ts":"%s","level":"error","msg":"logger marshal failed","err":%q}`+"\n", time.Now().UTC().Format(time.RFC3339), err.Error())
		return
	}
	fmt.Fprintln(os.Stdout, string(data))
}

func minLevel() int {
	thresholdOnce.Do(func() {
		switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
		case "debug":
			threshold = levelDebug
		case "warn":
			threshold = levelWarn
		case "error":
			threshold = levelError
		default:
			threshold = levelInfo
		}
	})
	return threshold
}
