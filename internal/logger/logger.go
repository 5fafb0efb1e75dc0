package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"zonelight/refactor/internal/config"
	jsonpkg "zonelight/refactor/internal/pkg/json"
)

type LogLevel int

const (
	LogOff  LogLevel = 0 // basic logs only
	LogLow  LogLevel = 1 // + debug lines, HTTP request lines
	LogHigh LogLevel = 2 // + document and payload dumps
)

const (
	ColorReset  = "\x1b[0m"
	ColorGreen  = "\x1b[32m"
	ColorYellow = "\x1b[33m"
	ColorRed    = "\x1b[31m"
	ColorCyan   = "\x1b[36m"
	ColorGray   = "\x1b[90m"
	ColorBlue   = "\x1b[34m"
	ColorPurple = "\x1b[35m"
)

var (
	currentLogLevel LogLevel
	out             io.Writer = os.Stdout
)

func Init() {
	cfg := config.Get()
	currentLogLevel = parseLogLevel(cfg.Debug)
}

func parseLogLevel(debug string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(debug)) {
	case "low":
		return LogLow
	case "high":
		return LogHigh
	default:
		return LogOff
	}
}

func GetLevel() LogLevel {
	return currentLogLevel
}

func SetLevel(level LogLevel) {
	currentLogLevel = level
}

// SetOutput redirects all log output; it returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

func line(color, tag, format string, args []any) {
	timestamp := time.Now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "%s%s%s %s[%s]%s %s\n", ColorGray, timestamp, ColorReset, color, tag, ColorReset, msg)
}

func Info(format string, args ...any) { line(ColorGreen, "info", format, args) }

func Warn(format string, args ...any) { line(ColorYellow, "warn", format, args) }

func Error(format string, args ...any) { line(ColorRed, "error", format, args) }

func Debug(format string, args ...any) {
	if currentLogLevel < LogLow {
		return
	}
	line(ColorBlue, "debug", format, args)
}

func Request(method, path string, status int, duration time.Duration, requestID string) {
	if currentLogLevel < LogLow {
		return
	}
	statusColor := ColorGreen
	if status >= 500 {
		statusColor = ColorRed
	} else if status >= 400 {
		statusColor = ColorYellow
	}

	fmt.Fprintf(out, "%s[%s]%s %s %s%d%s %s%dms %s%s\n",
		ColorCyan, method, ColorReset,
		path,
		statusColor, status, ColorReset,
		ColorGray, duration.Milliseconds(), requestID, ColorReset)
}

// Document prints a raw JSON document, indented when it parses.
func Document(label string, raw []byte) {
	if currentLogLevel < LogHigh {
		return
	}
	fmt.Fprintf(out, "%s====================== %s ======================%s\n", ColorPurple, label, ColorReset)
	fmt.Fprintln(out, formatRawJSON(raw))
	fmt.Fprintf(out, "%s==========================================================%s\n", ColorPurple, ColorReset)
}

// Payload prints an in-memory value as indented JSON.
func Payload(label string, v any) {
	if currentLogLevel < LogHigh {
		return
	}
	fmt.Fprintf(out, "%s====================== %s ======================%s\n", ColorPurple, label, ColorReset)
	printJSON(v)
	fmt.Fprintf(out, "%s==========================================================%s\n", ColorPurple, ColorReset)
}

func Banner(zoneFile string, previewAddr string) {
	fmt.Fprintf(out, `
%s╔════════════════════════════════════════════════════════════╗
║           %szonelight%s - corner indicator                      ║
╚════════════════════════════════════════════════════════════╝%s
`, ColorCyan, ColorGreen, ColorCyan, ColorReset)

	Info("Zone file: %s", zoneFile)
	if previewAddr != "" {
		Info("Preview: http://%s/", previewAddr)
	} else {
		Info("Preview: disabled")
	}
	Info("Debug level: %s", config.Get().Debug)

	if config.Get().Preview && config.Get().APIKey == "" {
		Warn("API_KEY not set - zone updates over HTTP are unauthenticated")
	}

	fmt.Fprintln(out)
}

func printJSON(v any) {
	b, err := jsonpkg.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	fmt.Fprintln(out, string(b))
}

func formatRawJSON(raw []byte) string {
	var v any
	if err := jsonpkg.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	b, err := jsonpkg.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(b)
}
