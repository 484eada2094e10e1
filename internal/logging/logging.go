package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var logfile *os.File
var verbose bool

// Init opens the append-only logfile under dir (typically the ripit config
// dir). Console output works regardless; file logging is best effort.
func Init(dir string) {
	p := filepath.Join(dir, "logs")
	_ = os.MkdirAll(p, 0o755)
	f, err := os.OpenFile(filepath.Join(p, "ripit.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	logfile = f
	log.SetOutput(f)
}

func Close() {
	if logfile != nil {
		_ = logfile.Close()
	}
}

func color(code, s string) string { return "\x1b[" + code + "m" + s + "\x1b[0m" }

func Info(msg string) {
	fmt.Println(msg)
	logln(msg)
}

func Success(msg string) {
	fmt.Println(color("32", msg))
	logln(msg)
}

func Error(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, color("31", msg))
	logln(msg)
}

// SetVerbose toggles debug output to stdout.
func SetVerbose(v bool) { verbose = v }

// Debug prints only when verbose mode is enabled; it always hits the logfile.
func Debug(msg string) {
	if verbose {
		fmt.Println(color("90", msg))
	}
	logln("[DEBUG] " + msg)
}

func logln(msg string) {
	if logfile != nil {
		log.Println(msg)
	}
}
